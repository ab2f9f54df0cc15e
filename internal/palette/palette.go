// Package palette provides the colormaps used to shade trajectory
// groups by sweep order.
package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Map is a colormap sampled by linear interpolation between fixed
// anchor colors in RGB space.
type Map struct {
	name    string
	anchors []colorful.Color
}

func mustMap(name string, hexes ...string) Map {
	anchors := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			panic(fmt.Sprintf("palette %s: bad anchor %q: %v", name, h, err))
		}
		anchors[i] = c
	}
	return Map{name: name, anchors: anchors}
}

var (
	// Cool is a perceptually uniform dark-to-light map for the
	// long-path regime.
	Cool = mustMap("cool",
		"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725")

	// Warm is a yellow-to-orange map for the short-path regime.
	Warm = mustMap("warm",
		"#e4ff7a", "#ffe81a", "#ffbd00", "#ffa000", "#fc7b00")
)

// Name returns the palette's display name.
func (m Map) Name() string { return m.name }

// At returns the color at position t. Positions outside [0, 1]
// saturate at the end colors rather than wrapping or failing.
func (m Map) At(t float64) colorful.Color {
	last := len(m.anchors) - 1
	if t <= 0 {
		return m.anchors[0]
	}
	if t >= 1 {
		return m.anchors[last]
	}

	scaled := t * float64(last)
	i := int(scaled)
	return m.anchors[i].BlendRgb(m.anchors[i+1], scaled-float64(i))
}

// Position maps a group's ordinal in global first-seen order to a
// palette position. The denominator is half the total group count, so
// positions run past 1.0 when one regime holds more than half the
// groups; At saturates those at the end color.
func Position(ordinal, total int) float64 {
	return float64(ordinal) / (float64(total) / 2)
}

// Pick selects the palette for a trajectory group: Cool for
// path_length at or above the threshold, Warm below it.
func Pick(pathLength, threshold float64) Map {
	if pathLength >= threshold {
		return Cool
	}
	return Warm
}
