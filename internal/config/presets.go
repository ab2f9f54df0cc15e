package config

import "sort"

// FigurePresets are named output sizes. The medium preset matches the
// default figure dimensions.
var FigurePresets = map[string]FigureConfig{
	"small":  {Width: 700, Height: 525},
	"medium": {Width: DefaultWidth, Height: DefaultHeight},
	"large":  {Width: 2100, Height: 1575},
	"poster": {Width: 2800, Height: 2100},
}

func GetFigurePreset(name string) *FigureConfig {
	fc, ok := FigurePresets[name]
	if !ok {
		return nil
	}
	return &fc
}

func ListFigurePresets() []string {
	names := make([]string, 0, len(FigurePresets))
	for name := range FigurePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
