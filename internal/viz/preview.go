package viz

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/nav-tools/mppiplot/internal/analysis"
	"github.com/nav-tools/mppiplot/internal/trajectory"
)

// Panel is one rendered terminal chart with its caption.
type Panel struct {
	Title string
	Graph string
}

// Series colors cycled per group inside a regime, darkest first to
// echo the figure colormaps.
var (
	coolSeries = []asciigraph.AnsiColor{
		asciigraph.Purple, asciigraph.Navy, asciigraph.Teal,
		asciigraph.Green, asciigraph.Lime,
	}
	warmSeries = []asciigraph.AnsiColor{
		asciigraph.Yellow, asciigraph.Olive,
		asciigraph.Red, asciigraph.Maroon,
	}
)

// Panels builds the four preview panels with the same routing as the
// PNG figure: state on top, derived velocity below; long paths
// (path_length >= threshold) left, short paths right. Returned in
// TL, TR, BL, BR order.
func Panels(groups []*trajectory.Group, dt, threshold float64, width, height int) ([4]Panel, error) {
	var longX, longV, shortX, shortV [][]float64

	for _, g := range groups {
		v, err := analysis.Velocity(g.X, dt)
		if err != nil {
			return [4]Panel{}, fmt.Errorf("group %s: %w", g.Label(), err)
		}

		if g.PathLength >= threshold {
			longX = append(longX, g.X)
			longV = append(longV, v)
		} else {
			shortX = append(shortX, g.X)
			shortV = append(shortV, v)
		}
	}

	return [4]Panel{
		chart(longX, coolSeries, fmt.Sprintf("x, path_length >= %g (PathFollowCritic)", threshold), width, height),
		chart(shortX, warmSeries, fmt.Sprintf("x, path_length < %g (GoalCritic)", threshold), width, height),
		chart(longV, coolSeries, fmt.Sprintf("velocity, path_length >= %g", threshold), width, height),
		chart(shortV, warmSeries, fmt.Sprintf("velocity, path_length < %g", threshold), width, height),
	}, nil
}

func chart(series [][]float64, colors []asciigraph.AnsiColor, title string, width, height int) Panel {
	if len(series) == 0 {
		return Panel{Title: title, Graph: "(no groups)"}
	}

	cycled := make([]asciigraph.AnsiColor, len(series))
	for i := range series {
		cycled[i] = colors[i%len(colors)]
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.SeriesColors(cycled...),
	)
	return Panel{Title: title, Graph: graph}
}

// RenderPreview lays the four panels out as a bordered 2x2 terminal
// grid.
func RenderPreview(groups []*trajectory.Group, dt, threshold float64, width, height int) (string, error) {
	panels, err := Panels(groups, dt, threshold, width, height)
	if err != nil {
		return "", err
	}

	boxed := make([]string, len(panels))
	for i, p := range panels {
		boxed[i] = panelStyle.Render(titleStyle.Render(p.Title) + "\n" + p.Graph)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, boxed[0], boxed[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, boxed[2], boxed[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom), nil
}
