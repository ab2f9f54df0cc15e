package figure

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/nav-tools/mppiplot/internal/analysis"
	"github.com/nav-tools/mppiplot/internal/palette"
	"github.com/nav-tools/mppiplot/internal/trajectory"
	"golang.org/x/image/colornames"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Options configures a rendered figure. Zero values are not filled in
// here; callers pass a fully populated set, normally from the config
// package defaults.
type Options struct {
	Dt        float64 // optimizer model time step in seconds
	Threshold float64 // path_length split between the two regimes
	Horizon   float64 // trajectory horizon in seconds, label text only
	Width     float64 // canvas width in points
	Height    float64 // canvas height in points
}

// Grid is a rendered multi-panel figure, ready to be emitted as PNG.
type Grid struct {
	canvas *vgimg.Canvas
}

// WriteTo encodes the figure as PNG.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	png := vgimg.PngCanvas{Canvas: g.canvas}
	return png.WriteTo(w)
}

// Save writes the figure to path as a PNG file.
func (g *Grid) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := g.WriteTo(f); err != nil {
		return fmt.Errorf("write figure %s: %w", path, err)
	}
	return nil
}

// Render draws the 2x2 path-length comparison figure: optimal
// trajectory x on the top row with its derived velocity below, long
// paths (path_length >= threshold) on the left, short paths on the
// right. Group order fixes both color assignment and legend order.
func Render(groups []*trajectory.Group, opts Options) (*Grid, error) {
	tl, tr, bl, br := newPlot(), newPlot(), newPlot(), newPlot()

	xLabel := iterationLabel(opts)
	decorate(tl, xLabel, "x",
		"Plot of optimal trajectory x PathFollowCritic given varying path_length")
	decorate(tr, xLabel, "x",
		"Plot of optimal trajectory x GoalCritic given varying path_length")

	for i, g := range groups {
		v, err := analysis.Velocity(g.X, opts.Dt)
		if err != nil {
			return nil, fmt.Errorf("group %s: %w", g.Label(), err)
		}

		state, velocity := tr, br
		if g.PathLength >= opts.Threshold {
			state, velocity = tl, bl
		}
		c := palette.Pick(g.PathLength, opts.Threshold).At(palette.Position(i, len(groups)))

		if err := addSeries(state, g.Label(), c, g.Steps, g.X, true); err != nil {
			return nil, err
		}
		if err := addSeries(velocity, g.Label(), c, g.Steps, v, false); err != nil {
			return nil, err
		}
	}

	return tile([][]*plot.Plot{{tl, tr}, {bl, br}}, opts), nil
}

func iterationLabel(opts Options) string {
	return fmt.Sprintf("Iterations of optimizer->evalControl (model_dt=%g, %gs)",
		opts.Dt, opts.Horizon)
}

func newPlot() *plot.Plot {
	p := plot.New()
	p.BackgroundColor = colornames.White
	p.Add(plotter.NewGrid())
	return p
}

func decorate(p *plot.Plot, xLabel, yLabel, title string) {
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Points(2)
}

// addSeries plots one group's sequence as a marked line. The legend
// entry is registered only on the cells that carry legends.
func addSeries(p *plot.Plot, label string, c color.Color, xs, ys []float64, legend bool) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("series %s: %w", label, err)
	}
	line.Color = c
	points.Color = c
	points.Shape = draw.CircleGlyph{}
	p.Add(line, points)
	if legend {
		p.Legend.Add(label, line, points)
	}
	return nil
}

// tile lays the plots out on one canvas with shared padding so axis
// text and titles do not collide across cells.
func tile(plots [][]*plot.Plot, opts Options) *Grid {
	img := vgimg.New(vg.Points(opts.Width), vg.Points(opts.Height))
	dc := draw.New(img)

	t := draw.Tiles{
		Rows:      len(plots),
		Cols:      len(plots[0]),
		PadX:      vg.Millimeter,
		PadY:      vg.Millimeter,
		PadTop:    vg.Points(10),
		PadBottom: vg.Points(10),
		PadLeft:   vg.Points(10),
		PadRight:  vg.Points(10),
	}

	canvases := plot.Align(plots, t, dc)
	for i := range plots {
		for j, p := range plots[i] {
			p.Draw(canvases[i][j])
		}
	}
	return &Grid{canvas: img}
}
