package figure

import (
	"github.com/nav-tools/mppiplot/internal/palette"
	"github.com/nav-tools/mppiplot/internal/trajectory"
	"gonum.org/v1/plot"
)

// RenderSweep draws the 3x1 velocity-response figure: cmd_vel_vx,
// cmd_vel_wz and vx_in against optimizer iteration, one line per sweep
// run. All runs share the cool map over the full run count, so no
// position runs past the end of the map.
func RenderSweep(groups []*trajectory.SweepGroup, opts Options) (*Grid, error) {
	vx, wz, in := newPlot(), newPlot(), newPlot()

	xLabel := iterationLabel(opts)
	decorate(vx, xLabel, "cmd_vel_vx",
		"Plot of cmd_vel_vx response varying vx_max and vx_std, and v_in.linear.x")
	decorate(wz, xLabel, "cmd_vel_wz",
		"Plot of cmd_vel_wz response varying vx_max and vx_std, and v_in.linear.x")
	decorate(in, xLabel, "vx_in", "Plot of vx_in vs iteration")

	for i, g := range groups {
		c := palette.Cool.At(float64(i) / float64(len(groups)))

		if err := addSeries(vx, g.Label(), c, g.Iters, g.CmdVelVx, true); err != nil {
			return nil, err
		}
		if err := addSeries(wz, g.Label(), c, g.Iters, g.CmdVelWz, false); err != nil {
			return nil, err
		}
		if err := addSeries(in, g.Label(), c, g.Iters, g.VxIn, false); err != nil {
			return nil, err
		}
	}

	return tile([][]*plot.Plot{{vx}, {wz}, {in}}, opts), nil
}
