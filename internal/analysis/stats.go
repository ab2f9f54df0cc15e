package analysis

import (
	"math"

	"github.com/nav-tools/mppiplot/internal/trajectory"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one trajectory group and its derived velocity
// profile.
type Stats struct {
	PathLength float64
	Samples    int
	XMin       float64
	XMax       float64
	VMean      float64
	VPeak      float64 // largest |velocity| over the horizon
}

// Summarize computes per-group summary statistics. dt is the optimizer
// model time step used for the velocity derivation.
func Summarize(g *trajectory.Group, dt float64) (Stats, error) {
	v, err := Velocity(g.X, dt)
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		PathLength: g.PathLength,
		Samples:    g.Len(),
		XMin:       floats.Min(g.X),
		XMax:       floats.Max(g.X),
		VMean:      stat.Mean(v, nil),
	}
	for _, vi := range v {
		if a := math.Abs(vi); a > s.VPeak {
			s.VPeak = a
		}
	}
	return s, nil
}
