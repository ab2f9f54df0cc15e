package trajectory

import "fmt"

// Record is one sample of the optimizer's optimal trajectory: the path
// length the run was given (costmap cells), the trajectory step the sample
// belongs to, and the trajectory x coordinate at that step.
type Record struct {
	PathLength float64
	Step       float64
	X          float64
}

// Group collects every Record sharing one exact path_length value as
// parallel Steps/X sequences, both in original file order.
type Group struct {
	PathLength float64
	Steps      []float64
	X          []float64
}

func (g *Group) Len() int { return len(g.X) }

// Label is the legend text for the group's lines.
func (g *Group) Label() string { return fmt.Sprintf("path_length=%g", g.PathLength) }

// GroupByPathLength partitions records by exact path_length equality.
// Group order follows the first appearance of each distinct key; sample
// order inside a group is file order. Duplicate (path_length, step) pairs
// are retained as separate samples.
func GroupByPathLength(recs []Record) []*Group {
	byKey := make(map[float64]*Group)
	var groups []*Group

	for _, r := range recs {
		g, ok := byKey[r.PathLength]
		if !ok {
			g = &Group{PathLength: r.PathLength}
			byKey[r.PathLength] = g
			groups = append(groups, g)
		}
		g.Steps = append(g.Steps, r.Step)
		g.X = append(g.X, r.X)
	}

	return groups
}

// SweepRecord is one row of the velocity-response sweep format: the
// optimizer output at iteration Iter of the run identified by the sweep
// counters K and J and the sampled constraint/noise settings.
type SweepRecord struct {
	K        float64
	J        float64
	Iter     float64
	VxMax    float64
	VxStd    float64
	WzMax    float64
	WzStd    float64
	VxIn     float64
	WzIn     float64
	CmdVelVx float64
	CmdVelWz float64
}

// SweepKey identifies one sweep run. Rows belong to the same run only when
// all six values compare exactly equal.
type SweepKey struct {
	K     float64
	J     float64
	VxMax float64
	VxStd float64
	WzMax float64
	WzStd float64
}

// SweepGroup collects the response sequences of one sweep run in file
// order.
type SweepGroup struct {
	Key      SweepKey
	Iters    []float64
	VxIn     []float64
	CmdVelVx []float64
	CmdVelWz []float64
}

func (g *SweepGroup) Len() int { return len(g.Iters) }

// Label is the legend text for the run's lines.
func (g *SweepGroup) Label() string {
	return fmt.Sprintf("vx_max=%g, vx_std=%g, wz_max=%g, wz_std=%g",
		g.Key.VxMax, g.Key.VxStd, g.Key.WzMax, g.Key.WzStd)
}

// GroupSweep partitions sweep records by their SweepKey, preserving
// first-seen key order and file order within each run.
func GroupSweep(recs []SweepRecord) []*SweepGroup {
	byKey := make(map[SweepKey]*SweepGroup)
	var groups []*SweepGroup

	for _, r := range recs {
		key := SweepKey{K: r.K, J: r.J, VxMax: r.VxMax, VxStd: r.VxStd, WzMax: r.WzMax, WzStd: r.WzStd}
		g, ok := byKey[key]
		if !ok {
			g = &SweepGroup{Key: key}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.Iters = append(g.Iters, r.Iter)
		g.VxIn = append(g.VxIn, r.VxIn)
		g.CmdVelVx = append(g.CmdVelVx, r.CmdVelVx)
		g.CmdVelWz = append(g.CmdVelWz, r.CmdVelWz)
	}

	return groups
}
