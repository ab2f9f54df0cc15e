// Package analysis derives velocity profiles and summary statistics
// from sampled trajectory state.
//
// The package includes:
//
//   - [Gradient]: central-difference gradient of a sampled series
//   - [Velocity]: state gradient scaled by the optimizer time step
//   - [Summarize]: per-group summary statistics for tabular reports
//
// # Velocity Derivation
//
// Recorded trajectories carry position only. The controller's velocity
// at each step is recovered numerically:
//
//	v, err := analysis.Velocity(group.X, cfg.ModelDt)
//	if err != nil {
//	    // group too short to differentiate
//	}
package analysis
