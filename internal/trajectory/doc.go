// Package trajectory parses and groups the sweep files written by the
// MPPI optimizer velocity-test harness.
//
// Two file schemas are understood:
//
//   - [Load]: 3-column optimal-trajectory records (path_length, step, x),
//     one block per sweep setting, partitioned with [GroupByPathLength]
//   - [LoadSweep]: 11-column velocity-response records, partitioned by
//     their constraint and noise settings with [GroupSweep]
//
// Lines whose first character is '#' are comments and are skipped, as are
// blank lines. Everything else must parse; the first malformed line aborts
// the whole load with an error naming the offending line. Record order is
// file order and is significant: it defines the trajectory sequence and
// the first-seen ordering of groups.
package trajectory
