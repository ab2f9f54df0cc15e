// Package figure assembles the PNG comparison figures from grouped
// trajectory data.
//
// Two layouts are produced:
//
//   - [Render]: 2x2 grid splitting groups at the path_length threshold,
//     state on the top row and derived velocity below
//   - [RenderSweep]: 3x1 grid of velocity-response series per sweep run
//
// Both return a [Grid] that encodes itself as PNG; writing the file is
// the terminal action of a render run.
package figure
