// Package viz renders static terminal previews of grouped trajectory
// data.
//
// [RenderPreview] mirrors the PNG figure layout as a 2x2 grid of
// asciigraph charts, one regime per column, state above velocity.
// Output is plain styled text written once; there is no interactive
// mode.
package viz
