// Package viz provides terminal drawing primitives for the lifetime chart.
//
//   - [Canvas]: Braille-based pixel canvas, 2x4 sub-pixels per cell
//   - [Theme]: color scheme for the curve, markers, axes and text
//   - lipgloss styles shared by the terminal renderer and the viewer
//
// Themes are values; nothing in this package holds mutable global state
// besides the read-only theme table.
package viz
