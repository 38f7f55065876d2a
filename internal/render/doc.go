// Package render draws a laid out [plot.Chart].
//
// Three backends share one chart plan:
//
//   - [Image]: PNG or SVG through go-chart, with a true secondary y axis
//   - [Terminal]: a Braille canvas with epoch ticks on the left and day
//     ticks on the right
//   - [ASCII]: a compact asciigraph plot for logs and pipes
//
// Backends never recompute ticks or ranges; the secondary axis always shows
// exactly what the chart plan derived from the primary axis.
package render
