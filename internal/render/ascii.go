package render

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cubelife/internal/plot"
)

// ASCII plots the curve with asciigraph. asciigraph has a single y axis, so
// the challenge points and their day values go into the caption.
func ASCII(c *plot.Chart, width, height int) string {
	if len(c.CurveY) == 0 {
		return ""
	}

	parts := make([]string, len(c.Points))
	for i, p := range c.Points {
		parts[i] = fmt.Sprintf("%g→%s (%.1f%s)", p.X, p.Label, p.Secondary, c.Units.SecondarySuffix)
	}
	caption := c.Labels.Primary
	if len(parts) > 0 {
		caption += "  " + strings.Join(parts, "  ")
	}

	graph := asciigraph.Plot(c.CurveY,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(c.PrimaryRange.Min),
		asciigraph.UpperBound(c.PrimaryRange.Max),
		asciigraph.Precision(0),
		asciigraph.Caption(caption),
	)

	var b strings.Builder
	b.WriteString(c.Labels.Title + "\n\n")
	b.WriteString(graph + "\n")
	lo, hi := c.CurveX[0], c.CurveX[len(c.CurveX)-1]
	b.WriteString(fmt.Sprintf("x: %s [%g, %g]\n", c.Labels.XAxis, lo, hi))
	return b.String()
}
