package render

import (
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/cubelife/internal/plot"
	"github.com/san-kum/cubelife/internal/viz"
)

const (
	minPlotCols = 10
	minPlotRows = 4
)

// TerminalOptions controls the Braille rendering.
type TerminalOptions struct {
	Width     int // total columns including both axis gutters
	Height    int // plot rows, excluding title, legend and x axis
	Theme     viz.Theme
	Highlight int  // index into Chart.Points, -1 for none
	Plain     bool // no ANSI styling
}

func DefaultTerminalOptions() TerminalOptions {
	return TerminalOptions{
		Width:     100,
		Height:    24,
		Theme:     viz.ThemeClassic,
		Highlight: -1,
	}
}

type cellKind uint8

const (
	kindBlank cellKind = iota
	kindCurve
	kindMarker
	kindHighlight
	kindLabel
)

type cell struct{ col, row int }

// Terminal draws c as a Braille chart: epoch ticks on the left, day ticks on
// the right, annotated challenge markers and the explicit input ticks below.
func Terminal(c *plot.Chart, o TerminalOptions) string {
	st := viz.NewStyles(o.Theme, o.Plain)

	left := labelWidth(c.PrimaryTicks)
	right := labelWidth(c.SecondaryTicks)
	cols := max(o.Width-left-right-4, minPlotCols)
	rows := max(o.Height, minPlotRows)
	width := left + right + 4 + cols

	curve := viz.NewCanvas(cols, rows)
	marks := viz.NewCanvas(cols, rows)
	pw, ph := curve.PixelSize()

	px := func(x float64) int { return project(x, c.XRange.Min, c.XRange.Max, pw, false) }
	py := func(y float64, r plot.Range) int { return project(y, r.Min, r.Max, ph, true) }

	for i := 1; i < len(c.CurveX); i++ {
		curve.DrawLine(
			px(c.CurveX[i-1]), py(c.CurveY[i-1], c.PrimaryRange),
			px(c.CurveX[i]), py(c.CurveY[i], c.PrimaryRange),
		)
	}
	if len(c.CurveX) == 1 {
		curve.Set(px(c.CurveX[0]), py(c.CurveY[0], c.PrimaryRange))
	}

	kinds := map[cell]cellKind{}
	overlay := map[cell]rune{}
	for i, p := range c.Points {
		x, y := px(p.X), py(p.Y, c.PrimaryRange)
		marks.DrawDot(x, y, 1)
		kind := kindMarker
		if i == o.Highlight {
			kind = kindHighlight
		}
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if x+dx >= 0 && y+dy >= 0 {
					kinds[cell{(x + dx) / 2, (y + dy) / 4}] = kind
				}
			}
		}
		placeLabel(overlay, kinds, p.Label, x/2, y/4, cols, rows, kind == kindHighlight)
	}

	leftLabels := make([]string, rows)
	for _, t := range c.PrimaryTicks {
		if r := py(t.Value, c.PrimaryRange) / 4; r >= 0 && r < rows && leftLabels[r] == "" {
			leftLabels[r] = t.Label
		}
	}
	rightLabels := make([]string, rows)
	for _, t := range c.SecondaryTicks {
		if r := py(t.Value, c.SecondaryRange) / 4; r >= 0 && r < rows && rightLabels[r] == "" {
			rightLabels[r] = t.Label
		}
	}

	var b strings.Builder
	b.WriteString(st.Title.Render(center(c.Labels.Title, width)) + "\n")
	b.WriteString(strings.Repeat(" ", left+2) + st.Curve.Render("━━") + " " + st.Text.Render(c.Labels.Legend) + "\n")
	b.WriteString(st.Muted.Render(spread(c.Labels.Primary, c.Labels.Secondary, width)) + "\n")

	for r := 0; r < rows; r++ {
		lAxis, rAxis := "│", "│"
		if leftLabels[r] != "" {
			lAxis = "┤"
		}
		if rightLabels[r] != "" {
			rAxis = "├"
		}
		b.WriteString(st.Axis.Render(padLeft(leftLabels[r], left) + " " + lAxis))

		var run strings.Builder
		runKind := kindBlank
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(styleFor(st, runKind).Render(run.String()))
				run.Reset()
			}
		}
		for col := 0; col < cols; col++ {
			kind, ch := kindBlank, ' '
			if lr, ok := overlay[cell{col, r}]; ok {
				kind, ch = kindLabel, lr
				if kinds[cell{col, r}] == kindHighlight {
					kind = kindHighlight
				}
			} else if marks.IsSet(col, r) {
				kind, ch = kinds[cell{col, r}], marks.Grid[r][col]|curve.Grid[r][col]
				if kind == kindBlank {
					kind = kindMarker
				}
			} else if curve.IsSet(col, r) {
				kind, ch = kindCurve, curve.Grid[r][col]
			}
			if kind != runKind {
				flush()
				runKind = kind
			}
			run.WriteRune(ch)
		}
		flush()

		b.WriteString(st.Axis.Render(rAxis+" "+rightLabels[r]) + "\n")
	}

	b.WriteString(st.Axis.Render(xAxisLine(c, px, left, cols)) + "\n")
	b.WriteString(st.Text.Render(xTickLabels(c, px, left, width)) + "\n")
	b.WriteString(st.Muted.Render(center(c.Labels.XAxis, width)) + "\n")

	return b.String()
}

// project maps v in [lo, hi] onto 0..n-1, inverted for screen y.
func project(v, lo, hi float64, n int, invert bool) int {
	span := hi - lo
	if span == 0 {
		span = 1
	}
	f := (v - lo) / span
	if invert {
		f = (hi - v) / span
	}
	return int(math.Round(f * float64(n-1)))
}

// placeLabel writes label centered on col, one row above the marker, or
// below it when there is no room. Labels never overwrite each other.
func placeLabel(overlay map[cell]rune, kinds map[cell]cellKind, label string, col, row, cols, rows int, highlight bool) {
	n := utf8.RuneCountInString(label)
	if n == 0 || n > cols {
		return
	}
	start := min(max(col-n/2, 0), cols-n)

	for _, r := range []int{row - 1, row + 1} {
		if r < 0 || r >= rows {
			continue
		}
		free := true
		for i := start - 1; i <= start+n; i++ {
			if _, taken := overlay[cell{i, r}]; taken {
				free = false
				break
			}
		}
		if !free {
			continue
		}
		i := 0
		for _, ch := range label {
			overlay[cell{start + i, r}] = ch
			if highlight {
				kinds[cell{start + i, r}] = kindHighlight
			}
			i++
		}
		return
	}
}

func xAxisLine(c *plot.Chart, px func(float64) int, left, cols int) string {
	line := []rune(strings.Repeat("─", cols))
	for _, t := range c.XTicks {
		if col := px(t.Value) / 2; col >= 0 && col < cols {
			line[col] = '┬'
		}
	}
	return strings.Repeat(" ", left+1) + "└" + string(line) + "┘"
}

func xTickLabels(c *plot.Chart, px func(float64) int, left, width int) string {
	buf := []rune(strings.Repeat(" ", width))
	next := 0
	for _, t := range c.XTicks {
		n := utf8.RuneCountInString(t.Label)
		start := left + 2 + px(t.Value)/2 - n/2
		if start < next || start < 0 || start+n > width {
			continue
		}
		copy(buf[start:], []rune(t.Label))
		next = start + n + 1
	}
	return strings.TrimRight(string(buf), " ")
}

func styleFor(st viz.Styles, k cellKind) lipgloss.Style {
	switch k {
	case kindCurve:
		return st.Curve
	case kindMarker:
		return st.Marker
	case kindHighlight:
		return st.Accent
	case kindLabel:
		return st.Label
	}
	return st.Text
}

func labelWidth(ticks []plot.Tick) int {
	w := 1
	for _, t := range ticks {
		w = max(w, utf8.RuneCountInString(t.Label))
	}
	return w
}

func padLeft(s string, w int) string {
	if n := utf8.RuneCountInString(s); n < w {
		return strings.Repeat(" ", w-n) + s
	}
	return s
}

func center(s string, w int) string {
	n := utf8.RuneCountInString(s)
	if n >= w {
		return s
	}
	return strings.Repeat(" ", (w-n)/2) + s
}

// spread places a at the left edge and b at the right edge of width w.
func spread(a, b string, w int) string {
	gap := w - utf8.RuneCountInString(a) - utf8.RuneCountInString(b)
	if gap < 1 {
		gap = 1
	}
	return a + strings.Repeat(" ", gap) + b
}
