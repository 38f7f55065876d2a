// Package plot lays out the cube lifetime chart.
//
// Build evaluates a model over a [lifetime.SampleSet] and derives everything
// a backend needs to draw the chart: the dense curve, the annotated challenge
// points, explicit ticks for all three axes and the displayed axis ranges.
// Backends in package render only draw what a [Chart] describes.
package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/san-kum/cubelife/internal/lifetime"
)

var (
	ErrInvalidIncrement = errors.New("plot: tick increment must be positive")
	ErrEmptySamples     = errors.New("plot: no curve samples")
)

const (
	DefaultEpochIncrement = 80.0
	// MaxTicks bounds the number of primary ticks a layout may produce.
	MaxTicks = 10000
	// DefaultMargin pads the data range on both sides of the primary axis,
	// as a fraction of the data span.
	DefaultMargin = 0.05
)

// DefaultXTicks labels every challenge level from 10 to 80 bits.
var DefaultXTicks = []float64{10, 15, 20, 25, 30, 35, 40, 45, 50, 55, 60, 65, 70, 75, 80}

// Model is anything that maps a challenge level to a lifetime.
type Model interface {
	Eval(x float64) float64
}

// Labels holds every piece of text drawn on the chart.
type Labels struct {
	Title     string
	XAxis     string
	Primary   string
	Secondary string
	Legend    string
}

func DefaultLabels() Labels {
	return Labels{
		Title:     "Cube Lifetime Function",
		XAxis:     "Challenge Level (Bits)",
		Primary:   "Cube Lifetime (Epochs)",
		Secondary: "Cube Lifetime (Days)",
		Legend:    "Cube Lifetime (Epochs)",
	}
}

// Options are the explicit layout parameters.
type Options struct {
	Units     lifetime.UnitConversion
	Increment float64   // primary tick spacing
	Margin    float64   // fraction of the data span added above and below
	XTicks    []float64 // explicit input-axis ticks; never derived
	Labels    Labels
}

func DefaultOptions() Options {
	return Options{
		Units:     lifetime.DefaultUnits(),
		Increment: DefaultEpochIncrement,
		Margin:    DefaultMargin,
		XTicks:    append([]float64(nil), DefaultXTicks...),
		Labels:    DefaultLabels(),
	}
}

type Point struct {
	X         float64
	Y         float64 // primary units
	Secondary float64 // Y converted to the secondary unit
	Label     string  // Y rounded to the nearest integer
}

type Tick struct {
	Value float64
	Label string
}

// Range is a displayed axis interval.
type Range struct {
	Min, Max float64
}

func (r Range) Span() float64 { return r.Max - r.Min }

// Scale divides both limits by ratio.
func (r Range) Scale(ratio float64) Range {
	return Range{Min: r.Min / ratio, Max: r.Max / ratio}
}

// Chart is a fully laid out, backend-independent chart.
type Chart struct {
	CurveX []float64
	CurveY []float64
	Points []Point

	XTicks         []Tick
	XRange         Range
	PrimaryTicks   []Tick
	PrimaryRange   Range
	SecondaryTicks []Tick
	SecondaryRange Range

	Units  lifetime.UnitConversion
	Labels Labels
}

// Build evaluates m over the samples and lays out the chart.
func Build(m Model, s lifetime.SampleSet, opts Options) (*Chart, error) {
	if err := opts.Units.Validate(); err != nil {
		return nil, err
	}
	if len(s.Curve) == 0 {
		return nil, ErrEmptySamples
	}

	c := &Chart{
		CurveX: append([]float64(nil), s.Curve...),
		CurveY: evalAll(m, s.Curve),
		Units:  opts.Units,
		Labels: opts.Labels,
	}
	for i, y := range evalAll(m, s.Challenges) {
		c.Points = append(c.Points, Point{
			X:         s.Challenges[i],
			Y:         y,
			Secondary: opts.Units.ToSecondary(y),
			Label:     annotation(y),
		})
	}

	lo, hi := minMax(c.CurveY)
	if err := CheckIncrement(hi, opts.Increment); err != nil {
		return nil, err
	}
	c.PrimaryTicks = PrimaryTicks(hi, opts.Increment)
	c.PrimaryRange = displayRange(lo, hi, opts.Margin, c.PrimaryTicks)
	c.SecondaryTicks = SecondaryTicks(c.PrimaryTicks, opts.Units)
	c.SecondaryRange = c.PrimaryRange.Scale(opts.Units.PerUnit)

	c.XTicks = make([]Tick, len(opts.XTicks))
	for i, x := range opts.XTicks {
		c.XTicks[i] = Tick{Value: x, Label: formatNumber(x)}
	}
	c.XRange = xRange(s, opts.Margin, opts.XTicks)

	return c, nil
}

// CheckIncrement reports whether inc yields a usable primary axis for a
// curve peaking at max: positive, finite, and at most MaxTicks ticks.
func CheckIncrement(max, inc float64) error {
	if inc <= 0 || math.IsNaN(inc) || math.IsInf(inc, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidIncrement, inc)
	}
	if n := intervals(max, inc); math.IsNaN(n) || n >= MaxTicks {
		return fmt.Errorf("%w: %v gives more than %d ticks up to %v", ErrInvalidIncrement, inc, MaxTicks, max)
	}
	return nil
}

func intervals(max, inc float64) float64 {
	if !(max > 0) && !math.IsNaN(max) {
		return 0
	}
	return math.Ceil(max / inc)
}

// PrimaryTicks returns 0, inc, 2*inc, ... ending at the first multiple of
// inc that is >= max. Callers check the pair with CheckIncrement first.
func PrimaryTicks(max, inc float64) []Tick {
	steps := lifetime.Arange(0, intervals(max, inc)+0.5, 1)
	ticks := make([]Tick, len(steps))
	for i, k := range steps {
		v := k * inc
		ticks[i] = Tick{Value: v, Label: formatNumber(v)}
	}
	return ticks
}

// SecondaryTicks divides every primary tick by the conversion ratio. Labels
// are the truncated integer followed by the unit suffix.
func SecondaryTicks(primary []Tick, u lifetime.UnitConversion) []Tick {
	ticks := make([]Tick, len(primary))
	for i, t := range primary {
		v := u.ToSecondary(t.Value)
		ticks[i] = Tick{Value: v, Label: strconv.Itoa(int(v)) + u.SecondarySuffix}
	}
	return ticks
}

// PrimaryToSecondary converts a primary-axis value to the secondary axis.
func (c *Chart) PrimaryToSecondary(v float64) float64 {
	return c.Units.ToSecondary(v)
}

// MaxCurve returns the largest curve value.
func (c *Chart) MaxCurve() float64 {
	_, hi := minMax(c.CurveY)
	return hi
}

// PointIndex returns the index of the challenge point at x, or -1.
func (c *Chart) PointIndex(x float64) int {
	for i, p := range c.Points {
		if p.X == x {
			return i
		}
	}
	return -1
}

// displayRange pads [lo, hi] by margin*span and widens it to cover ticks.
func displayRange(lo, hi, margin float64, ticks []Tick) Range {
	pad := (hi - lo) * margin
	if pad == 0 {
		pad = math.Max(math.Abs(hi)*margin, 1)
	}
	r := Range{Min: lo - pad, Max: hi + pad}
	for _, t := range ticks {
		r.Min = math.Min(r.Min, t.Value)
		r.Max = math.Max(r.Max, t.Value)
	}
	return r
}

// xRange pads the sampled domain like displayRange and widens it to cover
// the explicit ticks.
func xRange(s lifetime.SampleSet, margin float64, ticks []float64) Range {
	lo, hi := s.Domain()
	vs := make([]Tick, len(ticks))
	for i, t := range ticks {
		vs[i] = Tick{Value: t}
	}
	return displayRange(lo, hi, margin, vs)
}

func evalAll(m Model, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Eval(x)
	}
	return ys
}

func annotation(y float64) string {
	r := math.Round(y)
	if r == 0 {
		r = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(r, 'f', 0, 64)
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func minMax(vs []float64) (float64, float64) {
	if len(vs) == 0 {
		return 0, 0
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}
