package lifetime

import (
	"fmt"
	"math"
	"slices"
)

const (
	DefaultDomainStart = 10.0
	DefaultDomainEnd   = 80.0
	DefaultCurvePoints = 500
)

// DefaultChallenges are the challenge levels annotated on the chart.
var DefaultChallenges = []float64{10, 15, 20, 25, 30, 35, 40, 45, 50}

// SampleSet holds the inputs the model is evaluated at: a dense curve over
// the display domain and the discrete challenge levels.
type SampleSet struct {
	Curve      []float64
	Challenges []float64
}

// NewSampleSet samples n evenly spaced points over [start, end] and copies
// the challenge levels.
func NewSampleSet(start, end float64, n int, challenges []float64) (SampleSet, error) {
	if n < 2 {
		return SampleSet{}, fmt.Errorf("%w: need at least 2 curve points, got %d", ErrInvalidSamples, n)
	}
	if !(start < end) || math.IsInf(start, 0) || math.IsInf(end, 0) {
		return SampleSet{}, fmt.Errorf("%w: domain [%v, %v]", ErrInvalidSamples, start, end)
	}
	for i := 1; i < len(challenges); i++ {
		if !(challenges[i-1] < challenges[i]) {
			return SampleSet{}, fmt.Errorf("%w: %v then %v", ErrUnorderedChallenges, challenges[i-1], challenges[i])
		}
	}

	return SampleSet{
		Curve:      Linspace(start, end, n),
		Challenges: slices.Clone(challenges),
	}, nil
}

// DefaultSampleSet is 500 points over [10, 80] plus challenges 10..50 in steps of 5.
func DefaultSampleSet() SampleSet {
	s, err := NewSampleSet(DefaultDomainStart, DefaultDomainEnd, DefaultCurvePoints, DefaultChallenges)
	if err != nil {
		panic(err)
	}
	return s
}

// Domain returns the first and last curve input.
func (s SampleSet) Domain() (float64, float64) {
	if len(s.Curve) == 0 {
		return 0, 0
	}
	return s.Curve[0], s.Curve[len(s.Curve)-1]
}

// Linspace returns n evenly spaced values over [start, end], endpoints included.
func Linspace(start, end float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{start}
	}
	xs := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range xs {
		xs[i] = start + float64(i)*step
	}
	xs[n-1] = end
	return xs
}

// Arange returns start, start+step, ... for values strictly below stop.
func Arange(start, stop, step float64) []float64 {
	if step <= 0 || !(start < stop) {
		return nil
	}
	count := math.Ceil((stop - start) / step)
	if math.IsInf(count, 0) || math.IsNaN(count) || count > math.MaxInt32 {
		return nil
	}
	n := int(count)
	xs := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		xs = append(xs, start+float64(i)*step)
	}
	return xs
}
