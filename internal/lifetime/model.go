package lifetime

import (
	"fmt"
	"math"
)

// Default calibration points: a cube mined at 10 bits lives 0 epochs,
// one mined at 80 bits lives 960 epochs.
const (
	DefaultX1 = 10.0
	DefaultY1 = 0.0
	DefaultX2 = 80.0
	DefaultY2 = 960.0
)

// LinearModel maps a challenge level to a lifetime through two calibration points.
type LinearModel struct {
	x1, y1    float64
	x2, y2    float64
	slope     float64
	intercept float64
}

// NewLinearModel returns the line through (x1, y1) and (x2, y2).
func NewLinearModel(x1, y1, x2, y2 float64) (LinearModel, error) {
	for _, v := range []float64{x1, y1, x2, y2} {
		if !finite(v) {
			return LinearModel{}, fmt.Errorf("%w: got %v", ErrDegenerateCalibration, v)
		}
	}
	if x1 == x2 {
		return LinearModel{}, fmt.Errorf("%w: x1 = x2 = %v", ErrDegenerateCalibration, x1)
	}

	slope := (y2 - y1) / (x2 - x1)
	intercept := y1 - slope*x1
	if !finite(slope) || !finite(intercept) {
		return LinearModel{}, fmt.Errorf("%w: slope %v, intercept %v", ErrDegenerateCalibration, slope, intercept)
	}
	return LinearModel{
		x1: x1, y1: y1,
		x2: x2, y2: y2,
		slope:     slope,
		intercept: intercept,
	}, nil
}

// DefaultModel returns the model through (10, 0) and (80, 960).
func DefaultModel() LinearModel {
	m, err := NewLinearModel(DefaultX1, DefaultY1, DefaultX2, DefaultY2)
	if err != nil {
		panic(err)
	}
	return m
}

// Eval returns slope*x + intercept. The calibration inputs map to their
// calibration outputs exactly.
func (m LinearModel) Eval(x float64) float64 {
	switch x {
	case m.x1:
		return m.y1
	case m.x2:
		return m.y2
	}
	return m.slope*x + m.intercept
}

// EvalAll evaluates the model at every x and returns a new slice.
func (m LinearModel) EvalAll(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = m.Eval(x)
	}
	return ys
}

func (m LinearModel) Slope() float64     { return m.slope }
func (m LinearModel) Intercept() float64 { return m.intercept }

// Calibration returns the two points the line was built from.
func (m LinearModel) Calibration() (x1, y1, x2, y2 float64) {
	return m.x1, m.y1, m.x2, m.y2
}

func (m LinearModel) String() string {
	return fmt.Sprintf("y = %.4f*x %+.4f", m.slope, m.intercept)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
