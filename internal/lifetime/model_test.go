package lifetime

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultModelCoefficients(t *testing.T) {
	m := DefaultModel()

	if math.Abs(m.Slope()-960.0/70.0) > 1e-12 {
		t.Errorf("expected slope %f, got %f", 960.0/70.0, m.Slope())
	}
	if math.Abs(m.Intercept()-(-960.0/7.0)) > 1e-9 {
		t.Errorf("expected intercept %f, got %f", -960.0/7.0, m.Intercept())
	}
}

func TestCalibrationPointsAreExact(t *testing.T) {
	m := DefaultModel()

	if got := m.Eval(10); got != 0 {
		t.Errorf("Eval(10) = %v, want exactly 0", got)
	}
	if got := m.Eval(80); got != 960 {
		t.Errorf("Eval(80) = %v, want exactly 960", got)
	}
}

func TestEvalMatchesLineEquation(t *testing.T) {
	m := DefaultModel()

	for _, x := range []float64{-5, 0, 12.5, 25, 33.3, 50, 79.9, 120} {
		want := m.Slope()*x + m.Intercept()
		if got := m.Eval(x); math.Abs(got-want) > 1e-9 {
			t.Errorf("Eval(%v) = %v, want %v", x, got, want)
		}
	}
}

func TestEvalMonotonic(t *testing.T) {
	m := DefaultModel()
	xs := Linspace(10, 80, 500)
	ys := m.EvalAll(xs)

	for i := 1; i < len(ys); i++ {
		if !(ys[i-1] < ys[i]) {
			t.Fatalf("not increasing at %d: %v >= %v", i, ys[i-1], ys[i])
		}
	}
}

func TestEvalAllDoesNotAlias(t *testing.T) {
	m := DefaultModel()
	xs := []float64{10, 20, 30}
	ys := m.EvalAll(xs)

	ys[0] = 99
	if xs[0] != 10 {
		t.Error("EvalAll wrote through to its input")
	}
	if len(m.EvalAll(nil)) != 0 {
		t.Error("expected empty result for nil input")
	}
}

func TestNewLinearModel_Degenerate(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"equal inputs", 10, 0, 10, 960},
		{"NaN input", math.NaN(), 0, 80, 960},
		{"Inf output", 10, math.Inf(1), 80, 960},
		{"overflowing slope", 10, -1e308, 80, 1e308},
		{"overflowing slope over a narrow span", 10, 0, 10.5, math.MaxFloat64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLinearModel(tt.x1, tt.y1, tt.x2, tt.y2)
			if !errors.Is(err, ErrDegenerateCalibration) {
				t.Errorf("expected ErrDegenerateCalibration, got %v", err)
			}
		})
	}
}

func TestNewLinearModel_Decreasing(t *testing.T) {
	m, err := NewLinearModel(0, 100, 10, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Slope() != -10 {
		t.Errorf("expected slope -10, got %f", m.Slope())
	}
	if got := m.Eval(5); math.Abs(got-50) > 1e-12 {
		t.Errorf("Eval(5) = %v, want 50", got)
	}
}

func TestUnitConversion(t *testing.T) {
	u := DefaultUnits()
	m := DefaultModel()

	if err := u.Validate(); err != nil {
		t.Fatalf("default units invalid: %v", err)
	}
	for _, x := range []float64{10, 27.5, 80} {
		if got, want := u.ToSecondary(m.Eval(x)), m.Eval(x)/16; got != want {
			t.Errorf("ToSecondary(model(%v)) = %v, want %v", x, got, want)
		}
	}
	if u.ToSecondary(960) != 60 {
		t.Errorf("960 epochs should be 60 days, got %v", u.ToSecondary(960))
	}
}

func TestUnitConversion_InvalidRatio(t *testing.T) {
	for _, r := range []float64{0, -16, math.NaN(), math.Inf(1)} {
		u := UnitConversion{PerUnit: r}
		if err := u.Validate(); !errors.Is(err, ErrInvalidRatio) {
			t.Errorf("ratio %v: expected ErrInvalidRatio, got %v", r, err)
		}
	}
}
