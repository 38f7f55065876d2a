// Package lifetime provides the cube lifetime model.
//
// A cube's lifetime in epochs is a linear function of the challenge level
// (in bits) it was mined at. The line is fixed by two calibration points:
//
//   - [LinearModel]: the line through (X1, Y1) and (X2, Y2)
//   - [UnitConversion]: rescales epochs into a secondary unit (days)
//   - [SampleSet]: the dense curve inputs plus the discrete challenge inputs
//
// # Example
//
//	m := lifetime.DefaultModel()
//	epochs := m.Eval(25)                  // ≈ 205.71
//	days := lifetime.DefaultUnits().ToSecondary(epochs)
//
// All types are immutable values and safe to share between goroutines.
package lifetime
