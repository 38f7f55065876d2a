package lifetime

import (
	"fmt"
	"math"
)

const DefaultEpochsPerDay = 16.0

// UnitConversion relabels primary values in a secondary unit.
// It never alters the underlying data.
type UnitConversion struct {
	PerUnit         float64 // primary units per secondary unit
	PrimaryName     string
	SecondaryName   string
	SecondarySuffix string
}

// DefaultUnits converts epochs to days at 16 epochs per day.
func DefaultUnits() UnitConversion {
	return UnitConversion{
		PerUnit:         DefaultEpochsPerDay,
		PrimaryName:     "Epochs",
		SecondaryName:   "Days",
		SecondarySuffix: "d",
	}
}

func (u UnitConversion) Validate() error {
	if u.PerUnit <= 0 || math.IsNaN(u.PerUnit) || math.IsInf(u.PerUnit, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidRatio, u.PerUnit)
	}
	return nil
}

// ToSecondary converts a primary value to the secondary unit.
func (u UnitConversion) ToSecondary(v float64) float64 {
	return v / u.PerUnit
}
