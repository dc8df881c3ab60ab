// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/skylens/drone-roi/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Used for making logical comparisons.
func Round(val float64) float64 {
	return math.Round(val*constants.DecimalPrecision) / constants.DecimalPrecision
}

// IsZero checks if a value is effectively zero (within tolerance)
func IsZero(val float64) bool {
	return math.Abs(val) <= constants.CurrencyTolerance
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// NonNegative floors a value at zero. Rates, costs, and counts are run
// through this before they enter any savings product.
func NonNegative(val float64) float64 {
	if val < 0 {
		return 0
	}
	return val
}

// AtLeast floors a value at a given minimum. Quantities with a natural
// lower bound of one (team size, working hours per day) use AtLeast(1, x).
func AtLeast(minimum, val float64) float64 {
	if val < minimum {
		return minimum
	}
	return val
}

// FromPercent converts a user-facing percentage (e.g. 35) into the
// fractional rate (0.35) the calculation engine works with.
func FromPercent(percent float64) float64 {
	return percent / constants.PercentageMultiplier
}

// ToPercent converts a fractional rate into a user-facing percentage.
func ToPercent(rate float64) float64 {
	return rate * constants.PercentageMultiplier
}
