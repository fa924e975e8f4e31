package errors

import (
	"math"
)

// CheckFinite returns a NumericalInstabilityError if any value is NaN or Inf.
func CheckFinite(operation string, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return NewNumericalInstabilityError(operation, values)
		}
	}
	return nil
}
