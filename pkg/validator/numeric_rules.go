package validator

import (
	"math"

	"github.com/meetnow/validated-attributes/pkg/value"
)

// Above this magnitude floats print in exponent form and no longer read back
// as base-10 integers.
const maxIntegralFloat = 1e21

// IsInteger accepts Go integers and floats holding an integral value.
// NaN and infinities are rejected.
func IsInteger(v any) bool {
	f, ok := value.AsFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) == f && math.Abs(f) < maxIntegralFloat
}
