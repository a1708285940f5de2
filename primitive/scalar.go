package primitive

import "math"

// InverseSqrt returns 1 / √x.
//
// Precondition: x must be positive.
func InverseSqrt(x float64) float64 { return 1.0 / math.Sqrt(x) }

// CosSin returns (cos x, sin x) in one call. Operator constructors that take
// an angle always need both halves of the pair.
func CosSin(x float64) (cos, sin float64) {
	sin, cos = math.Sincos(x)
	return cos, sin
}
