package isometry

import "math"

// epsilon is the difference between 1 and the next representable float64.
const epsilon = 0x1p-52

// A Tolerance decides when two float64 values are close enough to be equal.
//
// x and y are equal if they are identical, if |x-y| <= Abs, or if
// |x-y| <= epsilon*|x+y|*ULP. The relative term scales with the operands, so
// large values are compared in units in the last place while values near zero
// fall back to the absolute bound. NaN is never equal to anything and an
// infinity is only equal to the same infinity.
type Tolerance struct {
	Abs float64
	ULP float64
}

// DefaultTolerance is used by Equal and NotEqual on both Vector3 and Matrix3.
var DefaultTolerance = Tolerance{Abs: 1e-9, ULP: 3}

// Equal reports whether x and y are equal under t.
func (t Tolerance) Equal(x, y float64) bool {
	if x == y {
		return true
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	d := math.Abs(x - y)
	return d <= t.Abs || d <= epsilon*math.Abs(x+y)*t.ULP
}
