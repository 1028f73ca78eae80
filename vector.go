package isometry

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
)

// Vector3 is a 3-component vector. Indices 0, 1 and 2 hold x, y and z.
//
// The zero value is the zero vector. Mul and Div are component-wise; use Dot
// and Cross for the linear-algebra products.
type Vector3 [3]float64

var (
	UnitX      = Vector3{1, 0, 0}
	UnitY      = Vector3{0, 1, 0}
	UnitZ      = Vector3{0, 0, 1}
	ZeroVector = Vector3{0, 0, 0}
)

func NewVector3(x, y, z float64) Vector3 { return Vector3{x, y, z} }

func (v Vector3) X() float64 { return v[0] }
func (v Vector3) Y() float64 { return v[1] }
func (v Vector3) Z() float64 { return v[2] }

func (v *Vector3) SetX(f float64) { v[0] = f }
func (v *Vector3) SetY(f float64) { v[1] = f }
func (v *Vector3) SetZ(f float64) { v[2] = f }

// At returns component i.
func (v Vector3) At(i int) (float64, error) {
	if err := checkIndex(i); err != nil {
		return 0, err
	}
	return v[i], nil
}

// Set replaces component i with f.
func (v *Vector3) Set(i int, f float64) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	v[i] = f
	return nil
}

// Ref returns a pointer to component i of v's storage.
func (v *Vector3) Ref(i int) (*float64, error) {
	if err := checkIndex(i); err != nil {
		return nil, err
	}
	return &v[i], nil
}

// Norm returns the Euclidean length of v.
func (v Vector3) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Dot returns the dot product of v and o.
func (v Vector3) Dot(o Vector3) float64 { return v[0]*o[0] + v[1]*o[1] + v[2]*o[2] }

// Cross returns the cross product v × o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vector3) Neg() Vector3 { return Vector3{-v[0], -v[1], -v[2]} }

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }

func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }

// Mul returns the component-wise product of v and o.
func (v Vector3) Mul(o Vector3) Vector3 { return Vector3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

// Div returns the component-wise quotient of v and o. A zero component in o
// gives an infinity or NaN in the result.
func (v Vector3) Div(o Vector3) Vector3 {
	if o[0] == 0 || o[1] == 0 || o[2] == 0 {
		slog.Debug("vector division by zero component", slog.Any("divisor", o))
	}
	return Vector3{v[0] / o[0], v[1] / o[1], v[2] / o[2]}
}

// MulScalar returns v with every component multiplied by s.
func (v Vector3) MulScalar(s float64) Vector3 { return Vector3{v[0] * s, v[1] * s, v[2] * s} }

// DivScalar returns v with every component divided by s.
func (v Vector3) DivScalar(s float64) Vector3 {
	if s == 0 {
		slog.Debug("vector division by zero scalar")
	}
	return Vector3{v[0] / s, v[1] / s, v[2] / s}
}

func (v *Vector3) AddAssign(o Vector3) *Vector3 {
	*v = v.Add(o)
	return v
}

func (v *Vector3) SubAssign(o Vector3) *Vector3 {
	*v = v.Sub(o)
	return v
}

func (v *Vector3) MulAssign(o Vector3) *Vector3 {
	*v = v.Mul(o)
	return v
}

func (v *Vector3) DivAssign(o Vector3) *Vector3 {
	*v = v.Div(o)
	return v
}

func (v *Vector3) MulScalarAssign(s float64) *Vector3 {
	*v = v.MulScalar(s)
	return v
}

func (v *Vector3) DivScalarAssign(s float64) *Vector3 {
	*v = v.DivScalar(s)
	return v
}

// Equal reports whether v and o are equal under DefaultTolerance.
func (v Vector3) Equal(o Vector3) bool { return v.EqualWithin(o, DefaultTolerance) }

func (v Vector3) NotEqual(o Vector3) bool { return !v.Equal(o) }

// EqualWithin reports whether every component of v equals the matching
// component of o under t.
func (v Vector3) EqualWithin(o Vector3, t Tolerance) bool {
	return t.Equal(v[0], o[0]) && t.Equal(v[1], o[1]) && t.Equal(v[2], o[2])
}

// String renders v as "(x: 1, y: 2, z: 3)".
func (v Vector3) String() string {
	var b strings.Builder
	b.WriteString("(x: ")
	b.WriteString(formatFloat(v[0]))
	b.WriteString(", y: ")
	b.WriteString(formatFloat(v[1]))
	b.WriteString(", z: ")
	b.WriteString(formatFloat(v[2]))
	b.WriteByte(')')
	return b.String()
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'g', -1, 64) }
