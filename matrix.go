package isometry

import (
	"strings"

	"github.com/ScriptRock/isometry/internal/matrix"
)

// Matrix3 is a 3x3 matrix held as three row vectors.
//
// Add, Sub, Mul and Div act element by element, so Mul is not the matrix
// product. MulVec is the matrix-vector product and MatMul the matrix product.
// m[r][c] addresses the element in row r and column c.
type Matrix3 [3]Vector3

var (
	Identity   = Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	ZeroMatrix = Matrix3{}
	Ones       = Matrix3{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
)

// NewMatrix3 builds a matrix from nine values in row-major order.
func NewMatrix3(
	a00, a01, a02,
	a10, a11, a12,
	a20, a21, a22 float64) Matrix3 {
	return Matrix3{
		{a00, a01, a02},
		{a10, a11, a12},
		{a20, a21, a22},
	}
}

func Matrix3FromRows(r0, r1, r2 Vector3) Matrix3 { return Matrix3{r0, r1, r2} }

// At returns a copy of row i.
func (m Matrix3) At(i int) (Vector3, error) { return m.Row(i) }

// Row returns a copy of row i.
func (m Matrix3) Row(i int) (Vector3, error) {
	if err := checkIndex(i); err != nil {
		return Vector3{}, err
	}
	return m[i], nil
}

// Col returns column j as a new vector.
func (m Matrix3) Col(j int) (Vector3, error) {
	if err := checkIndex(j); err != nil {
		return Vector3{}, err
	}
	return Vector3{m[0][j], m[1][j], m[2][j]}, nil
}

// RowRef returns a pointer to row i of m's storage. Writes through it, such
// as RowRef(1) followed by Set(2, f), change m.
func (m *Matrix3) RowRef(i int) (*Vector3, error) {
	if err := checkIndex(i); err != nil {
		return nil, err
	}
	return &m[i], nil
}

func (m Matrix3) Element(r, c int) (float64, error) {
	row, err := m.Row(r)
	if err != nil {
		return 0, err
	}
	return row.At(c)
}

func (m *Matrix3) SetElement(r, c int, f float64) error {
	row, err := m.RowRef(r)
	if err != nil {
		return err
	}
	return row.Set(c, f)
}

func (m Matrix3) Add(o Matrix3) Matrix3 {
	return Matrix3{m[0].Add(o[0]), m[1].Add(o[1]), m[2].Add(o[2])}
}

func (m Matrix3) Sub(o Matrix3) Matrix3 {
	return Matrix3{m[0].Sub(o[0]), m[1].Sub(o[1]), m[2].Sub(o[2])}
}

// Mul returns the element-wise product of m and o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	return Matrix3{m[0].Mul(o[0]), m[1].Mul(o[1]), m[2].Mul(o[2])}
}

// Div returns the element-wise quotient of m and o.
func (m Matrix3) Div(o Matrix3) Matrix3 {
	return Matrix3{m[0].Div(o[0]), m[1].Div(o[1]), m[2].Div(o[2])}
}

func (m Matrix3) MulScalar(s float64) Matrix3 {
	return Matrix3{m[0].MulScalar(s), m[1].MulScalar(s), m[2].MulScalar(s)}
}

func (m Matrix3) DivScalar(s float64) Matrix3 {
	return Matrix3{m[0].DivScalar(s), m[1].DivScalar(s), m[2].DivScalar(s)}
}

// MulVec returns the matrix-vector product m·v.
func (m Matrix3) MulVec(v Vector3) Vector3 {
	return Vector3{m[0].Dot(v), m[1].Dot(v), m[2].Dot(v)}
}

// MatMul returns the row-by-column matrix product m·o.
func (m Matrix3) MatMul(o Matrix3) Matrix3 {
	return fromRaw(m.raw().Mul(o.raw()))
}

func (m Matrix3) Transpose() Matrix3 { return fromRaw(m.raw().Transpose()) }

// Det returns the determinant of m.
func (m Matrix3) Det() float64 { return m.raw().Det() }

func (m *Matrix3) AddAssign(o Matrix3) *Matrix3 {
	for i := range m {
		m[i].AddAssign(o[i])
	}
	return m
}

func (m *Matrix3) SubAssign(o Matrix3) *Matrix3 {
	for i := range m {
		m[i].SubAssign(o[i])
	}
	return m
}

func (m *Matrix3) MulAssign(o Matrix3) *Matrix3 {
	for i := range m {
		m[i].MulAssign(o[i])
	}
	return m
}

func (m *Matrix3) DivAssign(o Matrix3) *Matrix3 {
	for i := range m {
		m[i].DivAssign(o[i])
	}
	return m
}

func (m *Matrix3) MulScalarAssign(s float64) *Matrix3 {
	for i := range m {
		m[i].MulScalarAssign(s)
	}
	return m
}

func (m *Matrix3) DivScalarAssign(s float64) *Matrix3 {
	for i := range m {
		m[i].DivScalarAssign(s)
	}
	return m
}

// Equal reports whether m and o are equal under DefaultTolerance.
func (m Matrix3) Equal(o Matrix3) bool { return m.EqualWithin(o, DefaultTolerance) }

func (m Matrix3) NotEqual(o Matrix3) bool { return !m.Equal(o) }

func (m Matrix3) EqualWithin(o Matrix3, t Tolerance) bool {
	return m[0].EqualWithin(o[0], t) && m[1].EqualWithin(o[1], t) && m[2].EqualWithin(o[2], t)
}

// String renders m as "[[a00, a01, a02], [a10, a11, a12], [a20, a21, a22]]".
func (m Matrix3) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, row := range m {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j, f := range row {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(formatFloat(f))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

func (m Matrix3) raw() *matrix.Matrix {
	return &matrix.Matrix{m[0], m[1], m[2]}
}

func fromRaw(r *matrix.Matrix) Matrix3 {
	return Matrix3{r[0], r[1], r[2]}
}
