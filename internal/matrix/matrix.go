package matrix

import "math"

// Matrix is a row-major 3x3 matrix: m[r][c].
type Matrix [3][3]float64

// Mul returns the row-by-column product m·n. Non-finite elements propagate
// through every term they take part in, as in the plain sum of products.
func (m *Matrix) Mul(n *Matrix) *Matrix {
	if m.diagonal() && n.diagonal() {
		return &Matrix{
			{m[0][0] * n[0][0], 0, 0},
			{0, m[1][1] * n[1][1], 0},
			{0, 0, m[2][2] * n[2][2]},
		}
	}

	var mn Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				mn[i][j] += m[i][k] * n[k][j]
			}
		}
	}

	return &mn
}

// Det expands along the first row.
func (m *Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m *Matrix) Transpose() *Matrix {
	return &Matrix{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// diagonal reports whether m is diagonal with finite entries on the diagonal.
// Only then are the skipped off-diagonal terms exactly zero.
func (m *Matrix) diagonal() bool {
	return m[0][1] == 0 && m[0][2] == 0 &&
		m[1][0] == 0 && m[1][2] == 0 &&
		m[2][0] == 0 && m[2][1] == 0 &&
		finite(m[0][0]) && finite(m[1][1]) && finite(m[2][2])
}

func finite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }
