package matrix

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var identity = Matrix{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 1},
}

func TestMatrix_Mul(t *testing.T) {
	testCases := map[string]struct {
		m, n *Matrix
		want *Matrix
	}{
		"identity left": {
			m:    &identity,
			n:    &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			want: &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
		"identity right": {
			m:    &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			n:    &identity,
			want: &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
		},
		"diagonal": {
			m:    &Matrix{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}},
			n:    &Matrix{{5, 0, 0}, {0, 6, 0}, {0, 0, 7}},
			want: &Matrix{{10, 0, 0}, {0, 18, 0}, {0, 0, 28}},
		},
		"off diagonal terms combine": {
			m:    &Matrix{{1, 2, 0}, {0, 1, 0}, {0, 0, 1}},
			n:    &Matrix{{1, 0, 0}, {3, 1, 0}, {0, 0, 1}},
			want: &Matrix{{7, 2, 0}, {3, 1, 0}, {0, 0, 1}},
		},
		"general": {
			m:    &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
			n:    &Matrix{{9, 8, 7}, {6, 5, 4}, {3, 2, 1}},
			want: &Matrix{{30, 24, 18}, {84, 69, 54}, {138, 114, 90}},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := tc.m.Mul(tc.n)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Error("product did not match expectation:", diff)
			}
		})
	}
}

func TestMatrix_MulNonFinite(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()

	testCases := map[string]struct {
		m, n *Matrix
		want *Matrix
	}{
		"infinite diagonal": {
			m:    &Matrix{{inf, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			n:    &Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 2}},
			want: &Matrix{{inf, nan, nan}, {0, 1, 0}, {0, 0, 2}},
		},
		"infinite diagonal on the right": {
			m:    &Matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 2}},
			n:    &Matrix{{inf, 0, 0}, {0, 1, 0}, {0, 0, 1}},
			want: &Matrix{{inf, 0, 0}, {nan, 1, 0}, {nan, 0, 2}},
		},
		"nan diagonal": {
			m:    &Matrix{{1, 0, 0}, {0, nan, 0}, {0, 0, 1}},
			n:    &identity,
			want: &Matrix{{1, 0, 0}, {nan, nan, nan}, {0, 0, 1}},
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			got := tc.m.Mul(tc.n)
			if diff := cmp.Diff(tc.want, got, cmpopts.EquateNaNs()); diff != "" {
				t.Error("product did not propagate non-finite values:", diff)
			}
		})
	}
}

func TestMatrix_Det(t *testing.T) {
	testCases := map[string]struct {
		m    *Matrix
		want float64
	}{
		"identity":  {m: &identity, want: 1},
		"zero":      {m: &Matrix{}, want: 0},
		"singular":  {m: &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, want: 0},
		"general":   {m: &Matrix{{2, 0, 1}, {1, 3, 2}, {1, 1, 2}}, want: 6},
		"swap rows": {m: &Matrix{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, want: -1},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			if got := tc.m.Det(); got != tc.want {
				t.Errorf("Det() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatrix_Transpose(t *testing.T) {
	m := &Matrix{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}
	want := &Matrix{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}}

	if diff := cmp.Diff(want, m.Transpose()); diff != "" {
		t.Error("transpose did not match expectation:", diff)
	}
	if diff := cmp.Diff(m, m.Transpose().Transpose()); diff != "" {
		t.Error("double transpose changed the matrix:", diff)
	}
}
