package ensemble

import (
	"math"
	"testing"
)

func TestCreateConnectivityMatrixFractions(t *testing.T) {
	// Objects 0,1 agree in both runs; 2,3 agree in one of two.
	base := [][]Label{
		{0, 0, 1, 1},
		{0, 0, 1, 2},
	}
	m := CreateConnectivityMatrix(base)

	tests := []struct {
		i, j int
		want float64
	}{
		{0, 1, 1.0},
		{1, 0, 1.0},
		{2, 3, 0.5},
		{3, 2, 0.5},
		{0, 2, 0.0},
		{0, 3, 0.0},
	}
	for _, tc := range tests {
		if got := m.At(tc.i, tc.j); math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("M[%d][%d] = %v, want %v", tc.i, tc.j, got, tc.want)
		}
	}
}

func TestCreateConnectivityMatrixDiagonal(t *testing.T) {
	tests := []struct {
		name string
		base [][]Label
	}{
		{"no missing", [][]Label{{0, 0, 1}, {1, 0, 0}}},
		{"some missing", [][]Label{{0, Missing, 1}, {Missing, 0, 1}}},
		{"object missing in every run", [][]Label{{Missing, 0, 1}, {Missing, 0, 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := CreateConnectivityMatrix(tc.base)
			n, _ := m.Dims()
			for i := 0; i < n; i++ {
				if got := m.At(i, i); got != 1 {
					t.Errorf("M[%d][%d] = %v, want exactly 1", i, i, got)
				}
			}
		})
	}
}

func TestCreateConnectivityMatrixMissingNeverMatches(t *testing.T) {
	// Objects 0 and 1 are both Missing in the only run: no co-association.
	m := CreateConnectivityMatrix([][]Label{{Missing, Missing, 0}})
	if got := m.At(0, 1); got != 0 {
		t.Errorf("M[0][1] = %v, want 0 (Missing must not match Missing)", got)
	}
	if got := m.At(1, 0); got != 0 {
		t.Errorf("M[1][0] = %v, want 0 (Missing must not match Missing)", got)
	}
}

func TestCreateConnectivityMatrixSymmetric(t *testing.T) {
	base := [][]Label{
		{0, 1, 0, 2, Missing},
		{1, 1, 0, 0, 0},
		{2, Missing, 2, 1, 1},
	}
	m := CreateConnectivityMatrix(base)
	n, _ := m.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if m.At(i, j) != m.At(j, i) {
				t.Errorf("M[%d][%d] = %v but M[%d][%d] = %v", i, j, m.At(i, j), j, i, m.At(j, i))
			}
		}
	}
}
