package ensemble

import (
	"math"
	"testing"
)

func TestJaccardMetric(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 0, 1}, []float64{1, 0, 1}, 0},
		{"disjoint", []float64{1, 1, 0, 0}, []float64{0, 0, 1, 1}, 1},
		{"half overlap", []float64{1, 1, 0}, []float64{0, 1, 1}, 1.0 / 3 * 2},
		{"subset", []float64{1, 1, 0, 0}, []float64{1, 0, 0, 0}, 0.5},
		{"both empty", []float64{0, 0}, []float64{0, 0}, 0},
		{"nonzero values act as membership", []float64{2, 0, 7}, []float64{5, 0, 3}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := JaccardMetric{}.Distance(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-12 {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComputePairwiseDistances(t *testing.T) {
	// Three binary rows of width 4.
	data := []float64{
		1, 1, 0, 0,
		1, 1, 0, 0,
		0, 0, 1, 1,
	}
	dist := ComputePairwiseDistances(data, 3, 4, JaccardMetric{})

	if got := dist[0*3+1]; got != 0 {
		t.Errorf("dist(0,1) = %v, want 0", got)
	}
	if got := dist[0*3+2]; got != 1 {
		t.Errorf("dist(0,2) = %v, want 1", got)
	}
	for i := 0; i < 3; i++ {
		if got := dist[i*3+i]; got != 0 {
			t.Errorf("dist(%d,%d) = %v, want 0", i, i, got)
		}
		for j := 0; j < 3; j++ {
			if dist[i*3+j] != dist[j*3+i] {
				t.Errorf("asymmetry at (%d,%d)", i, j)
			}
		}
	}
}

func TestComputePairwiseDistancesParallelMatchesSequential(t *testing.T) {
	// Deterministic pseudo-binary data, large enough to span workers.
	n, dims := 37, 11
	data := make([]float64, n*dims)
	for i := range data {
		if (i*2654435761)%7 < 3 {
			data[i] = 1
		}
	}

	sequential := ComputePairwiseDistances(data, n, dims, JaccardMetric{})
	for _, workers := range []int{2, 4, 16} {
		parallel := ComputePairwiseDistancesParallel(data, n, dims, JaccardMetric{}, workers)
		for i := range sequential {
			if sequential[i] != parallel[i] {
				t.Fatalf("workers=%d: mismatch at %d: %v vs %v",
					workers, i, sequential[i], parallel[i])
			}
		}
	}
}

func TestDistanceFunc(t *testing.T) {
	m := DistanceFunc(func(a, b []float64) float64 { return 42 })
	if got := m.Distance(nil, nil); got != 42 {
		t.Errorf("got %v, want 42", got)
	}
}
