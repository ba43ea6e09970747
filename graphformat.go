package ensemble

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// CSR is the compressed sparse row description of a square adjacency
// matrix, the wire format the k-way partitioner consumes. Offsets holds
// one cumulative neighbor count per node plus a leading zero; Neighbors
// holds the column indices of nonzero entries, row by row, ascending
// within each row; Weights, when non-nil, aligns 1:1 with Neighbors and
// carries non-negative integer edge weights. A nil Weights means the
// graph is unweighted.
type CSR struct {
	Offsets   []int
	Neighbors []int
	Weights   []int
}

// NumNodes returns the number of nodes the adjacency describes.
func (g CSR) NumNodes() int { return len(g.Offsets) - 1 }

// Validate checks the structural invariants: Offsets starts at zero and
// ascends to len(Neighbors); every neighbor index is in range; Weights,
// when present, aligns with Neighbors and holds no negative weight.
func (g CSR) Validate() error {
	if len(g.Offsets) == 0 || g.Offsets[0] != 0 {
		return fmt.Errorf("ensemble: CSR offsets must start with 0")
	}
	n := g.NumNodes()
	for i := 1; i <= n; i++ {
		if g.Offsets[i] < g.Offsets[i-1] {
			return fmt.Errorf("ensemble: CSR offsets must be ascending, got %d after %d at index %d",
				g.Offsets[i], g.Offsets[i-1], i)
		}
	}
	if g.Offsets[n] != len(g.Neighbors) {
		return fmt.Errorf("ensemble: CSR offsets end at %d but there are %d neighbors",
			g.Offsets[n], len(g.Neighbors))
	}
	for i, v := range g.Neighbors {
		if v < 0 || v >= n {
			return fmt.Errorf("ensemble: CSR neighbor %d at index %d out of range [0, %d)", v, i, n)
		}
	}
	if g.Weights != nil {
		if len(g.Weights) != len(g.Neighbors) {
			return fmt.Errorf("ensemble: CSR has %d weights for %d neighbors",
				len(g.Weights), len(g.Neighbors))
		}
		for i, w := range g.Weights {
			if w < 0 {
				return fmt.Errorf("ensemble: CSR weight %d at index %d is negative", w, i)
			}
		}
	}
	return nil
}

// ToCSR converts a dense square adjacency matrix to CSR form. Weights are
// truncated toward zero to satisfy the partitioner's integral-weight
// contract — callers with real-valued similarities must scale before
// converting. Entries that are zero after truncation encode "no edge" and
// are dropped entirely; a nonzero diagonal entry is kept as a self-loop.
func ToCSR(adj mat.Matrix) CSR {
	n, _ := adj.Dims()
	g := CSR{
		Offsets: make([]int, 1, n+1),
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w := int(adj.At(i, j))
			if w == 0 {
				continue
			}
			g.Neighbors = append(g.Neighbors, j)
			g.Weights = append(g.Weights, w)
		}
		g.Offsets = append(g.Offsets, len(g.Neighbors))
	}
	return g
}
