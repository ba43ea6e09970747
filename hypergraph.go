package ensemble

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// CreateHypergraph builds the binary incidence matrix of the base clusters'
// hypergraph. Each run contributes one column per distinct non-Missing
// label it uses, in ascending label order; column blocks are concatenated
// in run order. Entry (i, c) is 1 iff column c's run assigned column c's
// label to object i. An object with a Missing label in a run contributes
// no 1 in that run's block, and a run with no labels at all contributes
// no columns.
//
// Returns an error when every entry of every run is Missing, since the
// incidence matrix would have no columns.
func CreateHypergraph(baseClusters [][]Label) (*mat.Dense, error) {
	n := len(baseClusters[0])

	ids := make([]map[Label]int, len(baseClusters))
	cols := 0
	for r, bc := range baseClusters {
		ids[r] = labelColumnIDs(bc)
		cols += len(ids[r])
	}
	if cols == 0 {
		return nil, fmt.Errorf("ensemble: base clusterings contain no labels (every entry is Missing)")
	}

	h := mat.NewDense(n, cols, nil)
	offset := 0
	for r, bc := range baseClusters {
		for i, l := range bc {
			if l == Missing {
				continue
			}
			h.Set(i, offset+ids[r][l], 1)
		}
		offset += len(ids[r])
	}
	return h, nil
}

// labelColumnIDs assigns 0-based column ids, local to one run, to the
// run's distinct non-Missing labels in ascending label order.
func labelColumnIDs(bc []Label) map[Label]int {
	seen := make(map[Label]struct{})
	for _, l := range bc {
		if l != Missing {
			seen[l] = struct{}{}
		}
	}
	unique := make([]Label, 0, len(seen))
	for l := range seen {
		unique = append(unique, l)
	}
	sort.Slice(unique, func(i, j int) bool { return unique[i] < unique[j] })

	ids := make(map[Label]int, len(unique))
	for c, l := range unique {
		ids[l] = c
	}
	return ids
}
