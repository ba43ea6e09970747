package ensemble

import "gonum.org/v1/gonum/mat"

// CreateConnectivityMatrix builds the co-association matrix: entry (i, j)
// is the fraction of runs in which objects i and j share a label. Missing
// never matches, so a pair with a Missing member contributes nothing to
// that run's count. The diagonal is exactly 1: an object always
// co-clusters with itself, whether or not a run assigned it a label.
func CreateConnectivityMatrix(baseClusters [][]Label) *mat.Dense {
	nRuns := len(baseClusters)
	n := len(baseClusters[0])

	m := mat.NewDense(n, n, nil)
	for _, bc := range baseClusters {
		for i := 0; i < n; i++ {
			if bc[i] == Missing {
				continue
			}
			for j := i + 1; j < n; j++ {
				if labelsMatch(bc[i], bc[j]) {
					m.Set(i, j, m.At(i, j)+1)
					m.Set(j, i, m.At(j, i)+1)
				}
			}
		}
	}
	m.Scale(1/float64(nRuns), m)

	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
