package ensemble

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// MCLA runs the meta-clustering algorithm on its own, without the
// orchestration layer. Zero-valued cfg fields are filled with defaults;
// cfg.NClass and cfg.Solver are ignored in favor of nclass. Exact ties in
// the final assignment are broken uniformly at random from cfg.Rand.
func MCLA(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	if err := prepareDirect(baseClusters, nclass, &cfg); err != nil {
		return nil, err
	}
	return mcla(baseClusters, nclass, cfg)
}

// mcla partitions the hyperedges themselves into nclass meta-clusters
// using a Jaccard similarity graph, then assigns each object to the
// meta-cluster whose hyperedges contain it most often.
func mcla(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	h, err := CreateHypergraph(baseClusters)
	if err != nil {
		return nil, err
	}
	n, c := h.Dims()

	// Hyperedges become rows for the pairwise distance pass.
	edges := make([]float64, c*n)
	for j := 0; j < c; j++ {
		mat.Col(edges[j*n:(j+1)*n], j, h)
	}
	dist := ComputePairwiseDistancesParallel(edges, c, n, JaccardMetric{}, cfg.Workers)

	// Integer similarity trunc(1000·(1−distance)), as the partitioner
	// requires integral weights. The diagonal keeps its true value (1000),
	// consistent with CSPA's nonzero self-loops.
	sim := mat.NewDense(c, c, nil)
	for i := 0; i < c; i++ {
		for j := 0; j < c; j++ {
			sim.Set(i, j, float64(int(1e3*(1-dist[i*c+j]))))
		}
	}

	membership, err := partitionGraph(cfg.Partitioner, nclass, ToCSR(sim))
	if err != nil {
		return nil, err
	}

	// Per object, count the containing hyperedges of each meta-cluster.
	meta := mat.NewDense(n, nclass, nil)
	for j, m := range membership {
		for i := 0; i < n; i++ {
			if h.At(i, j) != 0 {
				meta.Set(i, m, meta.At(i, m)+1)
			}
		}
	}

	labels := make([]int, n)
	ties := make([]int, 0, nclass)
	for i := 0; i < n; i++ {
		maxCount := math.Inf(-1)
		ties = ties[:0]
		for q := 0; q < nclass; q++ {
			v := meta.At(i, q)
			if v > maxCount {
				maxCount = v
				ties = ties[:0]
			}
			if v == maxCount {
				ties = append(ties, q)
			}
		}
		labels[i] = ties[cfg.Rand.Intn(len(ties))]
	}
	return labels, nil
}
