package ensemble

import "gonum.org/v1/gonum/mat"

// HBGF runs the hybrid bipartite graph formulation on its own, without
// the orchestration layer. Zero-valued cfg fields are filled with
// defaults; cfg.NClass and cfg.Solver are ignored in favor of nclass.
func HBGF(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	if err := prepareDirect(baseClusters, nclass, &cfg); err != nil {
		return nil, err
	}
	return hbgf(baseClusters, nclass, cfg)
}

// hbgf partitions a bipartite graph over C cluster nodes followed by N
// object nodes, where the only edges connect each object to the clusters
// containing it. All C+N nodes are partitioned together, unweighted; the
// cluster-node assignments are discarded and the object tail returned.
func hbgf(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	h, err := CreateHypergraph(baseClusters)
	if err != nil {
		return nil, err
	}
	n, c := h.Dims()

	w := mat.NewDense(c+n, c+n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c; j++ {
			if h.At(i, j) != 0 {
				w.Set(j, c+i, 1)
				w.Set(c+i, j, 1)
			}
		}
	}

	g := ToCSR(w)
	g.Weights = nil // all object-cluster edges count equally

	membership, err := partitionGraph(cfg.Partitioner, nclass, g)
	if err != nil {
		return nil, err
	}
	return membership[c:], nil
}
