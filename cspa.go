package ensemble

import "gonum.org/v1/gonum/mat"

// CSPA runs the cluster-based similarity partitioning algorithm on its
// own, without the orchestration layer. Zero-valued cfg fields are filled
// with defaults; cfg.NClass and cfg.Solver are ignored in favor of nclass.
func CSPA(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	if err := prepareDirect(baseClusters, nclass, &cfg); err != nil {
		return nil, err
	}
	return cspa(baseClusters, nclass, cfg)
}

// cspa partitions the object co-occurrence graph S = H·Hᵗ, where S[i][j]
// counts the hyperedges containing both objects. The diagonal — the number
// of runs that labeled the object — is nonzero and kept as a self-loop.
// The membership vector is the consensus labeling directly.
func cspa(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	h, err := CreateHypergraph(baseClusters)
	if err != nil {
		return nil, err
	}

	var s mat.Dense
	s.Mul(h, h.T())

	return partitionGraph(cfg.Partitioner, nclass, ToCSR(&s))
}
