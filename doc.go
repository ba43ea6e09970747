// Package ensemble combines multiple base clusterings of the same objects
// into a single consensus clustering.
//
// Each base clustering is one row of the input matrix: a label per object,
// or Missing for objects that run did not assign. The rows may come from
// different algorithms, different parameterizations, or different samples;
// labels do not need to agree across rows, be contiguous, or start at zero.
//
// Basic usage:
//
//	baseClusters := [][]ensemble.Label{
//		{0, 0, 1, 1},
//		{0, 0, 1, 2},
//		{1, 1, 0, 0},
//	}
//	cfg := ensemble.DefaultConfig()
//	labels, err := ensemble.ClusterEnsembles(baseClusters, cfg)
//	// labels[j] is the consensus cluster ID for object j, in [0, NClass)
//
// # Solver selection
//
// Four consensus solvers are available via Config.Solver:
//
//	cfg.Solver = ensemble.SolverCSPA // object co-occurrence graph partitioning
//	cfg.Solver = ensemble.SolverMCLA // meta-clustering of the clusters themselves
//	cfg.Solver = ensemble.SolverHBGF // bipartite object/cluster graph partitioning
//	cfg.Solver = ensemble.SolverNMF  // bi-orthogonal three-factor NMF
//
// The default is HBGF, which scales best with the number of objects. Each
// solver is also exposed directly (CSPA, MCLA, HBGF, NMF) for callers that
// do not need the orchestration layer.
//
// CSPA, MCLA, and HBGF reduce consensus construction to balanced k-way
// graph partitioning. The partitioner is pluggable via Config.Partitioner;
// the built-in GreedyPartitioner keeps the package pure Go, and callers may
// substitute a METIS binding with the same CSR contract.
//
// MCLA's tie-breaking and NMF's factor initialization draw from Config.Rand.
// Seed it for reproducible output; left nil, a time-seeded source is used.
package ensemble
