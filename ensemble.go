package ensemble

import (
	"fmt"
	"log"
	"math/rand"
	"runtime"
	"time"
)

// Label is one cluster assignment from a base clustering run. Labels are
// non-negative integers and need not be contiguous or agree across runs.
type Label int

// Missing marks an object a base clustering run did not assign to any
// cluster. Missing never matches any label, including another Missing.
const Missing Label = -1

// labelsMatch reports whether two assignments denote the same cluster.
func labelsMatch(a, b Label) bool {
	return a != Missing && b != Missing && a == b
}

// Solver selects the consensus construction strategy.
type Solver string

const (
	// SolverCSPA partitions the object co-occurrence similarity graph.
	SolverCSPA Solver = "cspa"
	// SolverMCLA groups the base clusters themselves into meta-clusters
	// and assigns each object to its strongest meta-cluster.
	SolverMCLA Solver = "mcla"
	// SolverHBGF partitions a bipartite graph of objects and clusters.
	SolverHBGF Solver = "hbgf"
	// SolverNMF factorizes the co-association matrix with a bi-orthogonal
	// three-factor non-negative matrix factorization.
	SolverNMF Solver = "nmf"
)

// Config controls consensus clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// NClass is the number of consensus classes. 0 means derive it as the
	// maximum, over all runs, of the number of distinct non-Missing labels
	// used by that run. Must be >= 0. Default: 0 (derive).
	NClass int

	// Solver is the consensus construction strategy. One of SolverCSPA,
	// SolverMCLA, SolverHBGF, SolverNMF. Default: SolverHBGF.
	Solver Solver

	// NMFMaxIter is the number of multiplicative update rounds the NMF
	// solver runs. The loop always runs the full count; there is no
	// convergence check. 0 means 500. Must be >= 0. Default: 500.
	NMFMaxIter int

	// Workers controls the number of goroutines for the pairwise-distance
	// stage of MCLA. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int

	// Rand supplies the randomness for NMF factor initialization and MCLA
	// tie-breaking. Seed it for reproducible output. nil means a
	// time-seeded source; outputs are then non-deterministic under ties.
	Rand *rand.Rand

	// Partitioner is the balanced k-way graph partitioner used by CSPA,
	// MCLA, and HBGF. nil means the built-in GreedyPartitioner. Errors
	// from a caller-supplied partitioner propagate unchanged.
	Partitioner Partitioner

	// Verbose emits human-readable progress lines (class count, solver,
	// problem dimensions) via the log package. Purely informational.
	Verbose bool
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Solver:     SolverHBGF,
		NMFMaxIter: 500,
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Solver == "" {
		cfg.Solver = SolverHBGF
	}
	if cfg.NMFMaxIter == 0 {
		cfg.NMFMaxIter = 500
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Partitioner == nil {
		cfg.Partitioner = &GreedyPartitioner{}
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error if not. NClass must already be resolved (derived or explicit).
func validateConfig(cfg *Config) error {
	if cfg.NClass <= 0 {
		return fmt.Errorf("ensemble: NClass must be a positive integer, got %d", cfg.NClass)
	}
	switch cfg.Solver {
	case SolverCSPA, SolverMCLA, SolverHBGF, SolverNMF:
		// valid
	default:
		return fmt.Errorf("ensemble: invalid Solver %q, want one of %q, %q, %q, %q",
			cfg.Solver, SolverCSPA, SolverMCLA, SolverHBGF, SolverNMF)
	}
	if cfg.NMFMaxIter < 0 {
		return fmt.Errorf("ensemble: NMFMaxIter must be >= 0, got %d", cfg.NMFMaxIter)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("ensemble: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

// validateBaseClusters checks the shape and label range of the input matrix.
func validateBaseClusters(baseClusters [][]Label) error {
	if len(baseClusters) == 0 {
		return fmt.Errorf("ensemble: baseClusters must contain at least one run")
	}
	n := len(baseClusters[0])
	if n == 0 {
		return fmt.Errorf("ensemble: baseClusters must contain at least one object")
	}
	for r, bc := range baseClusters {
		if len(bc) != n {
			return fmt.Errorf("ensemble: run %d has %d objects, want %d (all runs must cover the same objects)",
				r, len(bc), n)
		}
		for j, l := range bc {
			if l < 0 && l != Missing {
				return fmt.Errorf("ensemble: run %d, object %d: label %d is negative (labels must be >= 0 or Missing)",
					r, j, int(l))
			}
		}
	}
	return nil
}

// defaultNClass derives the class count as the maximum number of distinct
// non-Missing labels used by any single run.
func defaultNClass(baseClusters [][]Label) int {
	nclass := 0
	for _, bc := range baseClusters {
		seen := make(map[Label]struct{})
		for _, l := range bc {
			if l != Missing {
				seen[l] = struct{}{}
			}
		}
		if len(seen) > nclass {
			nclass = len(seen)
		}
	}
	return nclass
}

// ClusterEnsembles combines the base clusterings into a single consensus
// clustering. baseClusters holds one run per row and one object per column;
// entries are cluster labels or Missing. The returned slice has one entry
// per object, each in [0, NClass).
func ClusterEnsembles(baseClusters [][]Label, cfg Config) ([]int, error) {
	applyDefaults(&cfg)
	if err := validateBaseClusters(baseClusters); err != nil {
		return nil, err
	}
	if cfg.NClass == 0 {
		cfg.NClass = defaultNClass(baseClusters)
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if cfg.Verbose {
		log.Printf("ensemble: consensus clustering")
		log.Printf("ensemble:   number of classes: %d", cfg.NClass)
		log.Printf("ensemble:   solver: %s", cfg.Solver)
		log.Printf("ensemble:   objects per run: %d", len(baseClusters[0]))
		log.Printf("ensemble:   base clustering runs: %d", len(baseClusters))
	}

	switch cfg.Solver {
	case SolverCSPA:
		return cspa(baseClusters, cfg.NClass, cfg)
	case SolverMCLA:
		return mcla(baseClusters, cfg.NClass, cfg)
	case SolverHBGF:
		return hbgf(baseClusters, cfg.NClass, cfg)
	case SolverNMF:
		return nmf(baseClusters, cfg.NClass, cfg)
	default:
		// Unreachable: validateConfig rejected unknown solvers.
		return nil, fmt.Errorf("ensemble: invalid Solver %q", cfg.Solver)
	}
}

// prepareDirect readies cfg for a standalone solver invocation, bypassing
// the orchestrator's class-count derivation.
func prepareDirect(baseClusters [][]Label, nclass int, cfg *Config) error {
	applyDefaults(cfg)
	if err := validateBaseClusters(baseClusters); err != nil {
		return err
	}
	if nclass <= 0 {
		return fmt.Errorf("ensemble: NClass must be a positive integer, got %d", nclass)
	}
	if cfg.NMFMaxIter < 0 {
		return fmt.Errorf("ensemble: NMFMaxIter must be >= 0, got %d", cfg.NMFMaxIter)
	}
	return nil
}
