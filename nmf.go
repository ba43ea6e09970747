package ensemble

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// nmfEpsilon guards the multiplicative-update denominators against
// division by zero. With it, even a degenerate co-association matrix
// yields a well-defined (non-NaN) factorization.
const nmfEpsilon = 1e-8

// NMF runs NMF-based consensus clustering on its own, without the
// orchestration layer. Zero-valued cfg fields are filled with defaults;
// cfg.NClass and cfg.Solver are ignored in favor of nclass. The factor
// initialization draws from cfg.Rand.
func NMF(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	if err := prepareDirect(baseClusters, nclass, &cfg); err != nil {
		return nil, err
	}
	return nmf(baseClusters, nclass, cfg)
}

// nmf factorizes the co-association matrix as Q·S·Qᵗ and reads each
// object's consensus class off the largest entry of its row of Q·sqrt(S).
// Ties take the first maximum — deliberately unlike MCLA's randomized
// tie-break.
func nmf(baseClusters [][]Label, nclass int, cfg Config) ([]int, error) {
	m := CreateConnectivityMatrix(baseClusters)
	q, s := orthogonalNMF(m, nclass, cfg.NMFMaxIter, cfg.Rand)

	n, _ := m.Dims()
	labels := make([]int, n)
	for i := 0; i < n; i++ {
		best, bestVal := 0, math.Inf(-1)
		for j := 0; j < nclass; j++ {
			if v := q.At(i, j) * math.Sqrt(s.At(j, j)); v > bestVal {
				best, bestVal = j, v
			}
		}
		labels[i] = best
	}
	return labels, nil
}

// orthogonalNMF solves the bi-orthogonal three-factor NMF problem
// W ≈ Q·S·Qᵗ with Q (n×nclass) non-negative and S (nclass×nclass)
// diagonal non-negative, by maxiter rounds of multiplicative updates:
//
//	Q ← Q ∘ sqrt( (W·Q·S) / (Q·Qᵗ·W·Q·S + ε) )
//	S ← S ∘ sqrt( (Qᵗ·W·Q) / (Qᵗ·Q·S·Qᵗ·Q + ε) )
//
// Both factors are initialized with uniform [0,1) draws from rng; the off-
// diagonal of S starts at zero and the elementwise update keeps it there.
// The loop always runs the full maxiter rounds — no convergence check —
// and maxiter of zero returns the untouched initialization.
func orthogonalNMF(w *mat.Dense, nclass, maxiter int, rng *rand.Rand) (q, s *mat.Dense) {
	n, _ := w.Dims()

	q = mat.NewDense(n, nclass, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < nclass; j++ {
			q.Set(i, j, rng.Float64())
		}
	}
	s = mat.NewDense(nclass, nclass, nil)
	for j := 0; j < nclass; j++ {
		s.Set(j, j, rng.Float64())
	}

	var qs, wqs, qtwqs, qDen, qRatio mat.Dense
	var qtq, wq, qtwq, sqtq, sDen, sRatio mat.Dense
	for iter := 0; iter < maxiter; iter++ {
		qs.Mul(q, s)
		wqs.Mul(w, &qs)
		qtwqs.Mul(q.T(), &wqs)
		qDen.Mul(q, &qtwqs)
		qRatio.Apply(func(i, j int, v float64) float64 {
			return math.Sqrt(wqs.At(i, j) / (v + nmfEpsilon))
		}, &qDen)
		q.MulElem(q, &qRatio)

		qtq.Mul(q.T(), q)
		wq.Mul(w, q)
		qtwq.Mul(q.T(), &wq)
		sqtq.Mul(s, &qtq)
		sDen.Mul(&qtq, &sqtq)
		sRatio.Apply(func(i, j int, v float64) float64 {
			return math.Sqrt(qtwq.At(i, j) / (v + nmfEpsilon))
		}, &sDen)
		s.MulElem(s, &sRatio)
	}
	return q, s
}
