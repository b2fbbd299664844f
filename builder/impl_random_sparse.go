// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_random_sparse.go - RandomSparse(n, p).
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each admissible edge independently with prob p.
//   - Undirected: unordered pairs {i,j} with i<j. Directed: ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//
// Determinism:
//   - Stable trial order: i asc, then j asc; fixed seed ⇒ fixed graph.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a G(n,p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return builderErrorf(methodRandomSparse, fmt.Sprintf("p=%.6f not in [%.1f,%.1f]", p, probMin, probMax), ErrInvalidProbability)
		}
		stochastic := p > probMin && p < probMax
		if stochastic && cfg.rng == nil {
			return builderErrorf(methodRandomSparse, "no rng", ErrNeedRandSource)
		}

		base := acc.addNodes(n)
		for i := 0; i < n; i++ {
			j0 := i + 1
			if cfg.directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j {
					continue
				}
				if p == probMax || (stochastic && cfg.rng.Float64() < p) {
					acc.addEdge(cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}
