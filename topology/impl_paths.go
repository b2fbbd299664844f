// SPDX-License-Identifier: MIT
// Package topology — bounded-length path and walk indices.
//
// Implementation (shared by both strategies):
//   - Stage 1: collect the distinct source rows of the batch.
//   - Stage 2: build the requested rows of a truncated power series with
//     sparse.PowerSeries (SelectRows → repeated sparse Mul).
//   - Stage 3: gather (row position, trg) for every pair.
//
// The result equals computing the full n×n series and gathering, but the
// work scales with the distinct sources of the batch instead of n.

package topology

import (
	"math"

	"github.com/katalvlaran/linkpred/sparse"
	"gonum.org/v1/gonum/floats"
)

// minDegreeTotal floors Σdeg for the stationary distribution. It only
// matters for an edgeless graph, where every numerator is 0 as well.
const minDegreeTotal = math.SmallestNonzeroFloat64

// LocalRandomWalk scores π(i)·Σ_{t=1..T} (Pᵗ)[i,j] where P = D⁻¹A is the
// random-walk transition matrix and π(i) = deg(i)/Σdeg the stationary
// degree distribution. T defaults to 3 (WithWalkSteps).
//
// Rows with degree 0 have transition probability 0: 1/max(deg,1) is
// multiplied into an empty row.
func LocalRandomWalk(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NameLocalRandomWalk, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}

	p, err := sparse.ScaleRows(adj, sparse.SafeDivVec(1, c.deg, 1))
	if err != nil {
		return nil, topologyErrorf(NameLocalRandomWalk, err)
	}
	coeffs := make([]float64, c.cfg.walkSteps)
	for t := range coeffs {
		coeffs[t] = 1
	}
	walks, pos, err := c.seriesRows(NameLocalRandomWalk, p, p, coeffs)
	if err != nil {
		return nil, err
	}

	out, err := sparse.Gather(walks, pos, trg)
	if err != nil {
		return nil, topologyErrorf(NameLocalRandomWalk, err)
	}
	total := floats.Sum(c.deg)
	for k := range out {
		out[k] *= sparse.SafeDiv(c.deg[src[k]], total, minDegreeTotal)
	}

	return out, nil
}

// LocalPathIndex scores Σ_{k=2..d} ε^{k−2}·(Aᵏ)[i,j]. With the defaults
// (d = 3, ε = 1e-3) this is (A²)[i,j] + ε·(A³)[i,j]. Powers of a
// non-negative adjacency are non-negative, so no special-casing is needed.
func LocalPathIndex(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NameLocalPathIndex, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}

	// A² restricted to the source rows is the series start; further terms
	// multiply by A once per extra path length.
	coeffs := make([]float64, c.cfg.pathDepth-1)
	for t := range coeffs {
		coeffs[t] = math.Pow(c.cfg.epsilon, float64(t))
	}
	paths, pos, err := c.seriesRows(NameLocalPathIndex, adj, adj, coeffs, adj)
	if err != nil {
		return nil, err
	}

	out, err := sparse.Gather(paths, pos, trg)
	if err != nil {
		return nil, topologyErrorf(NameLocalPathIndex, err)
	}

	return out, nil
}

// seriesRows returns the rows of Σ_t coeffs[t]·S·stepᵗ for the distinct
// sources of the batch, where S = first[rows,:]·pre[0]·pre[1]·…, plus the
// position of each pair's source row inside the result.
func (c *call) seriesRows(strategy string, first, step *sparse.CSR, coeffs []float64, pre ...*sparse.CSR) (*sparse.CSR, []int, error) {
	rows, pos := sparse.UniqueRows(c.src)
	start, err := sparse.SelectRows(first, rows)
	if err != nil {
		return nil, nil, topologyErrorf(strategy, err)
	}
	for _, m := range pre {
		if start, err = sparse.Mul(start, m); err != nil {
			return nil, nil, topologyErrorf(strategy, err)
		}
	}
	series, err := sparse.PowerSeries(start, step, coeffs)
	if err != nil {
		return nil, nil, topologyErrorf(strategy, err)
	}

	return series, pos, nil
}
