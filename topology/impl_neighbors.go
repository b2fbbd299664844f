// SPDX-License-Identifier: MIT
// Package topology — neighbourhood-overlap heuristics.
//
// All four strategies reduce to a (weighted) element-wise product of two
// adjacency rows, summed:
//
//	score(i,j) = Σ_z A[i,z] · w[z] · A[j,z]
//
// with w ≡ 1 (common neighbours, Jaccard), w = 1/deg (resource allocation)
// or w = 1/max(ln deg, 1) (Adamic–Adar). The weighted variants are the
// row-wise view of (A[src,:]·diag(w)) ⊙ A[trg,:], evaluated with a sorted
// merge per pair so nothing proportional to n is allocated per pair.

package topology

import (
	"math"

	"github.com/katalvlaran/linkpred/sparse"
)

// CommonNeighbors scores Σ_z A[i,z]·A[j,z]; on unweighted graphs this is
// |N(i) ∩ N(j)|. Pairs without shared neighbours score 0.
func CommonNeighbors(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NameCommonNeighbors, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}

	return c.rowProducts(NameCommonNeighbors, nil)
}

// JaccardIndex scores CN(i,j) / max(deg(i)+deg(j)−CN(i,j), 1).
// The floor keeps the score finite (and 0) when both degrees are 0.
// The score lies in [0,1] only for binary weights; with weighted rows CN
// grows with the product of weights while degrees grow with their sum.
func JaccardIndex(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NameJaccardIndex, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}
	cn, err := c.rowProducts(NameJaccardIndex, nil)
	if err != nil {
		return nil, err
	}

	for k := range cn {
		union := c.deg[src[k]] + c.deg[trg[k]] - cn[k]
		cn[k] = sparse.SafeDiv(cn[k], union, 1)
	}

	return cn, nil
}

// ResourceAllocation scores Σ_{z ∈ N(i)∩N(j)} 1/deg(z).
// Nodes with degree 0 get inverse-degree exactly 0 rather than 1/0.
func ResourceAllocation(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NameResourceAllocation, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}
	w := inverseWeights(c.deg, func(d float64) float64 { return d })

	return c.rowProducts(NameResourceAllocation, w)
}

// AdamicAdar scores Σ_{z ∈ N(i)∩N(j)} 1/max(ln deg(z), 1).
// Degree-zero nodes weigh 0; ln of degrees below e is floored at 1, so the
// weight never exceeds 1 and ln(0) is never evaluated.
func AdamicAdar(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NameAdamicAdar, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}
	w := inverseWeights(c.deg, func(d float64) float64 { return math.Log(math.Max(d, 1)) })

	return c.rowProducts(NameAdamicAdar, w)
}

// inverseWeights builds the diagonal w[z] = 1/max(f(deg[z]), 1), with
// w[z] = 0 wherever deg[z] == 0.
func inverseWeights(deg []float64, f func(float64) float64) []float64 {
	w := make([]float64, len(deg))
	for z, d := range deg {
		if d == 0 {
			continue
		}
		w[z] = sparse.SafeDiv(1, f(d), 1)
	}

	return w
}

// rowProducts evaluates Σ_z A[src[k],z]·w[z]·A[trg[k],z] for every pair.
func (c *call) rowProducts(strategy string, w []float64) ([]float64, error) {
	out := make([]float64, len(c.src))
	for k := range c.src {
		v, err := sparse.RowDot(c.adj, c.src[k], c.adj, c.trg[k], w)
		if err != nil {
			return nil, topologyErrorf(strategy, err)
		}
		out[k] = v
	}

	return out, nil
}
