// SPDX-License-Identifier: MIT

package topology_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/builder"
	"github.com/katalvlaran/linkpred/sparse"
)

const tol = 1e-12

// pathGraph returns the unweighted path 0-1-2-3.
func pathGraph(t *testing.T) *sparse.CSR {
	t.Helper()
	adj, err := builder.BuildGraph(nil, builder.Path(4))
	require.NoError(t, err)

	return adj
}

// mixedGraph joins a seeded G(n,p) sample, a star and two isolated nodes.
func mixedGraph(t testing.TB) *sparse.CSR {
	t.Helper()
	adj, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(11)},
		builder.RandomSparse(20, 0.25), builder.Star(5), builder.Isolated(2),
	)
	require.NoError(t, err)

	return adj
}

// allPairs enumerates every ordered pair (i,j) of an n-node graph.
func allPairs(n int) (src, trg []int) {
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			src = append(src, i)
			trg = append(trg, j)
		}
	}

	return src, trg
}

// densePower returns a^k for k >= 1.
func densePower(a *mat.Dense, k int) *mat.Dense {
	out := mat.DenseCopyOf(a)
	for ; k > 1; k-- {
		var next mat.Dense
		next.Mul(out, a)
		out = &next
	}

	return out
}

// denseLRW is the reference π(i)·Σ_{t=1..T} Pᵗ[i,j] on a dense copy.
func denseLRW(t *testing.T, adj *sparse.CSR, steps int, src, trg []int) []float64 {
	t.Helper()
	a, err := adj.ToDense()
	require.NoError(t, err)
	n, _ := a.Dims()
	deg := adj.RowSums()
	total := 0.0
	for _, d := range deg {
		total += d
	}
	p := mat.NewDense(n, n, nil)
	p.Apply(func(i, j int, v float64) float64 { return v / math.Max(deg[i], 1) }, a)

	sum := mat.NewDense(n, n, nil)
	for s := 1; s <= steps; s++ {
		sum.Add(sum, densePower(p, s))
	}
	out := make([]float64, len(src))
	for k := range src {
		if total > 0 {
			out[k] = deg[src[k]] / total * sum.At(src[k], trg[k])
		}
	}

	return out
}

// denseLPI is the reference Σ_{k=2..d} ε^{k-2}·Aᵏ[i,j] on a dense copy.
func denseLPI(t *testing.T, adj *sparse.CSR, eps float64, depth int, src, trg []int) []float64 {
	t.Helper()
	a, err := adj.ToDense()
	require.NoError(t, err)
	out := make([]float64, len(src))
	for k := 2; k <= depth; k++ {
		pk := densePower(a, k)
		w := math.Pow(eps, float64(k-2))
		for p := range src {
			out[p] += w * pk.At(src[p], trg[p])
		}
	}

	return out
}
