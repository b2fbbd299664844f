// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Provide small deterministic fixtures (path graph, random sparse
//     matrices) and a dense reference built with gonum.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linkpred/sparse"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// pathEdges is the undirected path 0-1-2-3.
var pathEdges = [][2]int{{0, 1}, {1, 2}, {2, 3}}

// mustPath builds the 4-node undirected path or fails the test.
func mustPath(tb testing.TB) *sparse.CSR {
	tb.Helper()
	m, err := sparse.FromEdges(4, pathEdges, sparse.WithUndirected())
	require.NoError(tb, err)

	return m
}

// randomCSR fills roughly density·r·c cells with values in (0,1].
// Deterministic for a fixed seed.
func randomCSR(tb testing.TB, r, c int, density float64, seed int64) *sparse.CSR {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	var entries []sparse.Entry
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				entries = append(entries, sparse.Entry{Row: i, Col: j, Value: 1 - rng.Float64()})
			}
		}
	}
	m, err := sparse.NewCSR(r, c, entries)
	require.NoError(tb, err)

	return m
}

// mustDense converts via ToDense or fails.
func mustDense(tb testing.TB, m *sparse.CSR) *mat.Dense {
	tb.Helper()
	d, err := m.ToDense()
	require.NoError(tb, err)

	return d
}

// requireSameDense asserts that a CSR equals a gonum dense reference.
func requireSameDense(tb testing.TB, want mat.Matrix, got *sparse.CSR) {
	tb.Helper()
	require.True(tb, mat.EqualApprox(want, mustDense(tb, got), 1e-12),
		"want:\n%v\ngot:\n%v", mat.Formatted(want), mat.Formatted(mustDense(tb, got)))
}
