// SPDX-License-Identifier: MIT

// Package sparse: domain types (Entry, CSR).
// Options live in options.go, errors in errors.go, kernels in impl_*.go.
package sparse

// Entry is a single (row, col, value) triplet used for ingestion.
// Duplicated coordinates are summed when a CSR is built.
type Entry struct {
	Row   int     // row index (source node)
	Col   int     // column index (target node)
	Value float64 // non-negative finite weight
}

// CSR is an immutable compressed sparse row matrix.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - indptr has length r+1; row i occupies [indptr[i], indptr[i+1]).
//   - indices holds column ids, strictly increasing inside a row.
//   - data holds the matching non-zero values.
//
// A CSR returned by this package is never mutated afterwards, so it can be
// shared freely between goroutines and used as a cache key.
type CSR struct {
	r, c    int
	indptr  []int
	indices []int
	data    []float64
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.c }

// Dims mirrors gonum's mat.Matrix Dims for interop in tests and adapters.
func (m *CSR) Dims() (int, int) { return m.r, m.c }

// NNZ returns the number of stored non-zero entries.
func (m *CSR) NNZ() int { return len(m.data) }

// IsSquare reports whether the matrix can be read as a graph adjacency.
func (m *CSR) IsSquare() bool { return m.r == m.c }
