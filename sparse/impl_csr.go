// SPDX-License-Identifier: MIT

// Package sparse - CSR construction & safe accessors.
//
// Purpose:
//   - Build an immutable CSR from an unordered triplet list in O(nnz log d).
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//
// Complexity quicksheet:
//   - NewCSR: O(r + nnz log d) where d is the largest row length.
//   - At: O(log d); Row: O(1) view; RowSums: O(nnz).

package sparse

import (
	"fmt"
	"sort"
)

// ---------- error context tags ----------

const (
	ctxNewCSR    = "NewCSR"
	ctxFromEdges = "FromEdges"
	ctxAt        = "At"
	ctxRow       = "Row"
)

// NewCSR builds a rows×cols CSR from entries under the given options.
//
// Implementation:
//   - Stage 1: validate shape, then every entry (index range, finite, >= 0).
//   - Stage 2: apply ingestion policy (mirror for undirected, drop loops).
//   - Stage 3: bucket by row (counting sort), sort each row by column,
//     sum duplicates, drop explicit zeros, optionally binarize.
//
// Errors:
//   - ErrBadShape (rows<0 || cols<0), ErrIndexOutOfRange, ErrNaNInf,
//     ErrNegativeWeight, ErrNonSquare (WithUndirected on a rectangle).
//
// Determinism:
//   - The result depends only on the multiset of entries, not their order.
func NewCSR(rows, cols int, entries []Entry, opts ...Option) (*CSR, error) {
	if rows < 0 || cols < 0 {
		return nil, sparseErrorf(fmt.Sprintf("%s(%d,%d)", ctxNewCSR, rows, cols), ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.undirected && rows != cols {
		return nil, sparseErrorf(ctxNewCSR, ErrNonSquare)
	}

	// Stage 1: validate entries before any allocation proportional to nnz.
	for k, e := range entries {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, sparseErrorf(fmt.Sprintf("%s: entry %d (%d,%d)", ctxNewCSR, k, e.Row, e.Col), ErrIndexOutOfRange)
		}
		if !isFinite(e.Value) {
			return nil, sparseErrorf(fmt.Sprintf("%s: entry %d (%d,%d)", ctxNewCSR, k, e.Row, e.Col), ErrNaNInf)
		}
		if e.Value < 0 {
			return nil, sparseErrorf(fmt.Sprintf("%s: entry %d (%d,%d)=%g", ctxNewCSR, k, e.Row, e.Col, e.Value), ErrNegativeWeight)
		}
	}

	// Stage 2: expand under policy.
	expanded := make([]Entry, 0, len(entries)*2)
	for _, e := range entries {
		if e.Row == e.Col {
			if o.dropLoops {
				continue
			}
			expanded = append(expanded, e)
			continue
		}
		expanded = append(expanded, e)
		if o.undirected {
			expanded = append(expanded, Entry{Row: e.Col, Col: e.Row, Value: e.Value})
		}
	}

	return compress(rows, cols, expanded, o.binary), nil
}

// compress turns validated triplets into canonical CSR storage.
func compress(rows, cols int, entries []Entry, binary bool) *CSR {
	// Counting sort by row.
	counts := make([]int, rows+1)
	for _, e := range entries {
		counts[e.Row+1]++
	}
	for i := 0; i < rows; i++ {
		counts[i+1] += counts[i]
	}
	colBuf := make([]int, len(entries))
	valBuf := make([]float64, len(entries))
	next := append([]int(nil), counts[:rows]...)
	for _, e := range entries {
		p := next[e.Row]
		colBuf[p] = e.Col
		valBuf[p] = e.Value
		next[e.Row]++
	}

	out := &CSR{
		r:       rows,
		c:       cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(entries)),
		data:    make([]float64, 0, len(entries)),
	}
	for i := 0; i < rows; i++ {
		lo, hi := counts[i], counts[i+1]
		sort.Sort(rowSorter{cols: colBuf[lo:hi], vals: valBuf[lo:hi]})
		for p := lo; p < hi; {
			j, sum := colBuf[p], 0.0
			for ; p < hi && colBuf[p] == j; p++ {
				sum += valBuf[p]
			}
			if sum == 0 {
				continue // explicit zeros are never stored
			}
			if binary {
				sum = 1
			}
			out.indices = append(out.indices, j)
			out.data = append(out.data, sum)
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out
}

// rowSorter sorts one row's (col, val) pairs by column.
type rowSorter struct {
	cols []int
	vals []float64
}

func (s rowSorter) Len() int           { return len(s.cols) }
func (s rowSorter) Less(i, j int) bool { return s.cols[i] < s.cols[j] }
func (s rowSorter) Swap(i, j int) {
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
	s.vals[i], s.vals[j] = s.vals[j], s.vals[i]
}

// FromEdges builds an n×n adjacency from unit-weight edges.
// Parallel edges accumulate weight unless WithBinaryWeights is given.
func FromEdges(n int, edges [][2]int, opts ...Option) (*CSR, error) {
	entries := make([]Entry, len(edges))
	for k, e := range edges {
		entries[k] = Entry{Row: e[0], Col: e[1], Value: 1}
	}
	m, err := NewCSR(n, n, entries, opts...)
	if err != nil {
		return nil, sparseErrorf(ctxFromEdges, err)
	}

	return m, nil
}

// newEmpty allocates an r×c CSR without entries (internal; shape trusted).
func newEmpty(r, c int) *CSR {
	return &CSR{r: r, c: c, indptr: make([]int, r+1)}
}

// At returns m[i,j], or 0 when the coordinate is not stored.
// Returns ErrIndexOutOfRange for invalid coordinates.
// Complexity: O(log d) binary search within the row.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, sparseErrorf(fmt.Sprintf("CSR.%s(%d,%d)", ctxAt, i, j), ErrIndexOutOfRange)
	}

	return m.at(i, j), nil
}

// at is the unchecked lookup used by kernels after validation.
func (m *CSR) at(i, j int) float64 {
	lo, hi := m.indptr[i], m.indptr[i+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], j)
	if p < hi && m.indices[p] == j {
		return m.data[p]
	}

	return 0
}

// Row returns read-only views of row i: column ids and values.
// The returned slices alias internal storage and MUST NOT be modified.
func (m *CSR) Row(i int) ([]int, []float64, error) {
	if i < 0 || i >= m.r {
		return nil, nil, sparseErrorf(fmt.Sprintf("CSR.%s(%d)", ctxRow, i), ErrIndexOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]

	return m.indices[lo:hi], m.data[lo:hi], nil
}

// RowSums returns r where r[i] = Σ_j m[i,j] (the weighted out-degree).
// Rows without entries yield exactly 0.
func (m *CSR) RowSums() []float64 {
	out := make([]float64, m.r)
	for i := 0; i < m.r; i++ {
		s := 0.0
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			s += m.data[p]
		}
		out[i] = s
	}

	return out
}

// ColSums returns c where c[j] = Σ_i m[i,j] (the weighted in-degree).
func (m *CSR) ColSums() []float64 {
	out := make([]float64, m.c)
	for p, j := range m.indices {
		out[j] += m.data[p]
	}

	return out
}

// Entries returns the stored triplets in row-major order.
func (m *CSR) Entries() []Entry {
	out := make([]Entry, 0, len(m.data))
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			out = append(out, Entry{Row: i, Col: m.indices[p], Value: m.data[p]})
		}
	}

	return out
}

// Clone returns a deep copy.
func (m *CSR) Clone() *CSR {
	return &CSR{
		r:       m.r,
		c:       m.c,
		indptr:  append([]int(nil), m.indptr...),
		indices: append([]int(nil), m.indices...),
		data:    append([]float64(nil), m.data...),
	}
}

// String renders a compact triplet listing; intended for debugging.
func (m *CSR) String() string {
	return fmt.Sprintf("CSR(%dx%d, nnz=%d)", m.r, m.c, len(m.data))
}
