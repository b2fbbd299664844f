// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

const (
	ctxFromDense = "FromDense"
	ctxToDense   = "ToDense"
)

// FromDense builds a CSR from any gonum matrix, keeping non-zero cells.
// The same ingestion policy as NewCSR applies (non-negative, finite).
// Complexity: O(r*c) scan.
func FromDense(m mat.Matrix, opts ...Option) (*CSR, error) {
	if m == nil {
		return nil, sparseErrorf(ctxFromDense, ErrNilMatrix)
	}
	r, c := m.Dims()
	var entries []Entry
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := m.At(i, j); v != 0 {
				entries = append(entries, Entry{Row: i, Col: j, Value: v})
			}
		}
	}
	out, err := NewCSR(r, c, entries, opts...)
	if err != nil {
		return nil, sparseErrorf(ctxFromDense, err)
	}

	return out, nil
}

// ToDense materialises m as a gonum *mat.Dense.
// gonum rejects zero-sized dense matrices, so an empty shape is an error.
func (m *CSR) ToDense() (*mat.Dense, error) {
	if m.r == 0 || m.c == 0 {
		return nil, sparseErrorf(fmt.Sprintf("%s(%dx%d)", ctxToDense, m.r, m.c), ErrBadShape)
	}
	d := mat.NewDense(m.r, m.c, nil)
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			d.Set(i, m.indices[p], m.data[p])
		}
	}

	return d, nil
}
