// SPDX-License-Identifier: MIT
// Package sparse - linear algebra kernels over CSR.
//
// Purpose:
//   - Provide the handful of products every link-prediction heuristic is
//     composed from: sparse×sparse product, diagonal scaling, scaled sums,
//     weighted row dot products and coordinate gather.
//   - Inputs are never mutated; every kernel returns a fresh CSR or slice.
//
// Determinism:
//   - Output rows are emitted in ascending column order; accumulation order
//     within a row follows the stored order of the left operand.
//
// AI-Hints:
//   - Restrict the left operand with SelectRows before chaining Mul when only
//     a few source rows are needed; the cost then scales with the batch, not n.

package sparse

import (
	"fmt"
	"sort"
)

// Operation tags used in error wrapping.
const (
	opMul        = "Mul"
	opAdd        = "Add"
	opAddScaled  = "AddScaled"
	opScale      = "Scale"
	opScaleRows  = "ScaleRows"
	opScaleCols  = "ScaleCols"
	opTranspose  = "Transpose"
	opSelectRows = "SelectRows"
	opRowDot     = "RowDot"
	opGather     = "Gather"
)

// Mul returns the product a × b using Gustavson's row-wise algorithm.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: for each row i of a, scatter a[i,k]·b[k,:] into a dense
//     accumulator of width b.Cols, tracking touched columns with a marker.
//   - Stage 3: sort touched columns and emit non-zero sums.
//
// Complexity:
//   - Time O(flops + Σ_i t_i log t_i), t_i touched columns of row i.
//   - Space O(b.Cols) scratch + output.
func Mul(a, b *CSR) (*CSR, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, err)
	}

	out := newEmpty(a.r, b.c)
	acc := make([]float64, b.c)
	mark := make([]int, b.c)
	for j := range mark {
		mark[j] = -1
	}
	touched := make([]int, 0, 16)

	var (
		i, k, j int
		pa, pb  int
		av      float64
	)
	for i = 0; i < a.r; i++ {
		touched = touched[:0]
		for pa = a.indptr[i]; pa < a.indptr[i+1]; pa++ {
			k, av = a.indices[pa], a.data[pa]
			for pb = b.indptr[k]; pb < b.indptr[k+1]; pb++ {
				j = b.indices[pb]
				if mark[j] != i {
					mark[j] = i
					acc[j] = 0
					touched = append(touched, j)
				}
				acc[j] += av * b.data[pb]
			}
		}
		sort.Ints(touched)
		for _, j = range touched {
			if acc[j] != 0 {
				out.indices = append(out.indices, j)
				out.data = append(out.data, acc[j])
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Add returns a + b (identical shapes required).
func Add(a, b *CSR) (*CSR, error) {
	out, err := AddScaled(a, 1, b)
	if err != nil {
		return nil, sparseErrorf(opAdd, err)
	}

	return out, nil
}

// AddScaled returns a + alpha·b via a sorted two-pointer merge per row.
// Entries that cancel to exactly zero are dropped.
// Complexity: O(nnz(a) + nnz(b)).
func AddScaled(a *CSR, alpha float64, b *CSR) (*CSR, error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opAddScaled, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opAddScaled, err)
	}

	out := newEmpty(a.r, a.c)
	emit := func(j int, v float64) {
		if v != 0 {
			out.indices = append(out.indices, j)
			out.data = append(out.data, v)
		}
	}
	for i := 0; i < a.r; i++ {
		pa, ea := a.indptr[i], a.indptr[i+1]
		pb, eb := b.indptr[i], b.indptr[i+1]
		for pa < ea || pb < eb {
			switch {
			case pb >= eb || (pa < ea && a.indices[pa] < b.indices[pb]):
				emit(a.indices[pa], a.data[pa])
				pa++
			case pa >= ea || b.indices[pb] < a.indices[pa]:
				emit(b.indices[pb], alpha*b.data[pb])
				pb++
			default: // same column
				emit(a.indices[pa], a.data[pa]+alpha*b.data[pb])
				pa++
				pb++
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Scale returns alpha·m. alpha == 0 yields an empty matrix of the same shape.
func Scale(m *CSR, alpha float64) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScale, err)
	}
	if alpha == 0 {
		return newEmpty(m.r, m.c), nil
	}
	out := m.Clone()
	for p := range out.data {
		out.data[p] *= alpha
	}

	return out, nil
}

// ScaleRows returns diag(v)·m, i.e. row i multiplied by v[i].
// Rows scaled by 0 become empty. len(v) must equal m.Rows().
func ScaleRows(m *CSR, v []float64) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScaleRows, err)
	}
	if err := ValidateVecLen(v, m.r); err != nil {
		return nil, sparseErrorf(opScaleRows, err)
	}

	out := newEmpty(m.r, m.c)
	for i := 0; i < m.r; i++ {
		if v[i] != 0 {
			for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
				out.indices = append(out.indices, m.indices[p])
				out.data = append(out.data, v[i]*m.data[p])
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// ScaleCols returns m·diag(v), i.e. column j multiplied by v[j].
// len(v) must equal m.Cols().
func ScaleCols(m *CSR, v []float64) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opScaleCols, err)
	}
	if err := ValidateVecLen(v, m.c); err != nil {
		return nil, sparseErrorf(opScaleCols, err)
	}

	out := newEmpty(m.r, m.c)
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			if w := v[m.indices[p]] * m.data[p]; w != 0 {
				out.indices = append(out.indices, m.indices[p])
				out.data = append(out.data, w)
			}
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Transpose returns mᵀ (counting sort by column; rows stay sorted).
func Transpose(m *CSR) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opTranspose, err)
	}

	out := &CSR{
		r:       m.c,
		c:       m.r,
		indptr:  make([]int, m.c+1),
		indices: make([]int, len(m.indices)),
		data:    make([]float64, len(m.data)),
	}
	for _, j := range m.indices {
		out.indptr[j+1]++
	}
	for j := 0; j < m.c; j++ {
		out.indptr[j+1] += out.indptr[j]
	}
	next := append([]int(nil), out.indptr[:m.c]...)
	for i := 0; i < m.r; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			j := m.indices[p]
			q := next[j]
			out.indices[q] = i
			out.data[q] = m.data[p]
			next[j]++
		}
	}

	return out, nil
}

// SelectRows returns the len(rows)×Cols sub-matrix whose k-th row is
// m[rows[k], :]. Rows may repeat. Indices are validated, never clamped.
func SelectRows(m *CSR, rows []int) (*CSR, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opSelectRows, err)
	}
	nnz := 0
	for _, i := range rows {
		if err := ValidateIndex(i, m.r); err != nil {
			return nil, sparseErrorf(opSelectRows, err)
		}
		nnz += m.indptr[i+1] - m.indptr[i]
	}

	out := &CSR{
		r:       len(rows),
		c:       m.c,
		indptr:  make([]int, len(rows)+1),
		indices: make([]int, 0, nnz),
		data:    make([]float64, 0, nnz),
	}
	for k, i := range rows {
		lo, hi := m.indptr[i], m.indptr[i+1]
		out.indices = append(out.indices, m.indices[lo:hi]...)
		out.data = append(out.data, m.data[lo:hi]...)
		out.indptr[k+1] = len(out.indices)
	}

	return out, nil
}

// RowDot returns Σ_k a[i,k]·w[k]·b[j,k]: the element-wise product of row i
// of a and row j of b, optionally weighted by the diagonal w, summed.
// A nil w means unit weights. a and b must have the same column count.
//
// Complexity: O(d_i + d_j) sorted merge.
func RowDot(a *CSR, i int, b *CSR, j int, w []float64) (float64, error) {
	if a == nil || b == nil {
		return 0, sparseErrorf(opRowDot, ErrNilMatrix)
	}
	if a.c != b.c {
		return 0, sparseErrorf(opRowDot, ErrShapeMismatch)
	}
	if w != nil {
		if err := ValidateVecLen(w, a.c); err != nil {
			return 0, sparseErrorf(opRowDot, err)
		}
	}
	if err := ValidateIndex(i, a.r); err != nil {
		return 0, sparseErrorf(opRowDot, err)
	}
	if err := ValidateIndex(j, b.r); err != nil {
		return 0, sparseErrorf(opRowDot, err)
	}

	return rowDot(a, i, b, j, w), nil
}

// rowDot is the unchecked merge used by scorers after batch validation.
func rowDot(a *CSR, i int, b *CSR, j int, w []float64) float64 {
	pa, ea := a.indptr[i], a.indptr[i+1]
	pb, eb := b.indptr[j], b.indptr[j+1]
	sum := 0.0
	for pa < ea && pb < eb {
		ka, kb := a.indices[pa], b.indices[pb]
		switch {
		case ka < kb:
			pa++
		case kb < ka:
			pb++
		default:
			v := a.data[pa] * b.data[pb]
			if w != nil {
				v *= w[ka]
			}
			sum += v
			pa++
			pb++
		}
	}

	return sum
}

// Gather returns out[k] = m[rows[k], cols[k]].
// len(rows) must equal len(cols); every coordinate must be in range.
func Gather(m *CSR, rows, cols []int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, sparseErrorf(opGather, err)
	}
	if len(rows) != len(cols) {
		return nil, sparseErrorf(fmt.Sprintf("%s(len(rows)=%d,len(cols)=%d)", opGather, len(rows), len(cols)), ErrShapeMismatch)
	}
	out := make([]float64, len(rows))
	for k := range rows {
		if err := ValidateIndex(rows[k], m.r); err != nil {
			return nil, sparseErrorf(opGather, err)
		}
		if err := ValidateIndex(cols[k], m.c); err != nil {
			return nil, sparseErrorf(opGather, err)
		}
		out[k] = m.at(rows[k], cols[k])
	}

	return out, nil
}
