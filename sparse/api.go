// SPDX-License-Identifier: MIT
// Package sparse — public API facades and compositions.
//
// Purpose:
//   - Thin, intention-revealing entry points composed from the kernels in
//     impl_linear_algebra.go; no loop duplication.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of kernels.

package sparse

import "fmt"

const (
	opDiag        = "Diag"
	opIdentity    = "Identity"
	opDegrees     = "Degrees"
	opPowerSeries = "PowerSeries"
)

// Diag returns the n×n diagonal matrix with v on the diagonal (zeros dropped).
func Diag(v []float64) (*CSR, error) {
	n := len(v)
	out := newEmpty(n, n)
	for i, x := range v {
		if !isFinite(x) {
			return nil, sparseErrorf(fmt.Sprintf("%s: v[%d]", opDiag, i), ErrNaNInf)
		}
		if x != 0 {
			out.indices = append(out.indices, i)
			out.data = append(out.data, x)
		}
		out.indptr[i+1] = len(out.indices)
	}

	return out, nil
}

// Identity returns I_n.
func Identity(n int) (*CSR, error) {
	if n < 0 {
		return nil, sparseErrorf(opIdentity, ErrBadShape)
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	return Diag(ones)
}

// Degrees returns the row sums of a square adjacency.
// Isolated nodes get degree exactly 0; that is a valid state, not an error.
func Degrees(adj *CSR) ([]float64, error) {
	if err := ValidateSquare(adj); err != nil {
		return nil, sparseErrorf(opDegrees, err)
	}

	return adj.RowSums(), nil
}

// PowerSeries returns Σ_{t=0}^{len(coeffs)-1} coeffs[t] · start · stepᵗ.
//
// Implementation:
//   - Stage 1: term := start; acc := coeffs[0]·start.
//   - Stage 2: for t >= 1, term = term × step and acc += coeffs[t]·term.
//
// Behavior highlights:
//   - With start = A[rows,:] only the requested rows of the series are
//     materialised, which is how the path-based scorers stay sparse.
//   - Zero coefficients still advance the power but skip the addition.
//
// Errors:
//   - ErrShapeMismatch when len(coeffs) == 0 or start.Cols != step.Rows.
//   - ErrNonSquare when step is not square.
func PowerSeries(start, step *CSR, coeffs []float64) (*CSR, error) {
	if err := ValidateSquare(step); err != nil {
		return nil, sparseErrorf(opPowerSeries, err)
	}
	if err := ValidateMulCompatible(start, step); err != nil {
		return nil, sparseErrorf(opPowerSeries, err)
	}
	if len(coeffs) == 0 {
		return nil, sparseErrorf(opPowerSeries+": no coefficients", ErrShapeMismatch)
	}

	acc, err := Scale(start, coeffs[0])
	if err != nil {
		return nil, sparseErrorf(opPowerSeries, err)
	}
	term := start
	for t := 1; t < len(coeffs); t++ {
		if term, err = Mul(term, step); err != nil {
			return nil, sparseErrorf(opPowerSeries, err)
		}
		if coeffs[t] == 0 {
			continue
		}
		if acc, err = AddScaled(acc, coeffs[t], term); err != nil {
			return nil, sparseErrorf(opPowerSeries, err)
		}
	}

	return acc, nil
}

// UniqueRows returns the distinct values of idx in first-seen order and,
// for every position k, the position of idx[k] inside the distinct list.
// Scorers use it to restrict products to the requested source rows.
func UniqueRows(idx []int) (rows []int, pos []int) {
	seen := make(map[int]int, len(idx))
	pos = make([]int, len(idx))
	for k, i := range idx {
		p, ok := seen[i]
		if !ok {
			p = len(rows)
			seen[i] = p
			rows = append(rows, i)
		}
		pos[k] = p
	}

	return rows, pos
}
