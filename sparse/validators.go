// SPDX-License-Identifier: MIT
// Package: sparse
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels and scorers minimal by delegating nil/shape/index checks here.
//
// Determinism & Performance:
//   - All checks are pure and allocate nothing.
//   - ValidatePairs is O(k) over the batch; everything else is O(1).

package sparse

import "fmt"

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *CSR) error {
	if m == nil {
		return sparseErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square (Rows == Cols).
// Every graph adjacency must pass this check.
func ValidateSquare(m *CSR) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return sparseErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
func ValidateSameShape(a, b *CSR) error {
	if a.r != b.r || a.c != b.c {
		return sparseErrorf(fmt.Sprintf("ValidateSameShape(%dx%d,%dx%d)", a.r, a.c, b.r, b.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a, b are non-nil and a.Cols == b.Rows.
func ValidateMulCompatible(a, b *CSR) error {
	if a == nil || b == nil {
		return sparseErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return sparseErrorf(fmt.Sprintf("ValidateMulCompatible(%dx%d,%dx%d)", a.r, a.c, b.r, b.c), ErrShapeMismatch)
	}

	return nil
}

// ValidateVecLen ensures len(x) == n. A nil vector is treated as length 0.
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return sparseErrorf(fmt.Sprintf("ValidateVecLen(len=%d,want=%d)", len(x), n), ErrShapeMismatch)
	}

	return nil
}

// ValidateIndex ensures 0 <= i < n.
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return sparseErrorf(fmt.Sprintf("ValidateIndex(%d,n=%d)", i, n), ErrIndexOutOfRange)
	}

	return nil
}

// ValidatePairs checks a node-pair batch against a graph of n nodes.
//
// Order of checks (fixed):
//  1. len(src) == len(trg)             else ErrShapeMismatch
//  2. every src[i], trg[i] in [0, n)   else ErrIndexOutOfRange
//
// Indices are never clamped. The first offending position is reported.
// Complexity: O(k).
func ValidatePairs(n int, src, trg []int) error {
	if len(src) != len(trg) {
		return sparseErrorf(fmt.Sprintf("ValidatePairs(len(src)=%d,len(trg)=%d)", len(src), len(trg)), ErrShapeMismatch)
	}
	for i := range src {
		if src[i] < 0 || src[i] >= n {
			return sparseErrorf(fmt.Sprintf("ValidatePairs: src[%d]=%d, n=%d", i, src[i], n), ErrIndexOutOfRange)
		}
		if trg[i] < 0 || trg[i] >= n {
			return sparseErrorf(fmt.Sprintf("ValidatePairs: trg[%d]=%d, n=%d", i, trg[i], n), ErrIndexOutOfRange)
		}
	}

	return nil
}
