// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the sparse
// package. Kernels return these sentinels wrapped with a call-site tag and
// tests check them via errors.Is. No kernel panics on user-triggered error
// conditions; panics are reserved for option constructors (see options.go).

package sparse

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "sparse: ..." for easy grepping across logs.
// Sentinels are never formatted at definition site; context is attached with
// sparseErrorf(tag, err) at the detection site.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> numeric policy.

var (
	// ErrNilMatrix indicates that a nil *CSR (receiver or argument) was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")

	// ErrBadShape is returned when a requested shape is negative.
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrShapeMismatch indicates incompatible dimensions between operands:
	// src/trg batches of different length, Mul with a.Cols != b.Rows,
	// a vector whose length differs from the matrix side, or an embedding
	// whose row count differs from the node count.
	ErrShapeMismatch = errors.New("sparse: shape mismatch")

	// ErrIndexOutOfRange indicates a row, column or node index outside [0,n).
	// Public accessors MUST return this, not panic, and never clamp.
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrNonSquare signals that a square matrix (graph adjacency) was required.
	ErrNonSquare = errors.New("sparse: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value at ingestion.
	ErrNaNInf = errors.New("sparse: NaN or Inf encountered")

	// ErrNegativeWeight signals a negative entry; adjacency weights are >= 0.
	ErrNegativeWeight = errors.New("sparse: negative weight")
)

// sparseErrorf wraps err with a call-site tag: "<tag>: <err>".
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
