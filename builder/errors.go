// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w; sentinels are never formatted
//     at definition site.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter is smaller than the
// minimum the constructor accepts (e.g. Cycle(2)).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed CSR build.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with the constructor name and a short detail.
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
