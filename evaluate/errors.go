// SPDX-License-Identifier: MIT

package evaluate

import (
	"errors"
	"fmt"
)

var (
	// ErrSingleClass indicates labels without both a positive and a negative.
	ErrSingleClass = errors.New("evaluate: labels contain a single class")

	// ErrSamplingExhausted indicates a sampler hit its draw budget before
	// finding enough non-edges (the graph is too dense).
	ErrSamplingExhausted = errors.New("evaluate: negative sampling exhausted")

	// ErrNeedRand indicates a nil random source.
	ErrNeedRand = errors.New("evaluate: rng is required")

	// ErrInvalidFraction indicates a hold-out fraction outside (0,1).
	ErrInvalidFraction = errors.New("evaluate: fraction out of range")

	// ErrAsymmetric indicates an undirected split of a non-symmetric graph.
	ErrAsymmetric = errors.New("evaluate: adjacency is not symmetric")
)

// evaluateErrorf tags err with the operation that detected it.
func evaluateErrorf(op string, err error) error {
	return fmt.Errorf("evaluate.%s: %w", op, err)
}
