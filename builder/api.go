// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons
//     in order, compresses the accumulated edges into a CSR.
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical adjacency.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkpred/sparse"
)

// Constructor appends one block of nodes and its edges to the accumulator.
// Constructors MUST validate parameters early and return sentinel errors.
type Constructor func(acc *accumulator, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order (disjoint union) and returns the adjacency.
// Undirected graphs (the default) store each edge in both directions.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource, ...
//   - ErrConstructFailed for a nil constructor or a rejected CSR build.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*sparse.CSR, error) {
	cfg := newBuilderConfig(bopts...)
	acc := &accumulator{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(acc, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	var opts []sparse.Option
	if !cfg.directed {
		opts = append(opts, sparse.WithUndirected())
	}
	adj, err := sparse.NewCSR(acc.n, acc.n, acc.entries, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return adj, nil
}

// MustBuild is BuildGraph for fixtures and examples; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *sparse.CSR {
	adj, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return adj
}
