// SPDX-License-Identifier: MIT
// Package topology — functional options.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     scoring functions themselves never panic.
//   - Options a strategy does not use are ignored by it.

package topology

import (
	"fmt"
	"math"
)

// Defaults (single source of truth).
const (
	// DefaultEpsilon weighs the 3-step term of localPathIndex.
	DefaultEpsilon = 1e-3
	// DefaultWalkSteps is the localRandomWalk truncation depth.
	DefaultWalkSteps = 3
	// DefaultPathDepth is the longest path length counted by localPathIndex.
	DefaultPathDepth = 3

	minWalkSteps = 1
	minPathDepth = 2
)

// Option customises a scoring call.
type Option func(*config)

// config is the resolved per-call configuration.
type config struct {
	degrees   []float64 // precomputed row sums; nil means "derive"
	epsilon   float64
	walkSteps int
	pathDepth int
}

// WithDegrees supplies a precomputed degree vector (row sums of the
// adjacency). Callers scoring many strategies on one graph hoist the
// computation this way. The vector is read, never modified; its length
// is checked against the node count at call time.
func WithDegrees(deg []float64) Option {
	return func(c *config) { c.degrees = deg }
}

// WithEpsilon sets the damping factor of localPathIndex. Panics when eps is
// negative, NaN or infinite.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(fmt.Sprintf("topology: WithEpsilon(%v): must be finite and >= 0", eps))
	}
	return func(c *config) { c.epsilon = eps }
}

// WithWalkSteps sets how many random-walk steps localRandomWalk sums.
// Panics when steps < 1.
func WithWalkSteps(steps int) Option {
	if steps < minWalkSteps {
		panic(fmt.Sprintf("topology: WithWalkSteps(%d): must be >= %d", steps, minWalkSteps))
	}
	return func(c *config) { c.walkSteps = steps }
}

// WithPathDepth sets the longest path length localPathIndex counts.
// Panics when depth < 2.
func WithPathDepth(depth int) Option {
	if depth < minPathDepth {
		panic(fmt.Sprintf("topology: WithPathDepth(%d): must be >= %d", depth, minPathDepth))
	}
	return func(c *config) { c.pathDepth = depth }
}

// gatherOptions resolves defaults, then applies opts in order.
func gatherOptions(opts ...Option) config {
	c := config{
		epsilon:   DefaultEpsilon,
		walkSteps: DefaultWalkSteps,
		pathDepth: DefaultPathDepth,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}

	return c
}
