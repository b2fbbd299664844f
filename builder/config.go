// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • rng      = nil                  (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn      (constant 1)
//   • directed = false                (every edge mirrored)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	rng      *rand.Rand // nil means "no randomness"
	weightFn WeightFn   // edge weight generator
	directed bool       // emit arcs as given instead of mirroring
}

// newBuilderConfig applies options in order over the defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		directed: false,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
