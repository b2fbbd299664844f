// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value <= 0: a zero weight would silently drop the edge.
func ConstantWeightFn(value float64) WeightFn {
	if value <= 0 {
		panic(fmt.Sprintf("builder: ConstantWeightFn: value must be > 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn samples uniformly in [min, max). Panics unless
// 0 < min <= max. With a nil rng it returns min, keeping the fallback
// deterministic.
func UniformWeightFn(min, max float64) WeightFn {
	if min <= 0 || max < min {
		panic(fmt.Sprintf("builder: UniformWeightFn: require 0 < min <= max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}
