// SPDX-License-Identifier: MIT

package embedding

// Option customises a Calibrate call.
type Option func(*config)

type config struct {
	eligible map[string]struct{}
	degrees  []float64 // nil means "derive from the graph"
}

// WithEligible replaces the calibration-eligible model set for one call.
// WithEligible() with no names disables calibration entirely. Panics on
// an empty name.
func WithEligible(names ...string) Option {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		if n == "" {
			panic("embedding: WithEligible: empty model name")
		}
		set[n] = struct{}{}
	}
	return func(c *config) { c.eligible = set }
}

// WithDegrees supplies precomputed row sums of the adjacency. The length
// is checked against the node count at call time. Panics on nil.
func WithDegrees(deg []float64) Option {
	if deg == nil {
		panic("embedding: WithDegrees(nil)")
	}
	return func(c *config) { c.degrees = deg }
}

func gatherOptions(opts ...Option) config {
	c := config{eligible: defaultEligibleSet()}
	for _, fn := range opts {
		if fn != nil {
			fn(&c)
		}
	}

	return c
}
