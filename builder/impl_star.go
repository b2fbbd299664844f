// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_star.go - Star(n): hub at the first node of the block, n-1 leaves,
// spokes hub→leaf in increasing leaf order. n ≥ 2.

package builder

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n nodes.
func Star(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		hub := acc.addNodes(n)
		for i := 1; i < n; i++ {
			acc.addEdge(cfg, hub, hub+i)
		}

		return nil
	}
}
