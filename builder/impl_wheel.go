// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_wheel.go - Wheel(n): hub (first node) joined to a rim cycle of n-1
// nodes. n ≥ 4. Edges: rim cycle first, then spokes, both in index order.

package builder

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n.
func Wheel(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		hub := acc.addNodes(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			acc.addEdge(cfg, hub+1+i, hub+1+(i+1)%rim)
		}
		for i := 1; i < n; i++ {
			acc.addEdge(cfg, hub, hub+i)
		}

		return nil
	}
}
