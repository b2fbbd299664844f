// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_cycle.go - Cycle(n): a path closed by the edge (n-1)→0. n ≥ 3.

package builder

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds a simple cycle C_n.
func Cycle(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		base := acc.addNodes(n)
		for i := 0; i < n; i++ {
			acc.addEdge(cfg, base+i, base+(i+1)%n)
		}

		return nil
	}
}
