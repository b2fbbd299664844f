// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_complete.go - Complete(n): every unordered pair {i<j} once
// (mirrored unless directed; directed graphs get both arcs). n ≥ 1.
// Time O(n²).

package builder

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n without self-loops.
func Complete(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		base := acc.addNodes(n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				acc.addEdge(cfg, base+i, base+j)
				if cfg.directed {
					acc.addEdge(cfg, base+j, base+i)
				}
			}
		}

		return nil
	}
}
