// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_path.go - Path(n): nodes base..base+n-1, edges (i-1)→i in
// increasing order. n ≥ 2. Time O(n).

package builder

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		base := acc.addNodes(n)
		for i := 1; i < n; i++ {
			acc.addEdge(cfg, base+i-1, base+i)
		}

		return nil
	}
}
