// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_bipartite.go - CompleteBipartite(n1, n2): left block first, then
// right block; edges left[i]→right[j] for i asc, j asc. n1, n2 ≥ 1.

package builder

const (
	methodBipartite   = "CompleteBipartite"
	minPartitionNodes = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodBipartite, n1, minPartitionNodes); err != nil {
			return err
		}
		if err := validateMin(methodBipartite, n2, minPartitionNodes); err != nil {
			return err
		}
		left := acc.addNodes(n1)
		right := acc.addNodes(n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				acc.addEdge(cfg, left+i, right+j)
			}
		}

		return nil
	}
}
