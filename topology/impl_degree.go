// SPDX-License-Identifier: MIT

package topology

import "github.com/katalvlaran/linkpred/sparse"

// PreferentialAttachment scores deg(i)·deg(j).
// A pair with an isolated endpoint scores exactly 0.
// Complexity: O(nnz) for the degrees (unless supplied) + O(k).
func PreferentialAttachment(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	c, err := prepare(NamePreferentialAttachment, adj, src, trg, opts)
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(src))
	for k := range src {
		out[k] = c.deg[src[k]] * c.deg[trg[k]]
	}

	return out, nil
}
