// SPDX-License-Identifier: MIT

package topology

import (
	"github.com/katalvlaran/linkpred/sparse"
)

// call is the validated state shared by every strategy.
type call struct {
	adj *sparse.CSR
	src []int
	trg []int
	deg []float64
	cfg config
}

// prepare runs the common validation sequence:
//  1. adjacency non-nil and square
//  2. src/trg lengths match and indices lie in [0, n)
//  3. supplied degree vector (if any) has length n
//
// then resolves the degree vector exactly once.
func prepare(strategy string, adj *sparse.CSR, src, trg []int, opts []Option) (*call, error) {
	if err := sparse.ValidateSquare(adj); err != nil {
		return nil, topologyErrorf(strategy, err)
	}
	n := adj.Rows()
	if err := sparse.ValidatePairs(n, src, trg); err != nil {
		return nil, topologyErrorf(strategy, err)
	}

	c := &call{adj: adj, src: src, trg: trg, cfg: gatherOptions(opts...)}
	if c.cfg.degrees != nil {
		if err := sparse.ValidateVecLen(c.cfg.degrees, n); err != nil {
			return nil, topologyErrorf(strategy, err)
		}
		c.deg = c.cfg.degrees
	} else {
		c.deg = adj.RowSums()
	}

	return c, nil
}
