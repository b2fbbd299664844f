// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/linkpred/sparse"
)

// accumulator collects nodes and weighted arcs across constructors.
type accumulator struct {
	n       int
	entries []sparse.Entry
}

// addNodes reserves k fresh node ids and returns the first one.
func (a *accumulator) addNodes(k int) int {
	base := a.n
	a.n += k

	return base
}

// addEdge appends the arc u→v with a weight drawn from cfg.
// Mirroring for undirected graphs happens once, in BuildGraph.
func (a *accumulator) addEdge(cfg builderConfig, u, v int) {
	a.entries = append(a.entries, sparse.Entry{Row: u, Col: v, Value: cfg.weightFn(cfg.rng)})
}

// validateMin checks n >= min for method.
func validateMin(method string, n, min int) error {
	if n < min {
		return builderErrorf(method, fmt.Sprintf("n=%d < min=%d", n, min), ErrTooFewVertices)
	}

	return nil
}
