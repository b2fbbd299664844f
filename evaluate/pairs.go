// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/katalvlaran/linkpred/sparse"
)

// PositivePairs lists the stored edges of adj as pairs. With undirected
// set only the upper triangle (i < j) is listed, so every edge appears
// once; self-loops are skipped either way.
func PositivePairs(adj *sparse.CSR, undirected bool) ([]int, []int, error) {
	if err := sparse.ValidateSquare(adj); err != nil {
		return nil, nil, evaluateErrorf("PositivePairs", err)
	}
	var src, trg []int
	for _, e := range adj.Entries() {
		if e.Row == e.Col || (undirected && e.Row > e.Col) {
			continue
		}
		src = append(src, e.Row)
		trg = append(trg, e.Col)
	}

	return src, trg, nil
}

// Split is a graph with a hidden set of test edges.
type Split struct {
	Train   *sparse.CSR
	TestSrc []int
	TestTrg []int
}

// SplitEdges hides round(fraction·m) of the m edges of adj, chosen
// uniformly with rng, and returns the remaining graph plus the hidden
// edges. With undirected set, adj must be symmetric, m counts each edge
// once, hidden pairs have i < j, and both directions leave Train.
// Otherwise every off-diagonal entry is a candidate and Train is not
// mirrored. Self-loops and the weights of kept edges are preserved; the
// node set is unchanged, so hidden endpoints may become isolated.
//
// Errors: sparse.ErrNilMatrix, sparse.ErrNonSquare, ErrInvalidFraction
// (fraction not in (0,1)), ErrNeedRand, ErrAsymmetric.
func SplitEdges(adj *sparse.CSR, fraction float64, rng *rand.Rand, undirected bool) (*Split, error) {
	const op = "SplitEdges"
	if err := sparse.ValidateSquare(adj); err != nil {
		return nil, evaluateErrorf(op, err)
	}
	if !(fraction > 0 && fraction < 1) {
		return nil, evaluateErrorf(op, fmt.Errorf("fraction=%v: %w", fraction, ErrInvalidFraction))
	}
	if rng == nil {
		return nil, evaluateErrorf(op, ErrNeedRand)
	}

	var edges, keep []sparse.Entry
	for _, e := range adj.Entries() {
		switch {
		case e.Row == e.Col:
			keep = append(keep, e)
		case !undirected || e.Row < e.Col:
			edges = append(edges, e)
		}
		if undirected && e.Row != e.Col {
			if w, _ := adj.At(e.Col, e.Row); w != e.Value {
				return nil, evaluateErrorf(op, fmt.Errorf("(%d,%d)=%v but (%d,%d)=%v: %w", e.Row, e.Col, e.Value, e.Col, e.Row, w, ErrAsymmetric))
			}
		}
	}
	rng.Shuffle(len(edges), func(a, b int) { edges[a], edges[b] = edges[b], edges[a] })

	m := int(math.Round(fraction * float64(len(edges))))
	out := &Split{TestSrc: make([]int, m), TestTrg: make([]int, m)}
	for k, e := range edges[:m] {
		out.TestSrc[k], out.TestTrg[k] = e.Row, e.Col
	}
	for _, e := range edges[m:] {
		keep = append(keep, e)
		if undirected {
			keep = append(keep, sparse.Entry{Row: e.Col, Col: e.Row, Value: e.Value})
		}
	}
	train, err := sparse.NewCSR(adj.Rows(), adj.Cols(), keep)
	if err != nil {
		return nil, evaluateErrorf(op, err)
	}
	out.Train = train

	return out, nil
}
