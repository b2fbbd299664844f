// SPDX-License-Identifier: MIT

package topology

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/linkpred/metrics"
	"github.com/katalvlaran/linkpred/sparse"
)

// DefaultCacheSize is the number of graphs whose degree vectors a Scorer
// keeps by default.
const DefaultCacheSize = 16

// Scorer runs registry strategies while memoising each graph's degree
// vector, so evaluating many strategies on one graph derives degrees once.
//
// The cache is keyed by *sparse.CSR identity; CSR values are immutable, so
// a pointer always denotes the same degrees. A Scorer is safe for
// concurrent use.
type Scorer struct {
	degrees *lru.Cache[*sparse.CSR, []float64]
	opts    []Option
}

// NewScorer returns a Scorer caching up to size graphs. Base options are
// prepended to the options of every Score call.
func NewScorer(size int, base ...Option) (*Scorer, error) {
	cache, err := lru.New[*sparse.CSR, []float64](size)
	if err != nil {
		return nil, fmt.Errorf("topology.NewScorer(%d): %w", size, err)
	}

	return &Scorer{degrees: cache, opts: base}, nil
}

// Degrees returns the cached degree vector of adj, deriving it on a miss.
// The returned slice is shared and MUST NOT be modified.
func (s *Scorer) Degrees(adj *sparse.CSR) ([]float64, error) {
	if deg, ok := s.degrees.Get(adj); ok {
		metrics.DegreeCacheLookups.WithLabelValues("hit").Inc()
		return deg, nil
	}
	metrics.DegreeCacheLookups.WithLabelValues("miss").Inc()

	deg, err := sparse.Degrees(adj)
	if err != nil {
		return nil, topologyErrorf("Scorer", err)
	}
	s.degrees.Add(adj, deg)

	return deg, nil
}

// Score runs the named strategy with the cached degrees of adj.
func (s *Scorer) Score(name string, adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	deg, err := s.Degrees(adj)
	if err != nil {
		return nil, err
	}
	all := make([]Option, 0, len(s.opts)+len(opts)+1)
	all = append(all, s.opts...)
	all = append(all, WithDegrees(deg))
	all = append(all, opts...)

	return Score(name, adj, src, trg, all...)
}

// ScoreAll runs every name on the same batch and returns scores by name.
// It stops at the first error.
func (s *Scorer) ScoreAll(names []string, adj *sparse.CSR, src, trg []int, opts ...Option) (map[string][]float64, error) {
	out := make(map[string][]float64, len(names))
	for _, name := range names {
		scores, err := s.Score(name, adj, src, trg, opts...)
		if err != nil {
			return nil, err
		}
		out[name] = scores
	}

	return out, nil
}

// Purge drops every cached degree vector.
func (s *Scorer) Purge() { s.degrees.Purge() }

// Len returns the number of cached graphs.
func (s *Scorer) Len() int { return s.degrees.Len() }
