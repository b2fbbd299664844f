// SPDX-License-Identifier: MIT
// Package sparse: functional options for CSR construction.
//
// Contract:
//   - Options are functional (type Option func(*Options)).
//   - Options are applied in order; later options override earlier ones.
//   - Defaults are documented as Default* constants (single source of truth).
//
// AI-Hints:
//   - Use WithUndirected when the edge list stores each undirected edge once.
//   - Use WithBinaryWeights to score an unweighted view of a weighted graph.

package sparse

// Defaults for CSR ingestion.
const (
	// DefaultUndirected leaves entries as given (directed reading).
	DefaultUndirected = false
	// DefaultBinaryWeights keeps the supplied weights.
	DefaultBinaryWeights = false
	// DefaultDropLoops keeps diagonal entries.
	DefaultDropLoops = false
)

// Option mutates the ingestion policy before a CSR is built.
type Option func(*Options)

// Options is the effective ingestion policy.
type Options struct {
	undirected bool // mirror (i,j) into (j,i)
	binary     bool // collapse every stored weight to 1
	dropLoops  bool // discard (i,i) entries
}

// WithUndirected mirrors every off-diagonal entry (i,j) into (j,i).
// Diagonal entries are not doubled.
func WithUndirected() Option {
	return func(o *Options) { o.undirected = true }
}

// WithDirected restores the default directed reading.
func WithDirected() Option {
	return func(o *Options) { o.undirected = false }
}

// WithBinaryWeights stores 1 for every non-zero coordinate after duplicates
// have been summed.
func WithBinaryWeights() Option {
	return func(o *Options) { o.binary = true }
}

// WithoutLoops drops self-loops (i,i) during ingestion.
func WithoutLoops() Option {
	return func(o *Options) { o.dropLoops = true }
}

// gatherOptions resolves defaults and applies user options in order.
func gatherOptions(opts ...Option) Options {
	o := Options{
		undirected: DefaultUndirected,
		binary:     DefaultBinaryWeights,
		dropLoops:  DefaultDropLoops,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
