// SPDX-License-Identifier: MIT

package embedding

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/registry"
	"github.com/katalvlaran/linkpred/sparse"
)

// Model is an external embedding trainer: Fit learns from the graph,
// Transform returns one d-dimensional row per node.
type Model interface {
	Fit(adj *sparse.CSR) error
	Transform(dim int) (*mat.Dense, error)
}

// Factory creates a fresh, untrained Model.
type Factory func() Model

// Models maps family names to trainer factories. It is empty until a
// trainer registers itself; registration is insert-if-absent.
var Models = registry.New[Factory](Family)

// Embed resolves name in Models, fits a fresh model on adj and returns its
// n×dim embedding. The shape of the trainer's output is checked.
func Embed(name string, adj *sparse.CSR, dim int) (*mat.Dense, error) {
	const op = "Embed"
	if dim < 1 {
		return nil, embeddingErrorf(op, fmt.Errorf("dim=%d: %w", dim, ErrBadDimension))
	}
	if err := sparse.ValidateSquare(adj); err != nil {
		return nil, embeddingErrorf(op, err)
	}
	factory, err := Models.Resolve(name)
	if err != nil {
		return nil, embeddingErrorf(op, err)
	}

	m := factory()
	if err = m.Fit(adj); err != nil {
		return nil, embeddingErrorf(op, fmt.Errorf("%s: fit: %w", name, err))
	}
	emb, err := m.Transform(dim)
	if err != nil {
		return nil, embeddingErrorf(op, fmt.Errorf("%s: transform: %w", name, err))
	}
	if emb == nil {
		return nil, embeddingErrorf(op, ErrNilEmbedding)
	}
	if r, c := emb.Dims(); r != adj.Rows() || c != dim {
		return nil, embeddingErrorf(op, fmt.Errorf("%s: got %dx%d, want %dx%d: %w", name, r, c, adj.Rows(), dim, sparse.ErrShapeMismatch))
	}

	return emb, nil
}
