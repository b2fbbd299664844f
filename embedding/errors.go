// SPDX-License-Identifier: MIT

package embedding

import (
	"errors"
	"fmt"
)

var (
	// ErrNilEmbedding indicates a nil embedding matrix.
	ErrNilEmbedding = errors.New("embedding: nil embedding matrix")

	// ErrBadDimension indicates a requested embedding dimension < 1.
	ErrBadDimension = errors.New("embedding: dimension must be >= 1")
)

// embeddingErrorf tags err with the operation that detected it.
func embeddingErrorf(op string, err error) error {
	return fmt.Errorf("embedding.%s: %w", op, err)
}
