// SPDX-License-Identifier: MIT

package embedding_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linkpred/embedding"
	"github.com/katalvlaran/linkpred/registry"
	"github.com/katalvlaran/linkpred/sparse"
)

var errNotFitted = errors.New("not fitted")

// degreeModel embeds node v as (deg v, deg v, ...).
type degreeModel struct {
	deg     []float64
	wrongBy int
}

func (m *degreeModel) Fit(adj *sparse.CSR) error {
	m.deg = adj.RowSums()
	return nil
}

func (m *degreeModel) Transform(dim int) (*mat.Dense, error) {
	if m.deg == nil {
		return nil, errNotFitted
	}
	out := mat.NewDense(len(m.deg), dim+m.wrongBy, nil)
	out.Apply(func(i, _ int, _ float64) float64 { return m.deg[i] }, out)

	return out, nil
}

type failingModel struct{}

func (failingModel) Fit(*sparse.CSR) error             { return errNotFitted }
func (failingModel) Transform(int) (*mat.Dense, error) { return nil, nil }

func init() {
	embedding.Models.Register("test-degree", func() embedding.Model { return &degreeModel{} })
	embedding.Models.Register("test-wrong-shape", func() embedding.Model { return &degreeModel{wrongBy: 1} })
	embedding.Models.Register("test-failing", func() embedding.Model { return failingModel{} })
}

func TestEmbed(t *testing.T) {
	t.Parallel()
	adj, _ := fixture(t)

	emb, err := embedding.Embed("test-degree", adj, 3)
	require.NoError(t, err)
	r, c := emb.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, 3, c)
	require.Equal(t, []float64{2, 2, 2}, emb.RawRowView(1))

	// an embedded graph flows straight into calibration
	got, err := embedding.Calibrate(emb, []int{0}, []int{1}, adj, "test-degree")
	require.NoError(t, err)
	require.Equal(t, []float64{6}, got)
}

func TestEmbed_Errors(t *testing.T) {
	t.Parallel()
	adj, _ := fixture(t)

	tests := []struct {
		name  string
		model string
		adj   *sparse.CSR
		dim   int
		want  error
	}{
		{"zero dim", "test-degree", adj, 0, embedding.ErrBadDimension},
		{"nil graph", "test-degree", nil, 2, sparse.ErrNilMatrix},
		{"unknown", "deepwalk-missing", adj, 2, registry.ErrStrategyNotFound},
		{"fit fails", "test-failing", adj, 2, errNotFitted},
		{"wrong shape", "test-wrong-shape", adj, 2, sparse.ErrShapeMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := embedding.Embed(tc.model, tc.adj, tc.dim)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
