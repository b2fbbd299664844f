// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/evaluate"
	"github.com/katalvlaran/linkpred/sparse"
)

func TestAUCROC(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		scores []float64
		labels []bool
		want   float64
	}{
		{"perfect", []float64{0.9, 0.8, 0.2, 0.1}, []bool{true, true, false, false}, 1},
		{"reversed", []float64{0.1, 0.2, 0.8, 0.9}, []bool{true, true, false, false}, 0},
		{"all ties", []float64{3, 3, 3, 3}, []bool{true, false, true, false}, 0.5},
		{"mixed", []float64{0.1, 0.4, 0.35, 0.8}, []bool{false, false, true, true}, 0.75},
		{"one tie pair", []float64{1, 1, 0}, []bool{true, false, false}, 0.75},
		{"unsorted input", []float64{5, -1, 2, 7, 0}, []bool{true, false, false, true, false}, 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			scores := append([]float64(nil), tc.scores...)
			got, err := evaluate.AUCROC(scores, tc.labels)
			require.NoError(t, err)
			require.InDelta(t, tc.want, got, 1e-12)
			require.Equal(t, tc.scores, scores, "input must not be reordered")
		})
	}
}

func TestAUCROC_Errors(t *testing.T) {
	t.Parallel()

	_, err := evaluate.AUCROC([]float64{1, 2}, []bool{true})
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)

	_, err = evaluate.AUCROC([]float64{1, 2}, []bool{true, true})
	require.ErrorIs(t, err, evaluate.ErrSingleClass)

	_, err = evaluate.AUCROC(nil, nil)
	require.ErrorIs(t, err, evaluate.ErrSingleClass)

	_, err = evaluate.AUCROC([]float64{math.NaN(), 1}, []bool{true, false})
	require.ErrorIs(t, err, sparse.ErrNaNInf)
}
