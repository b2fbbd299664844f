// SPDX-License-Identifier: MIT

package evaluate_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linkpred/builder"
	"github.com/katalvlaran/linkpred/evaluate"
	"github.com/katalvlaran/linkpred/sparse"
)

func TestPositivePairs(t *testing.T) {
	t.Parallel()
	adj := builder.MustBuild(nil, builder.Path(4))

	src, trg, err := evaluate.PositivePairs(adj, true)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2}, src)
	require.Equal(t, []int{1, 2, 3}, trg)

	src, trg, err = evaluate.PositivePairs(adj, false)
	require.NoError(t, err)
	require.Len(t, src, 6)
	require.Len(t, trg, 6)

	_, _, err = evaluate.PositivePairs(nil, true)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

func TestSplitEdges(t *testing.T) {
	t.Parallel()
	adj := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(9)}, builder.RandomSparse(40, 0.2))
	allSrc, _, err := evaluate.PositivePairs(adj, true)
	require.NoError(t, err)
	m := len(allSrc)

	split, err := evaluate.SplitEdges(adj, 0.25, newRand(4), true)
	require.NoError(t, err)
	require.Equal(t, adj.Rows(), split.Train.Rows())
	require.Len(t, split.TestSrc, len(split.TestTrg))

	trainSrc, _, err := evaluate.PositivePairs(split.Train, true)
	require.NoError(t, err)
	require.Equal(t, m, len(trainSrc)+len(split.TestSrc))

	for k := range split.TestSrc {
		i, j := split.TestSrc[k], split.TestTrg[k]
		require.Less(t, i, j)
		w, err := adj.At(i, j)
		require.NoError(t, err)
		require.NotZero(t, w)
		w, err = split.Train.At(j, i)
		require.NoError(t, err)
		require.Zero(t, w, "hidden edge (%d,%d) leaked into train", i, j)
	}

	again, err := evaluate.SplitEdges(adj, 0.25, newRand(4), true)
	require.NoError(t, err)
	require.Equal(t, split.TestSrc, again.TestSrc)
}

func TestSplitEdges_Errors(t *testing.T) {
	t.Parallel()
	adj := builder.MustBuild(nil, builder.Cycle(5))

	for _, f := range []float64{0, 1, -0.5, 2} {
		_, err := evaluate.SplitEdges(adj, f, newRand(1), true)
		require.ErrorIs(t, err, evaluate.ErrInvalidFraction, "fraction %v", f)
	}
	_, err := evaluate.SplitEdges(nil, 0.5, newRand(1), true)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
	_, err = evaluate.SplitEdges(adj, 0.5, nil, true)
	require.ErrorIs(t, err, evaluate.ErrNeedRand)
}

func TestSplitEdges_Directed(t *testing.T) {
	t.Parallel()
	adj, err := sparse.FromEdges(4, [][2]int{{0, 1}, {2, 1}, {3, 0}, {3, 2}, {1, 1}})
	require.NoError(t, err)

	split, err := evaluate.SplitEdges(adj, 0.5, newRand(1), false)
	require.NoError(t, err)
	require.Len(t, split.TestSrc, 2)
	require.Equal(t, adj.NNZ(), split.Train.NNZ()+len(split.TestSrc))

	w, err := split.Train.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, w, "self-loop kept in train")

	hidden := map[[2]int]bool{}
	for k := range split.TestSrc {
		hidden[[2]int{split.TestSrc[k], split.TestTrg[k]}] = true
	}
	for _, e := range adj.Entries() {
		w, err := split.Train.At(e.Row, e.Col)
		require.NoError(t, err)
		if hidden[[2]int{e.Row, e.Col}] {
			require.Zero(t, w, "hidden edge (%d,%d) leaked into train", e.Row, e.Col)
		} else {
			require.Equal(t, e.Value, w, "edge (%d,%d) lost from train", e.Row, e.Col)
		}
	}
	for _, e := range split.Train.Entries() {
		w, err := adj.At(e.Row, e.Col)
		require.NoError(t, err)
		require.NotZero(t, w, "train gained edge (%d,%d)", e.Row, e.Col)
	}
}

func TestSplitEdges_UndirectedNeedsSymmetry(t *testing.T) {
	t.Parallel()
	adj, err := sparse.FromEdges(3, [][2]int{{0, 1}, {2, 1}})
	require.NoError(t, err)

	_, err = evaluate.SplitEdges(adj, 0.5, newRand(1), true)
	require.ErrorIs(t, err, evaluate.ErrAsymmetric)
}
