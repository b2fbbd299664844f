// SPDX-License-Identifier: MIT

package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadEdges(t *testing.T) {
	t.Parallel()

	adj, err := readEdges(strings.NewReader("# header\n0 1 2.5\n\n1 2\n"), 5, true)
	require.NoError(t, err)
	require.Equal(t, 5, adj.Rows())
	require.Equal(t, []float64{2.5, 3.5, 1, 0, 0}, adj.RowSums())

	directed, err := readEdges(strings.NewReader("0 1\n"), 0, false)
	require.NoError(t, err)
	require.Equal(t, 1, directed.NNZ())

	for _, bad := range []string{"0\n", "0 1 2 3\n", "-1 2\n", "a b\n", "0 1 w\n"} {
		_, err := readEdges(strings.NewReader(bad), 0, true)
		require.ErrorIs(t, err, errParse, "input %q", bad)
	}
}

func TestReadPairsAndEmbedding(t *testing.T) {
	t.Parallel()

	src, trg, err := readPairs(strings.NewReader("0 1\n2 3 # note\n"))
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, src)
	require.Equal(t, []int{1, 3}, trg)

	_, _, err = readPairs(strings.NewReader("0 1 2\n"))
	require.ErrorIs(t, err, errParse)

	emb, err := readEmbedding(strings.NewReader("1 2\n3 4\n"))
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, emb.RawRowView(1))

	_, err = readEmbedding(strings.NewReader("# only comments\n"))
	require.ErrorIs(t, err, errParse)
}
