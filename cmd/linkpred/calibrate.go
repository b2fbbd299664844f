// SPDX-License-Identifier: MIT

package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/linkpred/embedding"
)

type calibrateFlags struct {
	graphFlags
	pairs     string
	embedding string
	model     string
}

func newCalibrateCmd(a *app) *cobra.Command {
	f := &calibrateFlags{}
	cmd := &cobra.Command{
		Use:   "calibrate",
		Short: "Score node pairs from an embedding",
		Long: `Score every pair of --pairs by the dot product of its embedding rows.
Random-walk families (deepwalk, node2vec, line, graphsage) add the log of the
degree prior of both endpoints; other families print the raw dot product.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCalibrate(cmd, f)
		},
	}
	f.register(cmd)
	cmd.Flags().StringVar(&f.pairs, "pairs", "", "Pair file (u v)")
	cmd.Flags().StringVar(&f.embedding, "embedding", "", "Embedding file, one row per node")
	cmd.Flags().StringVar(&f.model, "model", embedding.FamilyNode2Vec, "Embedding family that produced the vectors")
	_ = cmd.MarkFlagRequired("pairs")
	_ = cmd.MarkFlagRequired("embedding")

	return cmd
}

func (a *app) runCalibrate(cmd *cobra.Command, f *calibrateFlags) error {
	start := time.Now()
	emb, err := openWith(f.embedding, readEmbedding)
	if err != nil {
		return err
	}
	rows, dim := emb.Dims()
	// Embedding rows count as nodes, so isolated trailing nodes need no --nodes.
	adj, err := openWith(f.graph, edgeReader(max(f.nodes, rows), f.resolveUndirected(cmd, a)))
	if err != nil {
		return err
	}
	src, trg, err := readPairFile(f.pairs)
	if err != nil {
		return err
	}

	scores, err := embedding.Calibrate(emb, src, trg, adj, f.model, a.cfg.EmbeddingOptions()...)
	if err != nil {
		return err
	}
	a.log.Info("calibrated", "model", f.model, "dim", dim, "nodes", adj.Rows(), "pairs", len(scores), "elapsed", time.Since(start))

	return writeScores(cmd.OutOrStdout(), src, trg, scores)
}
