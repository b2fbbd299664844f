// SPDX-License-Identifier: MIT

// Command linkpred scores node pairs of a graph for link prediction.
//
//	linkpred list
//	linkpred score --graph edges.tsv --pairs pairs.tsv --strategy adamicAdar
//	linkpred calibrate --graph edges.tsv --pairs pairs.tsv --embedding emb.tsv --model node2vec
//	linkpred evaluate --graph edges.tsv --sampler degreeBiased
//
// Input files are whitespace-separated columns with '#' comments: edges
// "u v [w]", pairs "u v", embeddings one row of floats per node.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linkpred:", err)
		os.Exit(1)
	}
}
