// SPDX-License-Identifier: MIT

// Package evaluate measures how well link scores separate true edges from
// non-edges.
//
// A typical run:
//
//  1. SplitEdges hides a fraction of the edges of a graph.
//  2. A negative sampler from Samplers draws as many non-edges.
//  3. Run scores both sets with a topology.Scorer and reports the
//     AUC-ROC per strategy.
//
// Samplers:
//
//   - uniform: both endpoints uniform over the nodes.
//   - degreeBiased: both endpoints drawn with probability ∝ degree, which
//     yields harder negatives for degree-driven scorers.
//
// Both samplers reject self-pairs and existing edges and give up with
// ErrSamplingExhausted after a bounded number of draws.
package evaluate
