// Package linkpred scores pairs of nodes for the likelihood that an edge
// exists between them: the link-prediction problem.
//
// 🚀 What is linkpred?
//
//	A small scoring engine over sparse adjacency data:
//		• Structural heuristics: preferential attachment, common neighbours,
//		  Jaccard, resource allocation, Adamic–Adar, local random walk,
//		  local path index
//		• Embedding calibration: dot-product similarity turned into an
//		  approximate log-probability with a degree prior
//		• Named registries: pick a scorer, embedding family or negative
//		  sampler by string at runtime
//		• Evaluation: edge hold-out, uniform and degree-biased negative
//		  sampling, AUC-ROC
//
// ✨ Guarantees
//
//   - Isolated nodes are a valid state: every scorer returns finite values
//     for degree-zero endpoints, never Inf or NaN.
//   - Out-of-range or unpaired indices are errors, never clamped.
//   - Inputs are never mutated; identical inputs give identical scores.
//
// Under the hood, everything is organized under these subpackages:
//
//	sparse/    — immutable CSR matrices, sparse products, coordinate gather
//	topology/  — structural scorers, the topology registry, a degree-caching Scorer
//	embedding/ — dot-product scores, degree-prior calibration, trainer registry
//	registry/  — generic insert-if-absent name → function registry
//	evaluate/  — edge split, negative samplers, AUC-ROC
//	builder/   — deterministic graph fixtures (paths, stars, cliques, G(n,p), …)
//	metrics/   — Prometheus collectors for every scoring call
//	config/    — YAML settings for the CLI
//	cmd/linkpred — the command-line front end
//
// Quick ASCII example:
//
//	0───1───2───3
//
//	commonNeighbors(0,2) = 1 (node 1), preferentialAttachment(0,3) = 1·1,
//	resourceAllocation(0,2) = 1/deg(1) = 0.5.
//
//	go install github.com/katalvlaran/linkpred/cmd/linkpred@latest
package linkpred
