// SPDX-License-Identifier: MIT

// Package builder produces deterministic graph fixtures as *sparse.CSR
// adjacencies: paths, cycles, stars, complete and complete bipartite
// graphs, wheels, grids, isolated nodes and seeded Erdős–Rényi samples.
//
// Composition model:
//
//	BuildGraph(opts, Path(4), Isolated(2), Star(5))
//
// Each constructor appends a fresh block of nodes; blocks are numbered in
// call order, so the example yields nodes 0..3 (path), 4..5 (isolated) and
// 6..10 (star, hub 6). The result is the disjoint union.
//
// Guarantees:
//
//   - Determinism: the same options, seed and constructor order give the
//     same adjacency.
//   - Fast-fail on invalid option parameters via panics in option
//     constructors; invalid constructor parameters return sentinel errors.
//   - Graphs are undirected (each edge mirrored) unless WithDirected is set.
package builder
