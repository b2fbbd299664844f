// SPDX-License-Identifier: MIT

// Package sparse provides the compressed sparse row (CSR) adjacency used by
// every link-prediction scorer in this module.
//
// What it offers:
//
//   - CSR construction from triplets, edge lists or gonum dense matrices,
//     with duplicate summing, zero dropping and an ingestion policy
//     (WithUndirected, WithBinaryWeights, WithoutLoops).
//   - The graph contract scorers rely on: row sums (degree), weighted row
//     dot products, sparse×sparse products, diagonal scaling, coordinate
//     gather and diagonal construction.
//   - Centralised validators (ValidatePairs, ValidateSquare, ...) and the
//     shared SafeDiv helper that defines degree-zero semantics.
//
// Numeric policy:
//
//	Adjacency entries are finite and non-negative. An all-zero row is an
//	isolated node, which is a first-class state rather than an error.
//
// Errors are package sentinels (ErrShapeMismatch, ErrIndexOutOfRange, ...)
// wrapped with call-site context; match them with errors.Is.
//
// Quick ASCII example (path 0-1-2-3, undirected):
//
//	0───1───2───3
//
//	indptr  = [0 1 3 5 6]
//	indices = [1 0 2 1 3 2]
//	data    = [1 1 1 1 1 1]
package sparse
