// SPDX-License-Identifier: MIT

// Package embedding turns node-embedding vectors into per-pair link scores.
//
// The raw score of a pair (i,j) is the dot product uᵢ·uⱼ of two rows of an
// n×d embedding matrix. For embedding families trained with a random-walk
// or co-occurrence objective the dot product is calibrated into an
// approximate log-probability of a walk moving between i and j:
//
//	score(i,j) = uᵢ·uⱼ + ln p0(i) + ln p0(j),  p0(v) = max(deg v,1) / Σ max(deg,1)
//
// Spectral families (leigenmap, modspec) are returned uncalibrated. The
// eligible set defaults to DefaultEligible and can be replaced per call
// with WithEligible.
//
// Training embeddings is out of scope; the Model interface and the Models
// registry describe how an external trainer plugs in.
package embedding
