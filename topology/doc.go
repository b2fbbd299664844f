// SPDX-License-Identifier: MIT

// Package topology scores node pairs for link likelihood using only the
// adjacency structure of a graph.
//
// Strategies (registry name → function):
//
//	preferentialAttachment  deg(i)·deg(j)
//	commonNeighbors         Σ_z A[i,z]·A[j,z]
//	jaccardIndex            CN / max(deg(i)+deg(j)−CN, 1)
//	resourceAllocation      Σ_z A[i,z]·A[j,z] / deg(z)            (deg(z)=0 ⇒ weight 0)
//	adamicAdar              Σ_z A[i,z]·A[j,z] / max(ln deg(z), 1)  (deg(z)=0 ⇒ weight 0)
//	localRandomWalk         π(i) · Σ_{t=1..T} (Pᵗ)[i,j],  P = D⁻¹A, π = deg/Σdeg
//	localPathIndex          Σ_{k=2..d} ε^{k−2} (Aᵏ)[i,j]   (default A² + 10⁻³·A³)
//
// Every strategy shares the Func signature, derives the degree vector at
// most once per call (or takes it from WithDegrees), builds sparse
// products restricted to the requested source rows and gathers only the
// requested coordinates. All functions are pure: identical inputs give
// identical outputs, and inputs are never mutated.
//
// Degree-zero nodes are never an error. Every valid pair gets a finite
// score; divisions go through sparse.SafeDiv.
//
// Errors: sparse.ErrShapeMismatch (batch lengths, degree vector length),
// sparse.ErrIndexOutOfRange (node index), sparse.ErrNonSquare (adjacency),
// registry.ErrStrategyNotFound (unknown name in Score).
package topology
