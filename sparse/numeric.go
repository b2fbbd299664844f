// SPDX-License-Identifier: MIT

package sparse

import "math"

// SafeDiv returns num / max(den, floor).
//
// It is the one place where the "max(x, 1)" guard used by every heuristic
// lives, so degree-zero semantics cannot drift between scorers:
//   - SafeDiv(1, deg, 1) is 1/deg for deg >= 1 and 1 for isolated nodes;
//     callers that need 0 for isolated nodes mask them explicitly.
//   - SafeDiv(cn, union, 1) keeps Jaccard finite when both degrees are 0.
//
// floor must be > 0 for the result to be finite.
func SafeDiv(num, den, floor float64) float64 {
	return num / math.Max(den, floor)
}

// SafeDivVec applies SafeDiv element-wise with a scalar numerator into a
// fresh slice: out[i] = num / max(den[i], floor).
func SafeDivVec(num float64, den []float64, floor float64) []float64 {
	out := make([]float64, len(den))
	for i, d := range den {
		out[i] = SafeDiv(num, d, floor)
	}

	return out
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
