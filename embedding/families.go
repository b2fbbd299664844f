// SPDX-License-Identifier: MIT

package embedding

import "github.com/katalvlaran/linkpred/metrics"

// Embedding family names.
const (
	FamilyDeepWalk  = "deepwalk"
	FamilyNode2Vec  = "node2vec"
	FamilyLINE      = "line"
	FamilyGraphSAGE = "graphsage"
	FamilyLEigenMap = "leigenmap"
	FamilyModSpec   = "modspec"
)

// DefaultEligible lists the families whose scores are calibrated by
// default: the random-walk and neighbour-sampling objectives.
var DefaultEligible = []string{FamilyDeepWalk, FamilyNode2Vec, FamilyLINE, FamilyGraphSAGE}

// knownFamilies is every family name the CLI lists, in display order.
var knownFamilies = []string{
	FamilyDeepWalk, FamilyNode2Vec, FamilyLINE, FamilyGraphSAGE,
	FamilyLEigenMap, FamilyModSpec,
}

// KnownFamilies returns the recognised family names. Unknown names are
// still accepted by Calibrate; they are simply not eligible.
func KnownFamilies() []string {
	return append([]string(nil), knownFamilies...)
}

// IsEligible reports whether name is in DefaultEligible.
func IsEligible(name string) bool {
	_, ok := defaultEligibleSet()[name]

	return ok
}

func defaultEligibleSet() map[string]struct{} {
	set := make(map[string]struct{}, len(DefaultEligible))
	for _, n := range DefaultEligible {
		set[n] = struct{}{}
	}

	return set
}

// metricLabel bounds the strategy label: known families, registered
// trainers and eligible names pass through, the rest collapse.
func (c config) metricLabel(model string) string {
	if _, ok := c.eligible[model]; ok || Models.Has(model) {
		return model
	}
	for _, f := range knownFamilies {
		if f == model {
			return model
		}
	}

	return metrics.StrategyUnknown
}
