// SPDX-License-Identifier: MIT

package topology

import (
	"time"

	"github.com/katalvlaran/linkpred/metrics"
	"github.com/katalvlaran/linkpred/registry"
	"github.com/katalvlaran/linkpred/sparse"
)

// Family is the metrics/registry label of structural scorers.
const Family = "topology"

// Registry names of the built-in strategies.
const (
	NamePreferentialAttachment = "preferentialAttachment"
	NameCommonNeighbors        = "commonNeighbors"
	NameJaccardIndex           = "jaccardIndex"
	NameResourceAllocation     = "resourceAllocation"
	NameAdamicAdar             = "adamicAdar"
	NameLocalRandomWalk        = "localRandomWalk"
	NameLocalPathIndex         = "localPathIndex"
)

// Func is the uniform signature of a structural scorer.
type Func func(adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error)

// Models is the process-wide structural strategy registry.
// Additional strategies may be registered; built-ins cannot be replaced.
var Models = registry.New[Func](Family)

func init() {
	Models.Register(NamePreferentialAttachment, PreferentialAttachment)
	Models.Register(NameCommonNeighbors, CommonNeighbors)
	Models.Register(NameJaccardIndex, JaccardIndex)
	Models.Register(NameResourceAllocation, ResourceAllocation)
	Models.Register(NameAdamicAdar, AdamicAdar)
	Models.Register(NameLocalRandomWalk, LocalRandomWalk)
	Models.Register(NameLocalPathIndex, LocalPathIndex)
}

// Score resolves name in Models and scores the batch, recording metrics.
// Unknown names fail with registry.ErrStrategyNotFound and are recorded
// under metrics.StrategyUnknown.
func Score(name string, adj *sparse.CSR, src, trg []int, opts ...Option) ([]float64, error) {
	start := time.Now()
	fn, err := Models.Resolve(name)
	if err != nil {
		metrics.Observe(Family, metrics.StrategyUnknown, start, 0, err)
		return nil, err
	}
	out, err := fn(adj, src, trg, opts...)
	metrics.Observe(Family, name, start, len(out), err)

	return out, err
}
