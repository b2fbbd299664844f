// SPDX-License-Identifier: MIT

package evaluate

import (
	"fmt"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/linkpred/registry"
	"github.com/katalvlaran/linkpred/sparse"
)

// Sampler names.
const (
	SamplerUniform      = "uniform"
	SamplerDegreeBiased = "degreeBiased"
)

// DrawsPerPair bounds the draws a sampler may spend per requested pair.
const DrawsPerPair = 100

// minDraws keeps tiny requests from failing on an unlucky streak.
const minDraws = 1000

// Sampler draws k node pairs (i,j), i≠j, with adj[i,j] == 0.
type Sampler func(adj *sparse.CSR, k int, rng *rand.Rand) (src, trg []int, err error)

// Samplers is the negative-sampler registry.
var Samplers = registry.New[Sampler]("sampler")

func init() {
	Samplers.MustRegister(SamplerUniform, Uniform)
	Samplers.MustRegister(SamplerDegreeBiased, DegreeBiased)
}

// NegativePairs resolves name in Samplers and draws k non-edges.
func NegativePairs(name string, adj *sparse.CSR, k int, rng *rand.Rand) ([]int, []int, error) {
	fn, err := Samplers.Resolve(name)
	if err != nil {
		return nil, nil, err
	}

	return fn(adj, k, rng)
}

// Uniform draws both endpoints uniformly over the nodes.
func Uniform(adj *sparse.CSR, k int, rng *rand.Rand) ([]int, []int, error) {
	if err := checkSampler(SamplerUniform, adj, k, rng); err != nil {
		return nil, nil, err
	}
	n := adj.Rows()

	return rejectionSample(SamplerUniform, adj, k, func() (int, int) {
		return rng.IntN(n), rng.IntN(n)
	})
}

// DegreeBiased draws both endpoints independently with probability
// proportional to their degree. Isolated nodes are never drawn.
func DegreeBiased(adj *sparse.CSR, k int, rng *rand.Rand) ([]int, []int, error) {
	if err := checkSampler(SamplerDegreeBiased, adj, k, rng); err != nil {
		return nil, nil, err
	}
	deg := adj.RowSums()
	if floats.Sum(deg) == 0 {
		if k == 0 {
			return []int{}, []int{}, nil
		}
		return nil, nil, evaluateErrorf(SamplerDegreeBiased, fmt.Errorf("graph has no edges: %w", ErrSamplingExhausted))
	}
	cat := distuv.NewCategorical(deg, rng)

	return rejectionSample(SamplerDegreeBiased, adj, k, func() (int, int) {
		return int(cat.Rand()), int(cat.Rand())
	})
}

func checkSampler(name string, adj *sparse.CSR, k int, rng *rand.Rand) error {
	if err := sparse.ValidateSquare(adj); err != nil {
		return evaluateErrorf(name, err)
	}
	if k < 0 {
		return evaluateErrorf(name, fmt.Errorf("k=%d: %w", k, sparse.ErrBadShape))
	}
	if rng == nil {
		return evaluateErrorf(name, ErrNeedRand)
	}
	if adj.Rows() == 0 && k > 0 {
		return evaluateErrorf(name, fmt.Errorf("graph has no nodes: %w", ErrSamplingExhausted))
	}

	return nil
}

// rejectionSample keeps drawing until k non-edges are found or the draw
// budget max(DrawsPerPair·k, minDraws) is spent.
func rejectionSample(name string, adj *sparse.CSR, k int, draw func() (int, int)) ([]int, []int, error) {
	src, trg := make([]int, 0, k), make([]int, 0, k)
	budget := max(DrawsPerPair*k, minDraws)
	for d := 0; len(src) < k; d++ {
		if d == budget {
			return nil, nil, evaluateErrorf(name, fmt.Errorf("found %d of %d after %d draws: %w", len(src), k, budget, ErrSamplingExhausted))
		}
		i, j := draw()
		if i == j {
			continue
		}
		if w, _ := adj.At(i, j); w != 0 {
			continue
		}
		src = append(src, i)
		trg = append(trg, j)
	}

	return src, trg, nil
}
