// SPDX-License-Identifier: MIT

package topology_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linkpred/builder"
	"github.com/katalvlaran/linkpred/topology"
)

func BenchmarkStrategies(b *testing.B) {
	adj := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(500, 0.02))
	rng := rand.New(rand.NewSource(2))
	const k = 1000
	src, trg := make([]int, k), make([]int, k)
	for i := range src {
		src[i], trg[i] = rng.Intn(500), rng.Intn(500)
	}

	for _, name := range topology.Models.Names() {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := topology.Score(name, adj, src, trg); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
