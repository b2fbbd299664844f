// SPDX-License-Identifier: MIT

package builder_test

import (
	"fmt"

	"github.com/katalvlaran/linkpred/builder"
)

// ExampleBuildGraph composes a path with two isolated nodes.
func ExampleBuildGraph() {
	adj, err := builder.BuildGraph(nil, builder.Path(3), builder.Isolated(2))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(adj.Rows(), adj.NNZ(), adj.RowSums())
	// Output: 5 4 [1 2 1 0 0]
}
