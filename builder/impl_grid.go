// SPDX-License-Identifier: MIT
// Package: linkpred/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbour lattice, node (r,c) at
// base + r*cols + c. Edges right then down per cell, row-major. rows, cols ≥ 1.

package builder

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(acc *accumulator, cfg builderConfig) error {
		if err := validateMin(methodGrid, rows, minGridSide); err != nil {
			return err
		}
		if err := validateMin(methodGrid, cols, minGridSide); err != nil {
			return err
		}
		base := acc.addNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := base + r*cols + c
				if c+1 < cols {
					acc.addEdge(cfg, id, id+1)
				}
				if r+1 < rows {
					acc.addEdge(cfg, id, id+cols)
				}
			}
		}

		return nil
	}
}
