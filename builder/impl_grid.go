// SPDX-License-Identifier: MIT
// Package: paretopath/builder
//
// impl_grid.go — implementation of Grid(rows, cols) constructor.
//
// Model:
//   • 2D orthogonal grid with 4-neighborhood (right and bottom neighbor per cell).
//   • Vertex IDs use the fixed coordinate scheme "r,c" (row-major); cfg.idFn is
//     not consulted so that coordinates stay readable.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each cell in row-major order emit Right then Bottom if present.
//   • Directed graphs also get the reverse arc with the same cost, so the
//     neighborhood stays symmetric.
//
// Complexity: O(rows·cols·d).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/paretopath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID formats a grid coordinate as "r,c".
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
// Grids with independent random costs are the classic stress fixture for
// multi-objective search: the number of monotone corner-to-corner routes
// grows combinatorially.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		mirror := g.Directed()
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r, c+1), mirror); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, cfg, methodGrid, u, GridID(r+1, c), mirror); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
