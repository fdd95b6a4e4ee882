// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewSites); rows*cols ≤ g.SiteCount().
//   • Site (r,c) has index r*cols + c (row-major).
//   • Emission order: horizontal bonds row by row, then vertical bonds column by column.
//   • Periodic wraps each dimension of extent ≥ 2 (parallel bond for extent 2).
//
// Complexity:
//   • Time: O(rows*cols) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattice/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols square lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (min %d): %w", methodGrid, rows, cols, minGridDim, ErrTooFewSites)
		}
		if err := requireSites(methodGrid, g, rows*cols); err != nil {
			return err
		}
		id := func(r, c int) int { return r*cols + c }

		var r, c int
		horiz := steps(cols, cfg.boundary)
		for r = 0; r < rows; r++ {
			for _, st := range horiz {
				if err := bond(methodGrid, g, cfg, id(r, st[0]), id(r, st[1]), 1); err != nil {
					return err
				}
			}
		}
		vert := steps(rows, cfg.boundary)
		for c = 0; c < cols; c++ {
			for _, st := range vert {
				if err := bond(methodGrid, g, cfg, id(st[0], c), id(st[1], c), 1); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
