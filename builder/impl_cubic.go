// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// impl_cubic.go - implementation of Cubic(rows, cols, depth) constructor.
//
// Contract:
//   • every extent ≥ 1 (else ErrTooFewSites); rows*cols*depth ≤ g.SiteCount().
//   • Site (i,j,k) has index (i*cols + j)*depth + k (row-major).
//   • Emission order: bonds along k, then along j, then along i.
//
// Complexity:
//   • Time: O(rows*cols*depth) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattice/core"
)

const (
	methodCubic = "Cubic"
	minCubicDim = 1
)

// Cubic returns a Constructor that builds a rows×cols×depth simple cubic lattice.
func Cubic(rows, cols, depth int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minCubicDim || cols < minCubicDim || depth < minCubicDim {
			return fmt.Errorf("%s: %dx%dx%d (min %d): %w", methodCubic, rows, cols, depth, minCubicDim, ErrTooFewSites)
		}
		if err := requireSites(methodCubic, g, rows*cols*depth); err != nil {
			return err
		}
		id := func(i, j, k int) int { return (i*cols+j)*depth + k }

		var i, j, k int
		for _, st := range steps(depth, cfg.boundary) {
			for i = 0; i < rows; i++ {
				for j = 0; j < cols; j++ {
					if err := bond(methodCubic, g, cfg, id(i, j, st[0]), id(i, j, st[1]), 1); err != nil {
						return err
					}
				}
			}
		}
		for _, st := range steps(cols, cfg.boundary) {
			for i = 0; i < rows; i++ {
				for k = 0; k < depth; k++ {
					if err := bond(methodCubic, g, cfg, id(i, st[0], k), id(i, st[1], k), 1); err != nil {
						return err
					}
				}
			}
		}
		for _, st := range steps(rows, cfg.boundary) {
			for j = 0; j < cols; j++ {
				for k = 0; k < depth; k++ {
					if err := bond(methodCubic, g, cfg, id(st[0], j, k), id(st[1], j, k), 1); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
