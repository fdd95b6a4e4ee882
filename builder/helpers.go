// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// helpers.go - shared validation and bond emission for the regular lattices.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattice/core"
)

// steps returns the coordinate pairs (c, c') joined along one dimension of the
// given extent, in ascending c. Periodic dimensions of extent ≥ 2 add the wrap
// pair (extent-1, 0); for extent 2 that duplicates (0, 1), which is how a
// two-site ring sees its partner from both sides.
func steps(extent int, b Boundary) [][2]int {
	out := make([][2]int, 0, extent)
	for c := 0; c+1 < extent; c++ {
		out = append(out, [2]int{c, c + 1})
	}
	if b == Periodic && extent >= 2 {
		out = append(out, [2]int{extent - 1, 0})
	}

	return out
}

// requireSites checks a constructor needing `need` sites fits into g.
func requireSites(method string, g *core.Graph, need int) error {
	if need > g.SiteCount() {
		return fmt.Errorf("%s: needs %d sites, lattice has %d: %w", method, need, g.SiteCount(), ErrSiteOutOfRange)
	}

	return nil
}

// bond adds one scaled bond with method context on failure.
func bond(method string, g *core.Graph, cfg builderConfig, a, b int, scale float64) error {
	if _, err := g.AddBond(a, b, scale*cfg.bondScale); err != nil {
		return fmt.Errorf("%s: AddBond(%d,%d): %w", method, a, b, err)
	}

	return nil
}
