// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// impl_neighbors.go - implementation of Neighbors(nn) constructor.
//
// Contract:
//   • len(nn) ≥ 1 (else ErrTooFewSites) and len(nn) == g.SiteCount()
//     (else ErrBadNeighborList): a neighbor list describes the whole lattice.
//   • Every listed x must lie in [0, len(nn)) (else ErrSiteOutOfRange).
//   • For each site i and each x in nn[i] (in list order) emits a bond i–x of
//     scale ½·cfg.bondScale. A pair listed from both ends therefore sums to one
//     full bond; a pair listed twice from both ends sums to two.
//   • Listing a site as its own neighbor needs a lattice built WithLoops().
//
// Complexity:
//   • Time: O(Σ len(nn[i])) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattice/core"
)

const methodNeighbors = "Neighbors"

// Neighbors returns a Constructor that builds a lattice from an explicit
// nearest-neighbor list: nn[i] names the neighbors of site i.
func Neighbors(nn [][]int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n := len(nn)
		if n < 1 {
			return fmt.Errorf("%s: empty neighbor list: %w", methodNeighbors, ErrTooFewSites)
		}
		if n != g.SiteCount() {
			return fmt.Errorf("%s: %d entries for %d sites: %w", methodNeighbors, n, g.SiteCount(), ErrBadNeighborList)
		}
		for i, list := range nn {
			for _, x := range list {
				if x < 0 || x >= n {
					return fmt.Errorf("%s: site %d lists %d (n=%d): %w", methodNeighbors, i, x, n, ErrSiteOutOfRange)
				}
				if err := bond(methodNeighbors, g, cfg, i, x, halfBond); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// NeighborList returns the nearest-neighbor list of a one-dimensional chain of
// L sites under boundary b, in the format accepted by Neighbors.
// Each site lists its left neighbor first, then its right one.
func NeighborList(L int, b Boundary) ([][]int, error) {
	if L < minChainSites {
		return nil, fmt.Errorf("NeighborList: L=%d < min=%d: %w", L, minChainSites, ErrTooFewSites)
	}
	nn := make([][]int, L)
	for i := 0; i < L; i++ {
		switch {
		case b == Periodic:
			nn[i] = []int{(i - 1 + L) % L, (i + 1) % L}
		case i == 0:
			nn[i] = []int{1}
		case i == L-1:
			nn[i] = []int{L - 2}
		default:
			nn[i] = []int{i - 1, i + 1}
		}
	}

	return nn, nil
}
