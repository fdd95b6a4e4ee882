// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// impl_chain.go - implementation of Chain(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewSites); n ≤ g.SiteCount() (else ErrSiteOutOfRange).
//   • Emits bonds i–(i+1) for i = 0..n-2, then (n-1)–0 when periodic.
//   • Every bond has scale cfg.bondScale.
//
// Complexity:
//   • Time: O(n) bonds. Space: O(n) for the step list.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattice/core"
)

const (
	methodChain   = "Chain"
	minChainSites = 2
)

// Chain returns a Constructor that builds a one-dimensional chain on sites 0..n-1.
func Chain(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minChainSites {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainSites, ErrTooFewSites)
		}
		if err := requireSites(methodChain, g, n); err != nil {
			return err
		}
		for _, st := range steps(n, cfg.boundary) {
			if err := bond(methodChain, g, cfg, st[0], st[1], 1); err != nil {
				return err
			}
		}

		return nil
	}
}
