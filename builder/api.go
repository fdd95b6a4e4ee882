// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildLattice(sites, gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options and constructor order ⇒ identical lattices.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lattice/core"
)

// Constructor applies a deterministic lattice mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Emit bonds in a stable, documented order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildLattice creates a core.Graph with the given number of sites and graph
// options gopts, resolves the builder configuration from bopts, and applies all
// constructors in order. Multi-bonds are always enabled: periodic dimensions of
// extent 2 and neighbor lists that name a pair from both ends rely on them.
//
// Any constructor error is wrapped with "BuildLattice: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor; wrapper overhead O(K).
func BuildLattice(sites int, gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	opts := append([]core.GraphOption{core.WithMultiBonds()}, gopts...)
	g, err := core.NewGraph(sites, opts...)
	if err != nil {
		return nil, fmt.Errorf("BuildLattice: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildLattice: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildLattice: %w", err)
		}
	}

	return g, nil
}

// Apply runs constructors against an existing lattice.
// It returns sentinel errors; it never panics.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("Apply: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("Apply: %w", err)
		}
	}

	return nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Chain(n)              sites 0..n-1, bonds i–(i+1); periodic adds (n-1)–0.
// Grid(rows, cols)      row-major r*cols+c; bonds right then down per site.
// Cubic(r, c, d)        row-major (i*c+j)*d+k; bonds along k, j, i per site.
// Neighbors(nn)         half-bonds i–x for every x listed in nn[i].
