// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • boundary  = Open
//   • bondScale = 1.0

package builder

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// boundary applies to every dimension of Chain/Grid/Cubic.
	boundary Boundary
	// bondScale multiplies the scale of every emitted bond.
	bondScale float64
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultBoundary  = Open
	defaultBondScale = 1.0

	// halfBond is the scale of one entry of an explicit neighbor list: a bond
	// listed from both ends sums to a full bond.
	halfBond = 0.5
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		boundary:  defaultBoundary,
		bondScale: defaultBondScale,
	}
	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
