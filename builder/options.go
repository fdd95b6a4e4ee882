// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.

package builder

import "math"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before lattice construction begins.
type BuilderOption func(*builderConfig)

// WithBoundary sets the boundary condition for Chain/Grid/Cubic.
// Panics on a value other than Open or Periodic.
func WithBoundary(b Boundary) BuilderOption {
	if b != Open && b != Periodic {
		panic("builder: WithBoundary(unknown)")
	}
	return func(c *builderConfig) { c.boundary = b }
}

// WithBondScale multiplies every emitted bond scale by s.
// Panics when s is NaN, ±Inf or not positive.
func WithBondScale(s float64) BuilderOption {
	if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
		panic("builder: WithBondScale(s) requires finite s > 0")
	}
	return func(c *builderConfig) { c.bondScale = s }
}
