// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` and a method tag.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewSites indicates that a size parameter (n, rows, cols, depth) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewSites = errors.New("builder: too few sites")

// ErrSiteOutOfRange indicates a constructor needs more sites than the lattice has,
// or a neighbor list references a site outside the lattice.
var ErrSiteOutOfRange = errors.New("builder: site out of range")

// ErrUnknownBoundary indicates an unrecognized boundary keyword.
var ErrUnknownBoundary = errors.New("builder: unknown boundary keyword")

// ErrBadNeighborList indicates a neighbor list whose length differs from the
// number of sites it describes.
var ErrBadNeighborList = errors.New("builder: neighbor list size mismatch")

// ErrConstructFailed indicates a constructor could not be applied (e.g. nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
