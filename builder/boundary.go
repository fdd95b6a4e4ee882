// SPDX-License-Identifier: MIT
// Package: lattice/builder
//
// boundary.go - boundary conditions and their keywords.

package builder

import (
	"fmt"
	"strings"
)

// Boundary selects how a lattice dimension terminates.
type Boundary int

const (
	// Open leaves the ends of every dimension unconnected.
	Open Boundary = iota
	// Periodic wraps every dimension of extent ≥ 2 onto itself.
	Periodic
)

// String returns the canonical keyword.
func (b Boundary) String() string {
	switch b {
	case Open:
		return "open"
	case Periodic:
		return "periodic"
	}

	return fmt.Sprintf("boundary(%d)", int(b))
}

// ParseBoundary maps a boundary keyword to a Boundary.
//
//	"o", "open", "c"          → Open
//	"p", "pbc", "periodic"    → Periodic
//
// Matching is case-insensitive; anything else is ErrUnknownBoundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "o", "open", "c":
		return Open, nil
	case "p", "pbc", "periodic":
		return Periodic, nil
	}

	return Open, fmt.Errorf("ParseBoundary(%q): %w", s, ErrUnknownBoundary)
}
