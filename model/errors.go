// SPDX-License-Identifier: MIT

package model

import "errors"

// ErrConflictingLattice indicates that a lattice was specified both by boundary
// keyword and by an explicit neighbor list.
var ErrConflictingLattice = errors.New("model: lattice and boundary both specified")

// ErrBadParameter indicates a non-finite model parameter, a zero normalizing
// hopping amplitude, or a negative lead length.
var ErrBadParameter = errors.New("model: bad parameter")
