// SPDX-License-Identifier: MIT

package fci

import "errors"

// Sentinel errors for FCI construction and solving.
var (
	// ErrTooManyOrbitals indicates more spin-orbitals than the dense engine supports.
	ErrTooManyOrbitals = errors.New("fci: too many spin-orbitals (max 16)")

	// ErrBadOrbitalCount indicates a non-positive spin-orbital count.
	ErrBadOrbitalCount = errors.New("fci: orbital count must be positive")

	// ErrBadParticleCount indicates nelec < 0 or nelec > orbital count.
	ErrBadParticleCount = errors.New("fci: particle count out of range")

	// ErrShapeMismatch indicates integrals whose dimensions disagree with each
	// other or with the basis.
	ErrShapeMismatch = errors.New("fci: integral shape mismatch")

	// ErrTwistUnsupported indicates a twist phase was requested from a model that
	// has no complex hopping matrix.
	ErrTwistUnsupported = errors.New("fci: model does not support a twist phase")

	// ErrEmptyBasis indicates the spin filter removed every basis state.
	ErrEmptyBasis = errors.New("fci: empty basis")
)
