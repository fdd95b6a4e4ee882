// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Kernels return these sentinels (optionally wrapped with %w) and tests
// check them via errors.Is. No kernel panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// never formatted at definition site; context is attached with
// fmt.Errorf("Op: ...: %w", ErrX) by the caller.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index is outside valid bounds.
	// Public indexers (At/Set/Add) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands
	// or a backing slice whose length does not match the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotHermitian signals that a matrix expected to be symmetric (real) or
	// Hermitian (complex) violated the property beyond the configured tolerance.
	ErrNotHermitian = errors.New("matrix: matrix is not hermitian within tolerance")

	// ErrNilMatrix indicates that a nil matrix or tensor was passed in.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrEigenFailed indicates that an eigensolver did not converge or could not
	// factorize the input.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrUnknownMethod indicates an unrecognized eigensolver method name.
	ErrUnknownMethod = errors.New("matrix: unknown eigen method")
)

// ErrIndexOutOfBounds historically named the same condition as ErrOutOfRange.
var ErrIndexOutOfBounds = ErrOutOfRange // Deprecated: use ErrOutOfRange.

// ErrAsymmetry aliases ErrNotHermitian for real symmetric callers.
var ErrAsymmetry = ErrNotHermitian
