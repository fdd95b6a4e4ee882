// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for shape and hermiticity checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    wrap once more with their own operation name.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Hermiticity check runs O(n²) over the upper triangle and the diagonal.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSquare ensures m is non-nil and square.
// Complexity: O(1).
func ValidateSquare[S Scalar](m *Dense[S]) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateHermitian checks |A[i,j] - conj(A[j,i])| ≤ tol for all i ≤ j.
// For float64 this is plain symmetry; for complex128 the diagonal must also be
// real within tol.
//
// Returns ErrNilMatrix/ErrNonSquare on structural issues, ErrNaNInf on a bad
// tolerance, ErrNotHermitian on violation.
// Complexity: O(n²) time, O(1) space.
func ValidateHermitian[S Scalar](m *Dense[S], tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateHermitian", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateHermitian", ErrNaNInf)
	}
	tol = math.Abs(tol)

	n := m.r
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			if Abs(m.data[i*n+j]-Conj(m.data[j*n+i])) > tol {
				return validatorErrorf("ValidateHermitian", ErrNotHermitian)
			}
		}
	}

	return nil
}

// MaxImag returns max |Im(A[i,j])| over all entries; 0 for float64 matrices.
// Used to route purely real complex inputs to the real solver.
func MaxImag[S Scalar](m *Dense[S]) float64 {
	var maxIm float64
	for _, v := range m.data {
		c, ok := any(v).(complex128)
		if !ok {
			return 0
		}
		if im := math.Abs(imag(c)); im > maxIm {
			maxIm = im
		}
	}

	return maxIm
}

// IsFiniteAll reports whether every entry of m is finite.
func IsFiniteAll[S Scalar](m *Dense[S]) bool {
	for _, v := range m.data {
		if !isFinite(v) {
			return false
		}
	}

	return true
}

// realPart returns Re(v) for either scalar kind.
func realPart[S Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float64:
		return x
	case complex128:
		return real(x)
	}

	return 0
}

// imagPart returns Im(v) (0 for float64).
func imagPart[S Scalar](v S) float64 {
	if c, ok := any(v).(complex128); ok {
		return imag(c)
	}

	return 0
}
