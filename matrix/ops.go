// SPDX-License-Identifier: MIT

// Package matrix - structural helpers used by the lattice models and tests.
//
// Contract:
//   - Every helper allocates a fresh result; operands are never mutated.
//   - Errors are sentinels wrapped with the operation name.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opBlockDiag     = "BlockDiag"
	opConjTranspose = "ConjTranspose"
	opDistance      = "FrobeniusDistance"
)

// BlockDiag returns diag(a, b): a (ra×ca) in the top-left corner and
// b (rb×cb) in the bottom-right, zeros elsewhere.
// Spin-orbital hopping matrices are BlockDiag(t, t) of the spatial matrix.
// Complexity: O((ra+rb)*(ca+cb)).
func BlockDiag[S Scalar](a, b *Dense[S]) (*Dense[S], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%s: %w", opBlockDiag, ErrNilMatrix)
	}
	out, err := NewDense[S](a.r+b.r, a.c+b.c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBlockDiag, err)
	}
	var i int
	for i = 0; i < a.r; i++ {
		copy(out.data[i*out.c:i*out.c+a.c], a.data[i*a.c:(i+1)*a.c])
	}
	for i = 0; i < b.r; i++ {
		row := (a.r + i) * out.c
		copy(out.data[row+a.c:row+a.c+b.c], b.data[i*b.c:(i+1)*b.c])
	}

	return out, nil
}

// Complexify converts a real matrix into a complex one with zero imaginary parts.
func Complexify(m *Dense[float64]) *Dense[complex128] {
	out := &Dense[complex128]{r: m.r, c: m.c, data: make([]complex128, len(m.data))}
	for i, v := range m.data {
		out.data[i] = complex(v, 0)
	}

	return out
}

// RealPart returns the element-wise real part of a complex matrix.
func RealPart(m *Dense[complex128]) *Dense[float64] {
	out := &Dense[float64]{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	for i, v := range m.data {
		out.data[i] = real(v)
	}

	return out
}

// ConjTranspose returns Aᴴ (plain transpose for float64).
// Complexity: O(r*c).
func ConjTranspose[S Scalar](m *Dense[S]) (*Dense[S], error) {
	if m == nil {
		return nil, fmt.Errorf("%s: %w", opConjTranspose, ErrNilMatrix)
	}
	out := &Dense[S]{r: m.c, c: m.r, data: make([]S, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = Conj(m.data[i*m.c+j])
		}
	}

	return out, nil
}

// FrobeniusDistance returns ‖a − b‖_F. Shapes must match.
// Complexity: O(r*c).
func FrobeniusDistance[S Scalar](a, b *Dense[S]) (float64, error) {
	if a == nil || b == nil {
		return 0, fmt.Errorf("%s: %w", opDistance, ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return 0, fmt.Errorf("%s: %dx%d vs %dx%d: %w", opDistance, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	// Real fast path goes straight to gonum.
	if ra, ok := any(a.data).([]float64); ok {
		return floats.Distance(ra, any(b.data).([]float64), 2), nil
	}
	var sum float64
	for i := range a.data {
		d := Abs(a.data[i] - b.data[i])
		sum += d * d
	}

	return math.Sqrt(sum), nil
}

// ToGonum copies a real Dense into a gonum *mat.Dense.
func ToGonum(m *Dense[float64]) *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data)
}

// FromGonum copies any gonum mat.Matrix into a real Dense.
func FromGonum(src mat.Matrix) (*Dense[float64], error) {
	r, c := src.Dims()
	out, err := NewDense[float64](r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[i*c+j] = src.At(i, j)
		}
	}

	return out, nil
}
