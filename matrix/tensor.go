// SPDX-License-Identifier: MIT

// Package matrix - rank-4 tensor for two-body integrals.
//
// Layout: element (p,q,r,s) lives at ((p*n+q)*n+r)*n+s, i.e. row-major over
// the four indices. For n = 16 spin-orbitals that is 65536 entries.

package matrix

import "fmt"

const (
	ctxTensorAt  = "At"
	ctxTensorSet = "Set"
	ctxTensorAdd = "Add"
)

// Tensor4 is a dense n×n×n×n tensor of S values.
type Tensor4[S Scalar] struct {
	n    int
	data []S
}

// NewTensor4 allocates a zero tensor with extent n along each axis.
// Returns ErrInvalidDimensions when n <= 0.
// Complexity: O(n⁴) time and memory.
func NewTensor4[S Scalar](n int) (*Tensor4[S], error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewTensor4(%d): %w", n, ErrInvalidDimensions)
	}

	return &Tensor4[S]{n: n, data: make([]S, n*n*n*n)}, nil
}

// Dim returns the extent along each axis.
func (t *Tensor4[S]) Dim() int { return t.n }

func (t *Tensor4[S]) offset(method string, p, q, r, s int) (int, error) {
	n := t.n
	if p < 0 || p >= n || q < 0 || q >= n || r < 0 || r >= n || s < 0 || s >= n {
		return 0, fmt.Errorf("Tensor4.%s(%d,%d,%d,%d): %w", method, p, q, r, s, ErrOutOfRange)
	}

	return ((p*n+q)*n+r)*n + s, nil
}

// At returns element (p,q,r,s).
func (t *Tensor4[S]) At(p, q, r, s int) (S, error) {
	idx, err := t.offset(ctxTensorAt, p, q, r, s)
	if err != nil {
		var zero S
		return zero, err
	}

	return t.data[idx], nil
}

// Set assigns element (p,q,r,s).
func (t *Tensor4[S]) Set(p, q, r, s int, v S) error {
	idx, err := t.offset(ctxTensorSet, p, q, r, s)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return fmt.Errorf("Tensor4.%s(%d,%d,%d,%d): %w", ctxTensorSet, p, q, r, s, ErrNaNInf)
	}
	t.data[idx] = v

	return nil
}

// Add accumulates v into element (p,q,r,s).
func (t *Tensor4[S]) Add(p, q, r, s int, v S) error {
	idx, err := t.offset(ctxTensorAdd, p, q, r, s)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return fmt.Errorf("Tensor4.%s(%d,%d,%d,%d): %w", ctxTensorAdd, p, q, r, s, ErrNaNInf)
	}
	t.data[idx] += v

	return nil
}

// Raw exposes the backing slice (read-only by convention) for hot loops.
func (t *Tensor4[S]) Raw() []S { return t.data }

// Clone returns a deep copy.
func (t *Tensor4[S]) Clone() *Tensor4[S] {
	data := make([]S, len(t.data))
	copy(data, t.data)

	return &Tensor4[S]{n: t.n, data: data}
}

// Lift converts a real tensor into a complex one with zero imaginary parts.
// Used when a twisted (complex) one-body matrix is combined with real integrals.
func Lift(t *Tensor4[float64]) *Tensor4[complex128] {
	out := &Tensor4[complex128]{n: t.n, data: make([]complex128, len(t.data))}
	for i, v := range t.data {
		out.data[i] = complex(v, 0)
	}

	return out
}
