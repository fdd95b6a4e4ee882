// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Add return errors instead of panicking.
//   - Serve both real (float64) and complex (complex128) Hamiltonians through one generic type.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Add: O(1); Clone: O(r*c); Col: O(r).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxAdd = "Add"
	ctxCol = "Col"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Scalar is the element type constraint shared by Dense and Tensor4.
// float64 covers untwisted lattices; complex128 carries a hopping phase twist.
type Scalar interface {
	float64 | complex128
}

// Dense is a row-major matrix of S values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense[S Scalar] struct {
	r, c int // number of rows and columns
	data []S // flat backing storage, length == r*c
}

// denseErrorf wraps a sentinel with Dense method context and coordinates.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Returns ErrInvalidDimensions when rows <= 0 or cols <= 0.
// Complexity: O(r*c) time and memory.
func NewDense[S Scalar](rows, cols int) (*Dense[S], error) {
	// Validate dimensions before allocation.
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Dense[S]{r: rows, c: cols, data: make([]S, rows*cols)}, nil
}

// NewDenseFrom creates an r×c Dense matrix holding a copy of data (row-major).
// Returns ErrInvalidDimensions for non-positive shapes and ErrDimensionMismatch
// when len(data) != rows*cols.
// Complexity: O(r*c).
func NewDenseFrom[S Scalar](rows, cols int, data []S) (*Dense[S], error) {
	m, err := NewDense[S](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d): len(data)=%d: %w", rows, cols, len(data), ErrDimensionMismatch)
	}
	copy(m.data, data)

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity[S Scalar](n int) (*Dense[S], error) {
	m, err := NewDense[S](n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense[S]) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense[S]) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense[S]) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[S]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[S]) At(row, col int) (S, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		var zero S
		return zero, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Rejects NaN/Inf components with ErrNaNInf.
// Complexity: O(1).
func (m *Dense[S]) Set(row, col int, v S) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Add accumulates v into (row, col). Lattice builders sum bond contributions
// this way, so parallel bonds add up instead of overwriting each other.
// Complexity: O(1).
func (m *Dense[S]) Add(row, col int, v S) error {
	idx, err := m.indexOf(ctxAdd, row, col)
	if err != nil {
		return err
	}
	if !isFinite(v) {
		return denseErrorf(ctxAdd, row, col, ErrNaNInf)
	}
	m.data[idx] += v

	return nil
}

// Raw exposes the row-major backing slice. Callers MUST treat it as read-only;
// it exists so inner loops (matrix-element evaluation) avoid per-access checks.
func (m *Dense[S]) Raw() []S { return m.data }

// Col returns a copy of column j.
// Complexity: O(r).
func (m *Dense[S]) Col(j int) ([]S, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]S, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(r*c).
func (m *Dense[S]) Clone() *Dense[S] {
	data := make([]S, len(m.data))
	copy(data, m.data)

	return &Dense[S]{r: m.r, c: m.c, data: data}
}

// String implements fmt.Stringer: one "[a, b, ...]" line per row, %g formatted.
// Complexity: O(r*c).
func (m *Dense[S]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Conj returns the complex conjugate of v (identity for float64).
func Conj[S Scalar](v S) S {
	if c, ok := any(v).(complex128); ok {
		return any(cmplx.Conj(c)).(S)
	}

	return v
}

// Abs returns |v| for either scalar kind.
func Abs[S Scalar](v S) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	}

	return 0
}

// isFinite reports whether every component of v is finite.
func isFinite[S Scalar](v S) bool {
	switch x := any(v).(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case complex128:
		return !cmplx.IsNaN(x) && !cmplx.IsInf(x)
	}

	return true
}
