// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.
//
// Purpose:
//   - Keep fixtures small and deterministic.
//   - Provide property checks (orthonormal columns, A·v = λ·v) reused by the
//     real and complex eigen tests.

package matrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

const eps = 1e-10

// MustDense builds an r×c Dense from row-major data or fails the test.
func MustDense[S matrix.Scalar](t *testing.T, r, c int, data []S) *matrix.Dense[S] {
	t.Helper()
	m, err := matrix.NewDenseFrom(r, c, data)
	require.NoError(t, err)

	return m
}

// propOrthonormal asserts Vᴴ·V = I within tol.
func propOrthonormal[S matrix.Scalar](t *testing.T, v *matrix.Dense[S], tol float64) {
	t.Helper()
	n := v.Cols()
	raw := v.Raw()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			var dot complex128
			for i := 0; i < v.Rows(); i++ {
				dot += cmplx.Conj(toC(raw[i*n+a])) * toC(raw[i*n+b])
			}
			want := complex(0, 0)
			if a == b {
				want = 1
			}
			require.InDeltaf(t, 0, cmplx.Abs(dot-want), tol, "<v%d|v%d>", a, b)
		}
	}
}

// propEigenEquation asserts ‖A·v_k − λ_k·v_k‖∞ ≤ tol for every column k.
func propEigenEquation[S matrix.Scalar](t *testing.T, a *matrix.Dense[S], vals []float64, v *matrix.Dense[S], tol float64) {
	t.Helper()
	n := a.Rows()
	ar, vr := a.Raw(), v.Raw()
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			var av complex128
			for j := 0; j < n; j++ {
				av += toC(ar[i*n+j]) * toC(vr[j*n+k])
			}
			diff := av - complex(vals[k], 0)*toC(vr[i*n+k])
			require.InDeltaf(t, 0, cmplx.Abs(diff), tol, "pair %d row %d", k, i)
		}
	}
}

func toC[S matrix.Scalar](v S) complex128 {
	switch x := any(v).(type) {
	case float64:
		return complex(x, 0)
	case complex128:
		return x
	}

	return 0
}
