// SPDX-License-Identifier: MIT

// Package matrix - cyclic max-pivot Jacobi eigen kernel for real symmetric matrices.
//
// Algorithm:
//   - Repeatedly pick the off-diagonal pivot (p,q) with the largest |A[p,q]|.
//   - Apply the Givens rotation that annihilates it, updating A symmetrically.
//   - Accumulate every rotation into Q so that A_final = Qᵀ·A·Q is diagonal.
//
// Determinism:
//   - Pivot ties resolve to the first (row-major) occurrence, so identical
//     inputs always produce identical rotations and vectors.

package matrix

import (
	"fmt"
	"math"
)

const opJacobi = "Jacobi"

// jacobiAutoRotations returns the default rotation cap for an n×n matrix.
func jacobiAutoRotations(n int) int {
	return 30*n*n + 1000
}

// jacobi diagonalizes a symmetric matrix with max-pivot Jacobi rotations.
// Eigenvalues come back in diagonal order (unsorted); callers sort.
// Returns ErrEigenFailed when maxRot rotations leave an off-diagonal above tol.
// Complexity: O(n²) per pivot search plus O(n) per rotation.
func jacobi(m *Dense[float64], tol float64, maxRot int) ([]float64, *Dense[float64], error) {
	n := m.r
	if maxRot <= 0 {
		maxRot = jacobiAutoRotations(n)
	}
	a := m.Clone()
	q := &Dense[float64]{r: n, c: n, data: make([]float64, n*n)}
	var i, j int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		rot                int
		p, r               int     // pivot indices, p < r
		maxOff, off        float64 // current max |A[p,r]|
		app, arr, apr      float64 // pivot block entries
		aip, air, qip, qir float64 // row temporaries
		theta, t, c, s     float64 // rotation parameters
	)
	for rot = 0; rot < maxRot; rot++ {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if off = math.Abs(a.data[i*n+j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		app = a.data[p*n+p]
		arr = a.data[r*n+r]
		apr = a.data[p*n+r]
		// θ = (arr − app)/(2·apr); t = sign(θ)/(|θ| + √(θ²+1))
		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < n; i++ {
			if i == p || i == r {
				continue
			}
			aip = a.data[i*n+p]
			air = a.data[i*n+r]
			a.data[i*n+p] = c*aip - s*air
			a.data[p*n+i] = a.data[i*n+p]
			a.data[i*n+r] = s*aip + c*air
			a.data[r*n+i] = a.data[i*n+r]
		}
		a.data[p*n+p] = c*c*app - 2*c*s*apr + s*s*arr
		a.data[r*n+r] = s*s*app + 2*c*s*apr + c*c*arr
		a.data[p*n+r], a.data[r*n+p] = 0, 0

		for i = 0; i < n; i++ {
			qip = q.data[i*n+p]
			qir = q.data[i*n+r]
			q.data[i*n+p] = c*qip - s*qir
			q.data[i*n+r] = s*qip + c*qir
		}
	}

	if rot == maxRot {
		maxOff = 0
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				maxOff = math.Max(maxOff, math.Abs(a.data[i*n+j]))
			}
		}
		if maxOff >= tol {
			return nil, nil, fmt.Errorf("%s: %d rotations, off-diagonal %g: %w", opJacobi, maxRot, maxOff, ErrEigenFailed)
		}
	}

	vals := make([]float64, n)
	for i = 0; i < n; i++ {
		vals[i] = a.data[i*n+i]
	}

	return vals, q, nil
}
