// SPDX-License-Identifier: MIT

// Package matrix - spectral decomposition of symmetric and Hermitian matrices.
//
// Contract:
//   - Eigenvalues are returned in ascending order; column j of the eigenvector
//     matrix belongs to eigenvalue j.
//   - Real symmetric inputs are solved directly (LAPACK via gonum, or Jacobi).
//   - Complex Hermitian inputs H = A + iB are solved through the real symmetric
//     embedding E = [[A, −B], [B, A]] of size 2n. Every eigenvalue of H appears
//     twice in E; complex eigenvectors x+iy are recovered from E's vectors [x; y]
//     with a pivoted complex Gram-Schmidt pass.
//
// Complexity:
//   - Real: O(n³). Complex: O((2n)³) for E plus O(n³) for the recovery pass.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	opEigenSym       = "EigenSym"
	opEigenHermitian = "EigenHermitian"
)

// Method selects the eigensolver kernel.
type Method int

const (
	// MethodLAPACK uses gonum's mat.EigenSym (LAPACK dsyev).
	MethodLAPACK Method = iota
	// MethodJacobi uses the deterministic max-pivot Jacobi rotation kernel.
	MethodJacobi
)

// String returns the canonical lowercase method name.
func (m Method) String() string {
	switch m {
	case MethodLAPACK:
		return "lapack"
	case MethodJacobi:
		return "jacobi"
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod maps "lapack" / "jacobi" (case-insensitive) to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lapack":
		return MethodLAPACK, nil
	case "jacobi":
		return MethodJacobi, nil
	}

	return MethodLAPACK, fmt.Errorf("ParseMethod(%q): %w", s, ErrUnknownMethod)
}

// Defaults for the eigen kernels.
const (
	// DefaultHermitianTol bounds |A[i,j] − conj(A[j,i])| accepted on input.
	DefaultHermitianTol = 1e-9

	// DefaultJacobiTol is the off-diagonal magnitude at which Jacobi stops.
	DefaultJacobiTol = 1e-12
)

const (
	panicTolInvalid       = "matrix: WithJacobiTolerance: tol must be finite and > 0"
	panicHermTolInvalid   = "matrix: WithHermitianTolerance: tol must be finite and >= 0"
	panicRotationsInvalid = "matrix: WithMaxRotations: n must be >= 1"
	panicMethodInvalid    = "matrix: WithMethod: unknown method"
)

// EigenOption customizes an eigen decomposition.
type EigenOption func(*eigenConfig)

type eigenConfig struct {
	method       Method
	hermitianTol float64
	jacobiTol    float64
	maxRotations int // 0 ⇒ derived from n
}

func newEigenConfig(opts ...EigenOption) eigenConfig {
	cfg := eigenConfig{
		method:       MethodLAPACK,
		hermitianTol: DefaultHermitianTol,
		jacobiTol:    DefaultJacobiTol,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithMethod selects the kernel. Panics on an unknown method.
func WithMethod(m Method) EigenOption {
	if m != MethodLAPACK && m != MethodJacobi {
		panic(panicMethodInvalid)
	}
	return func(c *eigenConfig) { c.method = m }
}

// WithHermitianTolerance sets the input symmetry/hermiticity tolerance.
func WithHermitianTolerance(tol float64) EigenOption {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicHermTolInvalid)
	}
	return func(c *eigenConfig) { c.hermitianTol = tol }
}

// WithJacobiTolerance sets the Jacobi convergence threshold.
func WithJacobiTolerance(tol float64) EigenOption {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicTolInvalid)
	}
	return func(c *eigenConfig) { c.jacobiTol = tol }
}

// WithMaxRotations caps the number of Jacobi rotations.
func WithMaxRotations(n int) EigenOption {
	if n < 1 {
		panic(panicRotationsInvalid)
	}
	return func(c *eigenConfig) { c.maxRotations = n }
}

// EigenSym computes all eigenpairs of a real symmetric matrix.
//
// Implementation:
//   - Stage 1: ValidateHermitian within the configured tolerance.
//   - Stage 2: Run the selected kernel (gonum LAPACK or Jacobi).
//   - Stage 3: Sort eigenpairs ascending (columns permuted alongside).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian (validation).
//   - ErrEigenFailed (LAPACK factorization failure or Jacobi non-convergence).
//
// Complexity: O(n³) time, O(n²) space.
func EigenSym(m *Dense[float64], opts ...EigenOption) ([]float64, *Dense[float64], error) {
	cfg := newEigenConfig(opts...)
	if err := ValidateHermitian(m, cfg.hermitianTol); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigenSym, err)
	}

	vals, vecs, err := eigenSymKernel(m, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigenSym, err)
	}
	sortEigenpairs(vals, vecs)

	return vals, vecs, nil
}

// eigenSymKernel dispatches to the configured kernel without validation.
func eigenSymKernel(m *Dense[float64], cfg eigenConfig) ([]float64, *Dense[float64], error) {
	if cfg.method == MethodJacobi {
		return jacobi(m, cfg.jacobiTol, cfg.maxRotations)
	}

	return lapackSym(m)
}

// lapackSym factorizes through gonum's EigenSym. Only the upper triangle is read.
func lapackSym(m *Dense[float64]) ([]float64, *Dense[float64], error) {
	n := m.r
	data := make([]float64, len(m.data))
	copy(data, m.data)
	sym := mat.NewSymDense(n, data)

	var es mat.EigenSym
	if ok := es.Factorize(sym, true); !ok {
		return nil, nil, ErrEigenFailed
	}
	vals := es.Values(nil)

	var ev mat.Dense
	es.VectorsTo(&ev)
	vecs, err := FromGonum(&ev)
	if err != nil {
		return nil, nil, err
	}

	return vals, vecs, nil
}

// sortEigenpairs orders vals ascending and permutes the columns of vecs to match.
func sortEigenpairs(vals []float64, vecs *Dense[float64]) {
	n := len(vals)
	inds := make([]int, n)
	floats.Argsort(vals, inds) // vals sorted in place; inds[i] = original position

	perm := make([]float64, len(vecs.data))
	var i, j int
	for i = 0; i < vecs.r; i++ {
		for j = 0; j < n; j++ {
			perm[i*n+j] = vecs.data[i*n+inds[j]]
		}
	}
	copy(vecs.data, perm)
}

// EigenHermitian computes all eigenpairs of a complex Hermitian matrix.
//
// Implementation:
//   - Stage 1: ValidateHermitian within tolerance.
//   - Stage 2: If every imaginary part is zero, solve the real part directly and
//     lift the vectors to complex128.
//   - Stage 3: Otherwise build E = [[A, −B], [B, A]], solve it with the selected
//     kernel, and recover n orthonormal complex eigenvectors.
//
// Errors: as EigenSym.
// Complexity: O((2n)³) time, O((2n)²) space.
func EigenHermitian(m *Dense[complex128], opts ...EigenOption) ([]float64, *Dense[complex128], error) {
	cfg := newEigenConfig(opts...)
	if err := ValidateHermitian(m, cfg.hermitianTol); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigenHermitian, err)
	}

	if MaxImag(m) == 0 {
		vals, vecs, err := eigenSymKernel(RealPart(m), cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", opEigenHermitian, err)
		}
		sortEigenpairs(vals, vecs)
		return vals, Complexify(vecs), nil
	}

	n := m.r
	emb := embedHermitian(m)
	evals, evecs, err := eigenSymKernel(emb, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", opEigenHermitian, err)
	}
	sortEigenpairs(evals, evecs)

	vals, vecs := recoverComplex(n, evals, evecs)

	return vals, vecs, nil
}

// embedHermitian builds the 2n×2n real symmetric matrix [[A, −B], [B, A]].
func embedHermitian(m *Dense[complex128]) *Dense[float64] {
	n := m.r
	size := 2 * n
	out := &Dense[float64]{r: size, c: size, data: make([]float64, size*size)}
	var i, j int
	var a, b float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			a = real(m.data[i*n+j])
			b = imag(m.data[i*n+j])
			out.data[i*size+j] = a
			out.data[i*size+n+j] = -b
			out.data[(n+i)*size+j] = b
			out.data[(n+i)*size+n+j] = a
		}
	}

	return out
}

// recoverComplex turns the 2n real eigenpairs of the embedding into n complex
// eigenpairs of the Hermitian matrix.
//
// Each candidate column [x; y] maps to z = x + iy. Candidates are accepted by
// pivoted Gram-Schmidt: every round picks the remaining candidate with the
// largest residual norm, normalizes it and projects it out of the others. The
// partner [−y; x] of an accepted vector maps to i·z and drops to a zero residual,
// so exactly n candidates survive. Results are re-sorted by eigenvalue.
func recoverComplex(n int, evals []float64, evecs *Dense[float64]) ([]float64, *Dense[complex128]) {
	size := 2 * n
	cands := make([][]complex128, size)
	var i, j, k int
	for j = 0; j < size; j++ {
		z := make([]complex128, n)
		for i = 0; i < n; i++ {
			z[i] = complex(evecs.data[i*size+j], evecs.data[(n+i)*size+j])
		}
		cands[j] = z
	}

	used := make([]bool, size)
	picked := make([]int, 0, n)
	accepted := make([][]complex128, 0, n)
	for k = 0; k < n; k++ {
		best, bestNorm := -1, -1.0
		for j = 0; j < size; j++ {
			if used[j] {
				continue
			}
			if nrm := cnorm(cands[j]); nrm > bestNorm {
				best, bestNorm = j, nrm
			}
		}
		used[best] = true
		q := cands[best]
		cscale(q, complex(1/bestNorm, 0))
		accepted = append(accepted, q)
		picked = append(picked, best)
		// Project q out of every remaining candidate.
		for j = 0; j < size; j++ {
			if used[j] {
				continue
			}
			caxpy(cands[j], -cdot(q, cands[j]), q)
		}
	}

	vals := make([]float64, n)
	for k = 0; k < n; k++ {
		vals[k] = evals[picked[k]]
	}
	inds := make([]int, n)
	floats.Argsort(vals, inds)

	vecs := &Dense[complex128]{r: n, c: n, data: make([]complex128, n*n)}
	for k = 0; k < n; k++ {
		col := accepted[inds[k]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+k] = col[i]
		}
	}

	return vals, vecs
}

// cdot returns the Hermitian inner product ⟨a|b⟩ = Σ conj(a_i)·b_i.
func cdot(a, b []complex128) complex128 {
	var s complex128
	for i := range a {
		s += cmplx.Conj(a[i]) * b[i]
	}

	return s
}

// cnorm returns ‖a‖₂.
func cnorm(a []complex128) float64 {
	var s float64
	for _, v := range a {
		s += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(s)
}

// cscale performs a ← alpha·a in place.
func cscale(a []complex128, alpha complex128) {
	for i := range a {
		a[i] *= alpha
	}
}

// caxpy performs y ← y + alpha·x in place.
func caxpy(y []complex128, alpha complex128, x []complex128) {
	for i := range y {
		y[i] += alpha * x[i]
	}
}
