// Package matrix provides the dense numeric containers and spectral kernels
// used to assemble and diagonalize lattice Hamiltonians.
//
// The matrix package provides:
//
//   - Dense[S]: a row-major matrix over float64 or complex128 with bounds-checked
//     At/Set/Add, raw read access for hot loops, Clone and String.
//   - Tensor4[S]: an n⁴ row-major tensor for two-body interaction integrals.
//   - BlockDiag, Complexify, Lift, ConjTranspose and FrobeniusDistance helpers.
//   - EigenSym (real symmetric) and EigenHermitian (complex Hermitian) solvers
//     backed by gonum LAPACK or by a deterministic Jacobi rotation kernel.
//
// Dense storage is best for the small systems targeted here: O(n²) memory and
// O(n³) diagonalization are acceptable up to a few thousand rows.
//
// See the examples in this package and in fci for usage patterns.
package matrix
