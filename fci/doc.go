// SPDX-License-Identifier: MIT

// Package fci is a dense full configuration interaction (exact diagonalization)
// engine for second-quantized lattice Hamiltonians.
//
// A calculation has three stages:
//
//  1. NewBasis enumerates every Slater determinant with nelec electrons in M
//     spin-orbitals, lexicographically, optionally restricted to one spin
//     projection m_s (WithSpin). Spin-orbitals [0, M/2) are spin-up and
//     [M/2, M) are spin-down.
//  2. BuildHamiltonian evaluates ⟨b_i|H|b_j⟩ for every basis pair with the
//     Slater-Condon rules (see Integrals.Element), optionally across a bounded
//     pool of goroutines (WithWorkers).
//  3. Solver.Solve / Solver.SolveTwisted diagonalize the dense matrix through
//     matrix.EigenSym / matrix.EigenHermitian and return a Spectrum sorted by
//     energy.
//
// Example:
//
//	h, _ := model.NewHubbard1D(2, 1, 1, "o", nil)
//	s, _ := fci.New(h, 2)
//	spec, _ := s.Solve()
//	fmt.Println(spec.GroundEnergy()) // ≈ −1.561553
//
// Limits: M ≤ MaxOrbitals (16), so occupations fit a uint32 bitmask. The basis
// grows as C(M, nelec) and the Hamiltonian as its square.
package fci
