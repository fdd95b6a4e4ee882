// Package model implements the lattice Hamiltonians fed to the FCI engine.
//
// Every model exposes its integrals in the spin-orbital basis of M = 2·N orbitals
// for N sites: orbitals [0, N) are spin-up copies of the sites, [N, 2N) spin-down.
//
//   - Hubbard: hopping −t on every lattice bond (scaled by the bond's Scale), on-site
//     repulsion U between opposite spins. Any core.Graph topology works;
//     NewHubbard1D/2D/3D and NewHubbardGrid/Cubic are shorthands for the usual ones.
//     A twist phase φ turns the hopping complex: T[lo,hi] carries e^{iφ} and
//     T[hi,lo] carries e^{−iφ} for every bond lo < hi.
//   - Anderson: a single interacting dot between two non-interacting leads, all
//     parameters normalized by t (hopping −1 in the leads, −td/t on the two dot
//     bonds, dot repulsion 4u = U/t). Lead/gate potentials are available through
//     Potential and can be folded into the hopping matrix with IncludePotential.
//
// Two-body tensors use the physicist convention U[p,q,r,s] ↔ a†p a†q as ar and are
// NOT antisymmetrized: the on-site term is stored as
//
//	U[i, N+i, i, N+i] = U[N+i, i, N+i, i] = U[i,i,i,i] = U[N+i,N+i,N+i,N+i] = U
//
// (the same-spin entries cancel under antisymmetrization in the matrix-element rules).
package model
