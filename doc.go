// Package lattice is an in-memory toolkit for building lattice models of
// interacting electrons and solving them exactly.
//
// What is lattice?
//
//	A small, thread-safe library that brings together:
//		• Lattice topology: sites & scaled bonds, chains, square grids, cubes,
//		  explicit neighbor lists, open or periodic boundaries
//		• Models: Hubbard (1D/2D/3D, twisted boundaries) and the single-impurity
//		  Anderson model, expressed as spin-orbital integrals T and U
//		• FCI: determinant basis enumeration, Slater-Condon matrix elements,
//		  parallel Hamiltonian assembly, dense symmetric/Hermitian eigensolvers
//		• A CLI (cmd/fci) driven by YAML run files, with sweeps and plots
//
// Under the hood, everything is organized into subpackages:
//
//	core/    - Graph of sites and bonds, guarded by a RW mutex
//	builder/ - deterministic lattice constructors (Chain, Grid, Cubic, Neighbors)
//	matrix/  - generic dense matrices, 4-index tensors, eigen decomposition
//	model/   - Hubbard and Anderson integrals
//	fci/     - basis, matrix elements, Hamiltonian and Solver
//	config/  - YAML run files for cmd/fci
//
// Quick ASCII example:
//
//	    0───1
//	    │   │
//	    3───2
//
//	a 4-site periodic ring: 8 spin-orbitals, C(8,4) = 70 determinants at
//	half filling, 36 of them with m_s = 0.
//
//	go get github.com/katalvlaran/lattice
package lattice
