// Package builder provides deterministic “functional-options”-style constructors
// for lattice topologies on top of core.Graph.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildLattice(sites, gopts, bopts, cons...): create a lattice and run constructors.
//     – Apply(g, bopts, cons...): run constructors on an existing lattice.
//   - Constructors:
//     – Chain(n):               1D chain, sites 0..n-1.
//     – Grid(rows, cols):       2D square lattice, row-major indices.
//     – Cubic(rows, cols, d):   3D simple cubic lattice, row-major indices.
//     – Neighbors(nn):          explicit nearest-neighbor list, half-bond per entry.
//   - Configuration primitives:
//     – WithBoundary(Open|Periodic), ParseBoundary("o"|"open"|"c"|"p"|"pbc"|"periodic").
//     – WithBondScale(s): multiply every emitted bond scale.
//   - NeighborList(L, b): the 1D neighbor list equivalent to Chain(L) under b.
//
// Bond convention:
//
//	A bond of scale s between a and b contributes −t·s to both T[a,b] and T[b,a].
//	Regular lattices emit scale-1 bonds. Periodic dimensions of extent 2 emit the
//	pair twice, so a two-site ring has T[0,1] = −2t, exactly like its neighbor list
//	[[1,1],[0,0]] under Neighbors.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping ErrTooFewSites, ErrSiteOutOfRange,
//     ErrUnknownBoundary, ErrBadNeighborList, ErrConstructFailed.
//   - Documented emission order per constructor, so Bonds() is reproducible.
package builder
