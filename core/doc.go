// Package core provides a thread-safe in-memory lattice: a fixed set of integer
// sites joined by undirected, scaled bonds.
//
// The lattice L = (S,B) is the topology behind every tight-binding model in this
// module. A bond (a,b,scale) contributes −t·scale to the hopping matrix entries
// T[a,b] and T[b,a].
//
//   - Sites are the integers [0, SiteCount), fixed at construction.
//   - Bonds are undirected and carry a float64 Scale.
//   - Parallel bonds (WithMultiBonds) let a periodic extent-2 dimension wrap onto an
//     existing bond; their scales add up in the hopping matrix.
//   - Self-bonds (WithLoops) are off unless requested.
//   - One sync.RWMutex guards bonds and adjacency.
//
// Configuration Options (GraphOption):
//
//	– WithMultiBonds()
//	    Allows several bonds between the same pair of sites.
//	    Otherwise a second AddBond(a,b) → ErrMultiBondNotAllowed.
//
//	– WithLoops()
//	    Permits self-bonds (a == b); otherwise AddBond(a,a) → ErrLoopNotAllowed.
//
// Core Methods:
//
//	// Bond lifecycle
//	AddBond(from, to int, scale float64) (id int, err error) // O(1)†
//	RemoveBond(id int) error                                  // O(deg)
//	HasBond(a, b int) bool                                    // O(1)
//
//	// Query
//	BondsBetween(a, b int) ([]Bond, error) // ascending by ID
//	Bonds() []Bond                         // insertion order
//	Neighbors(site int) ([]int, error)     // distinct, sorted
//	AdjacencyList() [][]int                // O(V+E)
//
//	// Traversal (breadth-first)
//	Distances(site int) ([]int, error) // hop counts, −1 if unreachable
//	Components() [][]int               // by smallest site
//	Connected() bool
//
//	// Counts & degrees
//	Degree(site int) (int, error)
//	SiteCount() int
//	BondCount() int
//
//	// Maintenance & cloning
//	Clear()
//	CloneEmpty() *Graph
//	Clone() *Graph
//
// Errors:
//
//	ErrNoSites             – lattice without sites
//	ErrSiteNotFound        – site index out of range
//	ErrBondNotFound        – missing bond
//	ErrBadScale            – NaN/Inf bond scale
//	ErrLoopNotAllowed      – self-bond when loops disabled
//	ErrMultiBondNotAllowed – parallel bond when multi-bonds disabled
//
// † amortized: slice append plus map insertion.
package core
