// Package core defines the lattice Graph: a fixed set of integer sites joined by
// scaled, undirected bonds.
//
// All core APIs are guarded by a single sync.RWMutex, so builders may compose or
// query one lattice from several goroutines.
//
// This file declares Bond, Graph, GraphOption, sentinel errors, and the NewGraph
// constructor.
//
// Errors:
//
//	ErrNoSites             - a lattice needs at least one site.
//	ErrSiteNotFound        - site index outside [0, SiteCount).
//	ErrBondNotFound        - requested bond does not exist.
//	ErrBadScale            - bond scale is NaN or ±Inf.
//	ErrLoopNotAllowed      - bond from a site to itself when loops are disabled.
//	ErrMultiBondNotAllowed - parallel bond when multi-bonds are disabled.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core lattice operations.
var (
	// ErrNoSites indicates a lattice was requested with zero or negative sites.
	ErrNoSites = errors.New("core: lattice needs at least one site")

	// ErrSiteNotFound indicates an operation referenced a site outside the lattice.
	ErrSiteNotFound = errors.New("core: site not found")

	// ErrBondNotFound indicates an operation referenced a non-existent bond.
	ErrBondNotFound = errors.New("core: bond not found")

	// ErrBadScale indicates a NaN or infinite bond scale.
	ErrBadScale = errors.New("core: bond scale must be finite")

	// ErrLoopNotAllowed indicates a self-bond was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-bond not allowed")

	// ErrMultiBondNotAllowed indicates a parallel bond was attempted when multi-bonds are disabled.
	ErrMultiBondNotAllowed = errors.New("core: multi-bonds not allowed")
)

// Bond is an undirected hopping link between two sites.
//
// Scale multiplies the model's hopping amplitude on this bond: 1 for an ordinary
// bond, 0.5 for one half of a bond listed from both ends.
type Bond struct {
	// ID is the insertion index of the bond, starting at 0.
	ID int

	// From and To are the endpoint sites as added.
	From, To int

	// Scale is the dimensionless weight of the bond.
	Scale float64
}

// Other returns the endpoint opposite to site.
func (b Bond) Other(site int) int {
	if b.From == site {
		return b.To
	}

	return b.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMultiBonds permits parallel bonds between the same pair of sites.
// Periodic dimensions of extent 2 wrap onto an existing bond and need this.
func WithMultiBonds() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// WithLoops permits self-bonds (from == to).
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is the in-memory lattice.
//
// Sites are the integers [0, sites). bonds holds every bond in insertion order
// (index == Bond.ID); adjacency[a][b] lists the IDs of bonds joining a and b,
// mirrored for b→a.
type Graph struct {
	mu sync.RWMutex // guards bonds and adjacency

	// Configuration flags
	allowMulti bool
	allowLoops bool

	// Storage
	sites     int
	bonds     []Bond
	adjacency []map[int][]int
}

// NewGraph creates a lattice with the given number of isolated sites.
// By default it rejects self-bonds and parallel bonds.
// Returns ErrNoSites when sites <= 0.
// Complexity: O(sites)
func NewGraph(sites int, opts ...GraphOption) (*Graph, error) {
	if sites <= 0 {
		return nil, ErrNoSites
	}
	g := &Graph{
		sites:     sites,
		adjacency: make([]map[int][]int, sites),
	}
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int][]int)
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// SiteCount returns the number of sites.
func (g *Graph) SiteCount() int { return g.sites }

// Multigraph reports whether parallel bonds are allowed.
func (g *Graph) Multigraph() bool { return g.allowMulti }

// Looped reports whether self-bonds are allowed.
func (g *Graph) Looped() bool { return g.allowLoops }
