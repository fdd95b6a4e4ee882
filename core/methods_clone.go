// File: methods_clone.go
// Role: Cloning and clearing lattice instances.
// Determinism:
//   - Clone preserves bond IDs, including tombstoned slots, so IDs stay stable.
// Concurrency:
//   - Read lock for snapshotting; no mutation of the source graph.

package core

// CloneEmpty returns a new Graph with identical configuration and sites, but no bonds.
// Complexity: O(V)
func (g *Graph) CloneEmpty() *Graph {
	var opts []GraphOption
	if g.allowMulti {
		opts = append(opts, WithMultiBonds())
	}
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	clone, _ := NewGraph(g.sites, opts...) // sites > 0 holds for any live graph

	return clone
}

// Clone returns a deep copy of the Graph: configuration, sites, bonds, and adjacency.
// Models snapshot their lattice through Clone so later edits by the caller
// cannot change an already built Hamiltonian.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	clone := g.CloneEmpty()
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone.bonds = append([]Bond(nil), g.bonds...)
	var site, nb int
	var ids []int
	for site = range g.adjacency {
		for nb, ids = range g.adjacency[site] {
			clone.adjacency[site][nb] = append([]int(nil), ids...)
		}
	}

	return clone
}

// Clear removes every bond while preserving sites and configuration flags.
// Bond IDs restart from 0.
// Complexity: O(V)
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.bonds = nil
	for i := range g.adjacency {
		g.adjacency[i] = make(map[int][]int)
	}
}
