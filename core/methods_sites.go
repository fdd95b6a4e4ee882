// File: methods_sites.go
// Role: Per-site queries: Neighbors/Degree/AdjacencyList.
// Determinism:
//   - Neighbor lists are sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the distinct sites bonded to site, ascending.
// A self-bond lists the site itself.
// Complexity: O(d log d) for d distinct neighbors.
func (g *Graph) Neighbors(site int) ([]int, error) {
	if err := g.checkSite(site); err != nil {
		return nil, fmt.Errorf("Neighbors(%d): %w", site, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]int, 0, len(g.adjacency[site]))
	for nb := range g.adjacency[site] {
		out = append(out, nb)
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of bond ends at site (parallel bonds count separately,
// a self-bond counts twice).
func (g *Graph) Degree(site int) (int, error) {
	if err := g.checkSite(site); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", site, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	d := 0
	for nb, ids := range g.adjacency[site] {
		d += len(ids)
		if nb == site {
			d += len(ids)
		}
	}

	return d, nil
}

// AdjacencyList returns site → sorted distinct neighbors for every site.
func (g *Graph) AdjacencyList() [][]int {
	out := make([][]int, g.sites)
	for s := 0; s < g.sites; s++ {
		out[s], _ = g.Neighbors(s)
	}

	return out
}
