// File: methods_traverse.go
// Role: Breadth-first traversal: hop distances and connected components.
// Determinism:
//   - Neighbors are expanded in ascending order; components are listed by
//     their smallest site, each sorted ascending.

package core

import (
	"fmt"
	"sort"
)

// walker holds breadth-first state over a fixed adjacency snapshot.
type walker struct {
	adj   [][]int
	queue []int
	depth []int // −1 until reached
}

func newWalker(adj [][]int) *walker {
	w := &walker{adj: adj, queue: make([]int, 0, len(adj)), depth: make([]int, len(adj))}
	for i := range w.depth {
		w.depth[i] = -1
	}

	return w
}

// walk visits every site reachable from start, calling visit in BFS order.
func (w *walker) walk(start int, visit func(site int)) {
	w.depth[start] = 0
	w.queue = append(w.queue[:0], start)
	for len(w.queue) > 0 {
		s := w.queue[0]
		w.queue = w.queue[1:]
		visit(s)
		for _, nb := range w.adj[s] {
			if w.depth[nb] < 0 {
				w.depth[nb] = w.depth[s] + 1
				w.queue = append(w.queue, nb)
			}
		}
	}
}

// Distances returns the bond-hop distance from site to every site; unreachable
// sites report −1.
// Complexity: O(S + B).
func (g *Graph) Distances(site int) ([]int, error) {
	if err := g.checkSite(site); err != nil {
		return nil, fmt.Errorf("Distances(%d): %w", site, err)
	}
	w := newWalker(g.AdjacencyList())
	w.walk(site, func(int) {})

	return w.depth, nil
}

// Components partitions the sites into connected components.
// Complexity: O(S + B).
func (g *Graph) Components() [][]int {
	w := newWalker(g.AdjacencyList())
	var out [][]int
	for s := 0; s < g.sites; s++ {
		if w.depth[s] >= 0 {
			continue
		}
		var comp []int
		w.walk(s, func(v int) { comp = append(comp, v) })
		sort.Ints(comp)
		out = append(out, comp)
	}

	return out
}

// Connected reports whether every site is reachable from site 0.
func (g *Graph) Connected() bool {
	return len(g.Components()) <= 1
}
