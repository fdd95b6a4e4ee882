// File: methods_bonds.go
// Role: Bond lifecycle & queries: AddBond/RemoveBond/HasBond/BondsBetween/Bonds/BondCount.
// Determinism:
//   - Bonds() returns bonds in insertion (ID) order.
//   - BondsBetween() returns bond IDs ascending.
// Concurrency:
//   - Mutations under the write lock, queries under the read lock.

package core

import (
	"fmt"
	"math"
	"sort"
)

// AddBond joins sites from and to with a bond of the given scale and returns its ID.
//
// Steps:
//  1. Validate sites, scale, loops.
//  2. Lock, check the multi-bond constraint.
//  3. Append the bond and link adjacency both ways.
//
// Complexity: O(1) amortized.
func (g *Graph) AddBond(from, to int, scale float64) (int, error) {
	if err := g.checkSite(from); err != nil {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", from, to, err)
	}
	if err := g.checkSite(to); err != nil {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", from, to, err)
	}
	if math.IsNaN(scale) || math.IsInf(scale, 0) {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", from, to, ErrBadScale)
	}
	if from == to && !g.allowLoops {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", from, to, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti && len(g.adjacency[from][to]) > 0 {
		return -1, fmt.Errorf("AddBond(%d,%d): %w", from, to, ErrMultiBondNotAllowed)
	}

	id := len(g.bonds)
	g.bonds = append(g.bonds, Bond{ID: id, From: from, To: to, Scale: scale})
	g.adjacency[from][to] = append(g.adjacency[from][to], id)
	if from != to {
		g.adjacency[to][from] = append(g.adjacency[to][from], id)
	}

	return id, nil
}

// RemoveBond unlinks one bond. The slot keeps its ID but drops out of Bonds().
// Returns ErrBondNotFound for an unknown or already removed ID.
// Complexity: O(deg) for the adjacency bucket.
func (g *Graph) RemoveBond(id int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id < 0 || id >= len(g.bonds) || g.bonds[id].ID < 0 {
		return fmt.Errorf("RemoveBond(%d): %w", id, ErrBondNotFound)
	}
	b := g.bonds[id]
	g.adjacency[b.From][b.To] = dropID(g.adjacency[b.From][b.To], id)
	if len(g.adjacency[b.From][b.To]) == 0 {
		delete(g.adjacency[b.From], b.To)
	}
	if b.From != b.To {
		g.adjacency[b.To][b.From] = dropID(g.adjacency[b.To][b.From], id)
		if len(g.adjacency[b.To][b.From]) == 0 {
			delete(g.adjacency[b.To], b.From)
		}
	}
	g.bonds[id].ID = -1 // tombstone

	return nil
}

func dropID(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}

	return out
}

// HasBond reports whether at least one bond joins a and b (in either order).
// Out-of-range sites report false.
func (g *Graph) HasBond(a, b int) bool {
	if g.checkSite(a) != nil || g.checkSite(b) != nil {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adjacency[a][b]) > 0
}

// BondsBetween returns the bonds joining a and b, ascending by ID.
func (g *Graph) BondsBetween(a, b int) ([]Bond, error) {
	if err := g.checkSite(a); err != nil {
		return nil, fmt.Errorf("BondsBetween(%d,%d): %w", a, b, err)
	}
	if err := g.checkSite(b); err != nil {
		return nil, fmt.Errorf("BondsBetween(%d,%d): %w", a, b, err)
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := append([]int(nil), g.adjacency[a][b]...)
	sort.Ints(ids)
	out := make([]Bond, len(ids))
	for i, id := range ids {
		out[i] = g.bonds[id]
	}

	return out, nil
}

// Bonds returns a copy of all live bonds in ID order.
// Complexity: O(E)
func (g *Graph) Bonds() []Bond {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Bond, 0, len(g.bonds))
	for _, b := range g.bonds {
		if b.ID >= 0 {
			out = append(out, b)
		}
	}

	return out
}

// BondCount returns the number of live bonds.
func (g *Graph) BondCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := 0
	for _, b := range g.bonds {
		if b.ID >= 0 {
			n++
		}
	}

	return n
}

// checkSite validates a site index. The site set is fixed, so no lock is needed.
func (g *Graph) checkSite(s int) error {
	if s < 0 || s >= g.sites {
		return ErrSiteNotFound
	}

	return nil
}
