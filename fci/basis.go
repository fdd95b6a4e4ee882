// SPDX-License-Identifier: MIT

package fci

import (
	"fmt"
	"strconv"
	"strings"
)

const opNewBasis = "NewBasis"

// Basis is the ordered, immutable list of determinants spanning the FCI space:
// every way to place nelec electrons in norb spin-orbitals, in lexicographic
// order, optionally restricted to one m_s sector.
type Basis struct {
	norb   int
	nelec  int
	spin   *int
	states []Determinant
	index  map[uint32]int
}

// NewBasis enumerates the basis. Only the WithSpin option is consulted.
//
// Errors:
//   - ErrBadOrbitalCount when norb ≤ 0.
//   - ErrTooManyOrbitals when norb > MaxOrbitals.
//   - ErrBadParticleCount when nelec < 0 or nelec > norb.
//
// Complexity: O(C(norb, nelec) · nelec).
func NewBasis(norb, nelec int, opts ...Option) (*Basis, error) {
	if norb <= 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewBasis, norb, nelec, ErrBadOrbitalCount)
	}
	if norb > MaxOrbitals {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewBasis, norb, nelec, ErrTooManyOrbitals)
	}
	if nelec < 0 || nelec > norb {
		return nil, fmt.Errorf("%s(%d,%d): %w", opNewBasis, norb, nelec, ErrBadParticleCount)
	}
	cfg := newConfig(opts...)

	b := &Basis{norb: norb, nelec: nelec, spin: cfg.spin, index: make(map[uint32]int)}
	combinations(norb, nelec, func(orbs []int) {
		d := newDeterminant(orbs)
		if b.spin != nil && d.Spin(norb) != *b.spin {
			return
		}
		b.index[d.mask] = len(b.states)
		b.states = append(b.states, d)
	})

	return b, nil
}

// combinations calls visit with every k-subset of {0..n-1} in lexicographic
// order. Each slice passed to visit is freshly allocated.
func combinations(n, k int, visit func([]int)) {
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		visit(append([]int(nil), idx...))
		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Len returns the number of determinants k.
func (b *Basis) Len() int { return len(b.states) }

// At returns determinant i. Panics when i is out of range, like slice indexing.
func (b *Basis) At(i int) Determinant { return b.states[i] }

// States returns a copy of the determinant list.
func (b *Basis) States() []Determinant { return append([]Determinant(nil), b.states...) }

// Orbitals returns the spin-orbital count M.
func (b *Basis) Orbitals() int { return b.norb }

// Electrons returns the particle count.
func (b *Basis) Electrons() int { return b.nelec }

// Spin returns the m_s filter and whether one is set.
func (b *Basis) Spin() (int, bool) {
	if b.spin == nil {
		return 0, false
	}

	return *b.spin, true
}

// Index returns the position of a determinant with the same occupation, if present.
func (b *Basis) Index(d Determinant) (int, bool) {
	i, ok := b.index[d.mask]
	return i, ok
}

// Render returns one line per determinant: "|i1 i2 ...> m_s = v".
// An empty determinant renders as "|> m_s = 0".
func (b *Basis) Render() string {
	var sb strings.Builder
	for _, d := range b.states {
		sb.WriteString(d.String())
		sb.WriteString(" m_s = ")
		sb.WriteString(strconv.Itoa(d.Spin(b.norb)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (b *Basis) String() string { return b.Render() }
