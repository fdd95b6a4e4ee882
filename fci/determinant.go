// SPDX-License-Identifier: MIT

package fci

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaxOrbitals is the largest spin-orbital count the engine accepts.
const MaxOrbitals = 16

// Determinant is one Slater determinant: a strictly increasing list of occupied
// spin-orbitals. The occupation is mirrored in a bitmask for set algebra and in a
// position table for O(1) fermionic sign lookups.
type Determinant struct {
	orbs []int
	mask uint32
	pos  [MaxOrbitals]int8 // pos[p] = index of p in orbs, −1 when p is empty
}

// newDeterminant wraps a strictly increasing orbital list. Callers guarantee
// ordering and range.
func newDeterminant(orbs []int) Determinant {
	d := Determinant{orbs: orbs}
	for i := range d.pos {
		d.pos[i] = -1
	}
	for i, p := range orbs {
		d.mask |= 1 << uint(p)
		d.pos[p] = int8(i)
	}

	return d
}

// Orbitals returns a copy of the occupied orbitals, ascending.
func (d Determinant) Orbitals() []int { return append([]int(nil), d.orbs...) }

// Len returns the number of electrons.
func (d Determinant) Len() int { return len(d.orbs) }

// Mask returns the occupation bitmask (bit p set ⇔ orbital p occupied).
func (d Determinant) Mask() uint32 { return d.mask }

// Occupied reports whether orbital p is occupied.
func (d Determinant) Occupied(p int) bool {
	return p >= 0 && p < MaxOrbitals && d.pos[p] >= 0
}

// Position returns the index of orbital p within the occupied list, or −1.
func (d Determinant) Position(p int) int {
	if p < 0 || p >= MaxOrbitals {
		return -1
	}

	return int(d.pos[p])
}

// Spin returns m_s = #(orbitals < norb/2) − #(orbitals ≥ norb/2).
func (d Determinant) Spin(norb int) int {
	up := uint32(1)<<uint(norb/2) - 1
	return bits.OnesCount32(d.mask&up) - bits.OnesCount32(d.mask&^up)
}

// String renders the determinant as "|i1 i2 ...>".
func (d Determinant) String() string {
	var b strings.Builder
	b.WriteByte('|')
	for i, p := range d.orbs {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte('>')

	return b.String()
}
