// SPDX-License-Identifier: MIT

// Package fci - Slater-Condon matrix elements.
//
// H = Σ T[p,q] a†p aq + ½ Σ U[p,q,r,s] a†p a†q as ar
//
// For determinants |bra⟩ and |ket⟩ with the same particle count, let
// diffBra = bra ∖ ket and diffKet = ket ∖ bra (equal sizes, ndiff):
//
//	ndiff = 0: Σ_p T[p,p] + ½ Σ_{p,q} (U[p,q,p,q] − U[p,q,q,p])
//	ndiff = 1: (T[p,q] + Σ_{x∈common} (U[p,x,q,x] − U[p,x,x,q])) · (−1)^(posBra(p) − posKet(q))
//	ndiff = 2: s1·s2 · (U[p1,p2,q1,q2] − U[p1,p2,q2,q1]),  p1<p2, q1<q2,
//	           s_k = (−1)^(posBra(p_k) − posKet(q_k))
//	ndiff ≥ 3: 0

package fci

import (
	"fmt"
	"math/bits"

	"github.com/katalvlaran/lattice/matrix"
)

const opNewIntegrals = "NewIntegrals"

// Integrals holds the one-body matrix T (M×M) and two-body tensor U (M⁴) in the
// spin-orbital basis. U is in physicist notation and not antisymmetrized.
type Integrals[S matrix.Scalar] struct {
	n int
	t []S
	u []S
}

// NewIntegrals validates shapes and captures T and U.
// Returns ErrShapeMismatch when T is not square or U's extent differs from T's,
// and ErrTooManyOrbitals when M exceeds MaxOrbitals.
func NewIntegrals[S matrix.Scalar](t *matrix.Dense[S], u *matrix.Tensor4[S]) (*Integrals[S], error) {
	if t == nil || u == nil {
		return nil, fmt.Errorf("%s: nil integrals: %w", opNewIntegrals, ErrShapeMismatch)
	}
	r, c := t.Shape()
	if r != c || u.Dim() != r {
		return nil, fmt.Errorf("%s: T %dx%d, U extent %d: %w", opNewIntegrals, r, c, u.Dim(), ErrShapeMismatch)
	}
	if r > MaxOrbitals {
		return nil, fmt.Errorf("%s: M=%d: %w", opNewIntegrals, r, ErrTooManyOrbitals)
	}

	return &Integrals[S]{
		n: r,
		t: t.Clone().Raw(),
		u: u.Clone().Raw(),
	}, nil
}

// Orbitals returns M.
func (in *Integrals[S]) Orbitals() int { return in.n }

func (in *Integrals[S]) tAt(p, q int) S { return in.t[p*in.n+q] }

func (in *Integrals[S]) uAt(p, q, r, s int) S {
	n := in.n
	return in.u[((p*n+q)*n+r)*n+s]
}

// Element returns ⟨bra|H|ket⟩.
//
// Panics when bra and ket hold different particle counts: such a pair can never
// come from one basis.
func (in *Integrals[S]) Element(bra, ket Determinant) S {
	if bra.Len() != ket.Len() {
		panic(fmt.Sprintf("fci: Element: particle counts differ (%d vs %d)", bra.Len(), ket.Len()))
	}
	common := bra.mask & ket.mask
	diffBra := bra.mask &^ ket.mask
	diffKet := ket.mask &^ bra.mask

	switch bits.OnesCount32(diffBra) {
	case 0:
		return in.diagonal(bra)
	case 1:
		p := bits.TrailingZeros32(diffBra)
		q := bits.TrailingZeros32(diffKet)
		v := in.tAt(p, q)
		for rest := common; rest != 0; rest &= rest - 1 {
			x := bits.TrailingZeros32(rest)
			v += in.uAt(p, x, q, x) - in.uAt(p, x, x, q)
		}
		return signed(v, int(bra.pos[p])-int(ket.pos[q]))
	case 2:
		p1 := bits.TrailingZeros32(diffBra)
		p2 := bits.TrailingZeros32(diffBra & (diffBra - 1))
		q1 := bits.TrailingZeros32(diffKet)
		q2 := bits.TrailingZeros32(diffKet & (diffKet - 1))
		v := in.uAt(p1, p2, q1, q2) - in.uAt(p1, p2, q2, q1)
		parity := int(bra.pos[p1]) - int(ket.pos[q1]) + int(bra.pos[p2]) - int(ket.pos[q2])
		return signed(v, parity)
	}

	return 0
}

// diagonal evaluates the ndiff = 0 rule.
func (in *Integrals[S]) diagonal(d Determinant) S {
	var one, two S
	for _, p := range d.orbs {
		one += in.tAt(p, p)
		for _, q := range d.orbs {
			two += in.uAt(p, q, p, q) - in.uAt(p, q, q, p)
		}
	}

	return one + two/2
}

// signed returns v negated when parity is odd. Zero stays +0.
func signed[S matrix.Scalar](v S, parity int) S {
	if parity&1 != 0 {
		var zero S
		return zero - v
	}

	return v
}
