// SPDX-License-Identifier: MIT

package model

import (
	"fmt"

	"github.com/katalvlaran/lattice/builder"
	"github.com/katalvlaran/lattice/core"
	"github.com/katalvlaran/lattice/matrix"
)

const opNewAnderson = "NewAnderson"

// AndersonOption customizes an Anderson model.
type AndersonOption func(*Anderson)

// IncludePotential folds the lead/gate potential into HoppingMatrix, so the FCI
// engine sees T + V as its one-body operator.
func IncludePotential() AndersonOption {
	return func(a *Anderson) { a.includePotential = true }
}

// Anderson is the single-impurity Anderson model: a left lead of ll sites, one
// interacting dot, and a right lead of lr sites on an open chain. The dot sits at
// site ll. All integrals are normalized by the lead hopping t.
type Anderson struct {
	ll, lr           int
	t, td            float64
	bigU, bigV, vg   float64
	includePotential bool
	lattice          *core.Graph
}

// NewAnderson builds the model.
//
//	ll, lr : lead lengths (≥ 0)
//	t      : lead hopping (normalizes everything, must be non-zero)
//	td     : dot–lead hopping
//	U      : dot repulsion
//	V      : bias potential (+V/2 on the left lead, −V/2 on the right)
//	Vg     : gate voltage on the dot
//
// Returns ErrBadParameter on negative lead lengths, t == 0, or non-finite values.
func NewAnderson(ll, lr int, t, td, U, V, Vg float64, opts ...AndersonOption) (*Anderson, error) {
	if ll < 0 || lr < 0 {
		return nil, fmt.Errorf("%s: leads %d/%d: %w", opNewAnderson, ll, lr, ErrBadParameter)
	}
	if !finite(t, td, U, V, Vg) || t == 0 {
		return nil, fmt.Errorf("%s: t=%g td=%g U=%g V=%g Vg=%g: %w", opNewAnderson, t, td, U, V, Vg, ErrBadParameter)
	}

	n := ll + lr + 1
	var (
		g   *core.Graph
		err error
	)
	if n >= 2 {
		g, err = builder.BuildLattice(n, nil, nil, builder.Chain(n))
	} else {
		g, err = core.NewGraph(n)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewAnderson, err)
	}

	a := &Anderson{ll: ll, lr: lr, t: t, td: td, bigU: U, bigV: V, vg: Vg, lattice: g}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Sites returns ll + lr + 1.
func (a *Anderson) Sites() int { return a.ll + a.lr + 1 }

// Lattice returns a copy of the lead-dot-lead chain.
func (a *Anderson) Lattice() *core.Graph { return a.lattice.Clone() }

// Dot returns the site index of the impurity.
func (a *Anderson) Dot() int { return a.ll }

// OrbitalCount returns the spin-orbital dimension 2(ll + lr + 1).
func (a *Anderson) OrbitalCount() int { return 2 * a.Sites() }

// DotCoupling returns td/t.
func (a *Anderson) DotCoupling() float64 { return a.td / a.t }

// ReducedU returns u = U/4t.
func (a *Anderson) ReducedU() float64 { return a.bigU / (4 * a.t) }

// NormalizedV returns v = V/t.
func (a *Anderson) NormalizedV() float64 { return a.bigV / a.t }

// NormalizedVg returns vg = Vg/t.
func (a *Anderson) NormalizedVg() float64 { return a.vg / a.t }

// SpatialHopping returns the N×N normalized hopping matrix: −1 on lead bonds and
// −td/t on the two bonds touching the dot.
func (a *Anderson) SpatialHopping() (*matrix.Dense[float64], error) {
	n := a.Sites()
	out, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, err
	}
	dot := a.Dot()
	tdr := a.DotCoupling()
	for _, b := range a.lattice.Bonds() {
		amp := -b.Scale
		if b.From == dot || b.To == dot {
			amp *= tdr
		}
		if err = out.Add(b.From, b.To, amp); err != nil {
			return nil, err
		}
		if err = out.Add(b.To, b.From, amp); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SpatialPotential returns the N×N diagonal potential: v/2 on the left lead, vg on
// the dot, −v/2 on the right lead.
func (a *Anderson) SpatialPotential() (*matrix.Dense[float64], error) {
	n := a.Sites()
	out, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, err
	}
	v := a.NormalizedV()
	for i := 0; i < n; i++ {
		var d float64
		switch {
		case i < a.ll:
			d = v / 2
		case i == a.ll:
			d = a.NormalizedVg()
		default:
			d = -v / 2
		}
		if err = out.Set(i, i, d); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Potential returns the 2N×2N spin-orbital potential diag(V, V).
func (a *Anderson) Potential() (*matrix.Dense[float64], error) {
	vs, err := a.SpatialPotential()
	if err != nil {
		return nil, err
	}

	return spinBlock(vs)
}

// SpatialInteraction returns the N⁴ spatial tensor with 4u at (dot,dot,dot,dot).
func (a *Anderson) SpatialInteraction() (*matrix.Tensor4[float64], error) {
	return spatialOnSite(a.Sites(), 4*a.ReducedU(), a.Dot())
}

// HoppingMatrix returns the 2N×2N spin-orbital one-body matrix diag(T, T), plus
// the potential when the model was built with IncludePotential.
func (a *Anderson) HoppingMatrix() (*matrix.Dense[float64], error) {
	ts, err := a.SpatialHopping()
	if err != nil {
		return nil, err
	}
	if a.includePotential {
		vs, err := a.SpatialPotential()
		if err != nil {
			return nil, err
		}
		var d float64
		for i := 0; i < a.Sites(); i++ {
			if d, err = vs.At(i, i); err != nil {
				return nil, err
			}
			if err = ts.Add(i, i, d); err != nil {
				return nil, err
			}
		}
	}

	return spinBlock(ts)
}

// InteractionTensor returns the (2N)⁴ spin-orbital tensor with 4u on the dot.
func (a *Anderson) InteractionTensor() (*matrix.Tensor4[float64], error) {
	return onSiteTensor(a.Sites(), 4*a.ReducedU(), a.Dot())
}
