// SPDX-License-Identifier: MIT

package model

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/lattice/builder"
	"github.com/katalvlaran/lattice/core"
	"github.com/katalvlaran/lattice/matrix"
)

const (
	opNewHubbard   = "NewHubbard"
	opNewHubbard1D = "NewHubbard1D"
)

// Hubbard is the single-band Hubbard model on an arbitrary lattice.
//
//	H = −t Σ_{⟨ij⟩,σ} s_ij (c†iσ cjσ + h.c.) + U Σ_i n_i↑ n_i↓
//
// where s_ij is the bond scale. The lattice is snapshotted at construction.
type Hubbard struct {
	lattice *core.Graph
	t, u    float64
}

// NewHubbard builds a Hubbard model on a clone of g.
// Returns ErrBadParameter for a nil lattice or non-finite t/U.
func NewHubbard(g *core.Graph, t, U float64) (*Hubbard, error) {
	if g == nil {
		return nil, fmt.Errorf("%s: nil lattice: %w", opNewHubbard, ErrBadParameter)
	}
	if !finite(t, U) {
		return nil, fmt.Errorf("%s: t=%g U=%g: %w", opNewHubbard, t, U, ErrBadParameter)
	}

	return &Hubbard{lattice: g.Clone(), t: t, u: U}, nil
}

// NewHubbard1D builds an L-site chain. The lattice is given either by a boundary
// keyword ("o"/"open"/"c" or "p"/"pbc"/"periodic") or by an explicit neighbor
// list, never both (ErrConflictingLattice). With neither, the chain is periodic.
// A periodic chain of one site hops onto itself; an open one needs L ≥ 2.
func NewHubbard1D(L int, t, U float64, boundary string, lattice [][]int) (*Hubbard, error) {
	if boundary != "" && lattice != nil {
		return nil, fmt.Errorf("%s: %w", opNewHubbard1D, ErrConflictingLattice)
	}
	if lattice != nil {
		return newFromNeighbors(opNewHubbard1D, L, t, U, lattice)
	}

	b := builder.Periodic
	if boundary != "" {
		var err error
		if b, err = builder.ParseBoundary(boundary); err != nil {
			return nil, fmt.Errorf("%s: %w", opNewHubbard1D, err)
		}
	}
	if L == 1 && b == builder.Periodic {
		return ring1(t, U)
	}
	g, err := builder.BuildLattice(L, nil, []builder.BuilderOption{builder.WithBoundary(b)}, builder.Chain(L))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewHubbard1D, err)
	}

	return NewHubbard(g, t, U)
}

// ring1 is the one-site periodic chain: the site is its own left and right
// neighbor, so a single self-bond gives T[0,0] = −2t.
func ring1(t, U float64) (*Hubbard, error) {
	g, err := core.NewGraph(1, core.WithLoops())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNewHubbard1D, err)
	}
	if _, err = g.AddBond(0, 0, 1); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewHubbard1D, err)
	}

	return NewHubbard(g, t, U)
}

// NewHubbard2D builds an N-site two-dimensional model from an explicit neighbor list.
func NewHubbard2D(N int, t, U float64, nn [][]int) (*Hubbard, error) {
	return newFromNeighbors("NewHubbard2D", N, t, U, nn)
}

// NewHubbard3D builds an N-site three-dimensional model from an explicit neighbor list.
func NewHubbard3D(N int, t, U float64, nn [][]int) (*Hubbard, error) {
	return newFromNeighbors("NewHubbard3D", N, t, U, nn)
}

// NewHubbardGrid builds a rows×cols square-lattice model.
func NewHubbardGrid(rows, cols int, t, U float64, b builder.Boundary) (*Hubbard, error) {
	g, err := builder.BuildLattice(rows*cols, nil, []builder.BuilderOption{builder.WithBoundary(b)}, builder.Grid(rows, cols))
	if err != nil {
		return nil, fmt.Errorf("NewHubbardGrid: %w", err)
	}

	return NewHubbard(g, t, U)
}

// NewHubbardCubic builds a rows×cols×depth simple cubic model.
func NewHubbardCubic(rows, cols, depth int, t, U float64, b builder.Boundary) (*Hubbard, error) {
	g, err := builder.BuildLattice(rows*cols*depth, nil, []builder.BuilderOption{builder.WithBoundary(b)}, builder.Cubic(rows, cols, depth))
	if err != nil {
		return nil, fmt.Errorf("NewHubbardCubic: %w", err)
	}

	return NewHubbard(g, t, U)
}

func newFromNeighbors(op string, n int, t, U float64, nn [][]int) (*Hubbard, error) {
	g, err := builder.BuildLattice(n, []core.GraphOption{core.WithLoops()}, nil, builder.Neighbors(nn))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return NewHubbard(g, t, U)
}

// Sites returns the number of lattice sites N.
func (h *Hubbard) Sites() int { return h.lattice.SiteCount() }

// OrbitalCount returns the spin-orbital dimension 2N.
func (h *Hubbard) OrbitalCount() int { return 2 * h.lattice.SiteCount() }

// T returns the hopping amplitude.
func (h *Hubbard) T() float64 { return h.t }

// U returns the on-site repulsion.
func (h *Hubbard) U() float64 { return h.u }

// ReducedU returns u = U/4t (±Inf or NaN when t is zero).
func (h *Hubbard) ReducedU() float64 { return h.u / (4 * h.t) }

// Lattice returns a copy of the model's lattice.
func (h *Hubbard) Lattice() *core.Graph { return h.lattice.Clone() }

// SpatialHopping returns the N×N hopping matrix: every bond (a,b) of scale s adds
// −t·s to T[a,b] and to T[b,a] (twice to T[a,a] for a self-bond).
func (h *Hubbard) SpatialHopping() (*matrix.Dense[float64], error) {
	n := h.Sites()
	out, err := matrix.NewDense[float64](n, n)
	if err != nil {
		return nil, err
	}
	for _, b := range h.lattice.Bonds() {
		amp := -h.t * b.Scale
		if err = out.Add(b.From, b.To, amp); err != nil {
			return nil, err
		}
		if err = out.Add(b.To, b.From, amp); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SpatialTwistedHopping returns the N×N complex hopping matrix with twist phase φ:
// T[lo,hi] += −t·s·e^{iφ} and T[hi,lo] += −t·s·e^{−iφ} for each bond lo < hi.
// Self-bonds carry no phase.
func (h *Hubbard) SpatialTwistedHopping(phase float64) (*matrix.Dense[complex128], error) {
	if !finite(phase) {
		return nil, fmt.Errorf("SpatialTwistedHopping: phase=%g: %w", phase, ErrBadParameter)
	}
	n := h.Sites()
	out, err := matrix.NewDense[complex128](n, n)
	if err != nil {
		return nil, err
	}
	fwd := cmplx.Exp(complex(0, phase))
	for _, b := range h.lattice.Bonds() {
		amp := complex(-h.t*b.Scale, 0)
		lo, hi := b.From, b.To
		if lo > hi {
			lo, hi = hi, lo
		}
		if lo == hi {
			if err = out.Add(lo, lo, 2*amp); err != nil {
				return nil, err
			}
			continue
		}
		if err = out.Add(lo, hi, amp*fwd); err != nil {
			return nil, err
		}
		if err = out.Add(hi, lo, amp*cmplx.Conj(fwd)); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// SpatialInteraction returns the N⁴ spatial tensor with U at every (i,i,i,i).
func (h *Hubbard) SpatialInteraction() (*matrix.Tensor4[float64], error) {
	return spatialOnSite(h.Sites(), h.u, h.allSites()...)
}

// HoppingMatrix returns the 2N×2N spin-orbital hopping matrix diag(T, T).
func (h *Hubbard) HoppingMatrix() (*matrix.Dense[float64], error) {
	ts, err := h.SpatialHopping()
	if err != nil {
		return nil, err
	}

	return spinBlock(ts)
}

// TwistedHoppingMatrix returns the complex 2N×2N spin-orbital hopping matrix.
func (h *Hubbard) TwistedHoppingMatrix(phase float64) (*matrix.Dense[complex128], error) {
	ts, err := h.SpatialTwistedHopping(phase)
	if err != nil {
		return nil, err
	}

	return spinBlock(ts)
}

// InteractionTensor returns the (2N)⁴ spin-orbital two-body tensor.
func (h *Hubbard) InteractionTensor() (*matrix.Tensor4[float64], error) {
	return onSiteTensor(h.Sites(), h.u, h.allSites()...)
}

func (h *Hubbard) allSites() []int {
	out := make([]int, h.Sites())
	for i := range out {
		out[i] = i
	}

	return out
}
