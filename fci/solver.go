// SPDX-License-Identifier: MIT

package fci

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lattice/matrix"
)

const (
	opNew          = "New"
	opSolve        = "Solve"
	opSolveTwisted = "SolveTwisted"

	opTwistedHamiltonian = "TwistedHamiltonian"
)

// Model is a lattice Hamiltonian in the spin-orbital basis.
type Model interface {
	// OrbitalCount returns the number of spin-orbitals M.
	OrbitalCount() int
	// HoppingMatrix returns the M×M one-body matrix T.
	HoppingMatrix() (*matrix.Dense[float64], error)
	// InteractionTensor returns the M⁴ two-body tensor U (not antisymmetrized).
	InteractionTensor() (*matrix.Tensor4[float64], error)
}

// TwistedModel is a Model whose hopping can carry a complex twist phase.
type TwistedModel interface {
	Model
	// TwistedHoppingMatrix returns the complex M×M one-body matrix for phase φ.
	TwistedHoppingMatrix(phase float64) (*matrix.Dense[complex128], error)
}

// Spectrum holds eigenpairs sorted by ascending energy.
// Column j of Vectors is the eigenvector for Values[j].
type Spectrum[S matrix.Scalar] struct {
	Values  []float64
	Vectors *matrix.Dense[S]
}

// Len returns the number of eigenpairs.
func (s *Spectrum[S]) Len() int { return len(s.Values) }

// GroundEnergy returns the lowest eigenvalue.
func (s *Spectrum[S]) GroundEnergy() float64 { return s.Values[0] }

// GroundState returns the eigenvector of the lowest eigenvalue, in basis order.
func (s *Spectrum[S]) GroundState() []S {
	v, _ := s.Vectors.Col(0)
	return v
}

// Solver diagonalizes one model in one (nelec, m_s) sector.
type Solver struct {
	model Model
	basis *Basis
	ints  *Integrals[float64]
	cfg   config
}

// New prepares a solver: enumerates the basis for nelec electrons (optionally
// restricted by WithSpin) and captures the model's integrals.
//
// Errors: anything NewBasis or NewIntegrals reports, plus model errors.
func New(m Model, nelec int, opts ...Option) (*Solver, error) {
	cfg := newConfig(opts...)
	norb := m.OrbitalCount()
	basis, err := NewBasis(norb, nelec, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	t, err := m.HoppingMatrix()
	if err != nil {
		return nil, fmt.Errorf("%s: hopping: %w", opNew, err)
	}
	u, err := m.InteractionTensor()
	if err != nil {
		return nil, fmt.Errorf("%s: interaction: %w", opNew, err)
	}
	ints, err := NewIntegrals(t, u)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}
	if ints.Orbitals() != norb {
		return nil, fmt.Errorf("%s: model reports M=%d, integrals M=%d: %w", opNew, norb, ints.Orbitals(), ErrShapeMismatch)
	}

	cfg.logger.Debug("fci basis ready",
		"orbitals", norb, "electrons", nelec, "states", basis.Len())

	return &Solver{model: m, basis: basis, ints: ints, cfg: cfg}, nil
}

// Basis returns the enumerated basis.
func (s *Solver) Basis() *Basis { return s.basis }

// RenderBasis returns the basis in its textual form (see Basis.Render).
func (s *Solver) RenderBasis() string { return s.basis.Render() }

// Hamiltonian builds the real k×k Hamiltonian.
func (s *Solver) Hamiltonian() (*matrix.Dense[float64], error) {
	return buildLogged(s, s.ints)
}

// TwistedHamiltonian builds the complex Hamiltonian for twist phase φ.
// Returns ErrTwistUnsupported when the model has no twisted hopping.
func (s *Solver) TwistedHamiltonian(phase float64) (*matrix.Dense[complex128], error) {
	tm, ok := s.model.(TwistedModel)
	if !ok {
		return nil, fmt.Errorf("%s: %w", opTwistedHamiltonian, ErrTwistUnsupported)
	}
	t, err := tm.TwistedHoppingMatrix(phase)
	if err != nil {
		return nil, fmt.Errorf("%s: hopping: %w", opTwistedHamiltonian, err)
	}
	u, err := s.model.InteractionTensor()
	if err != nil {
		return nil, fmt.Errorf("%s: interaction: %w", opTwistedHamiltonian, err)
	}
	ints, err := NewIntegrals(t, matrix.Lift(u))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTwistedHamiltonian, err)
	}
	h, err := buildLogged(s, ints)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTwistedHamiltonian, err)
	}

	return h, nil
}

// buildLogged wraps BuildHamiltonian with a debug timing line.
func buildLogged[S matrix.Scalar](s *Solver, ints *Integrals[S]) (*matrix.Dense[S], error) {
	start := time.Now()
	h, err := BuildHamiltonian(s.basis, ints, s.cfg.workers)
	if err != nil {
		return nil, err
	}
	s.cfg.logger.Debug("fci hamiltonian built",
		"states", s.basis.Len(), "workers", s.cfg.workers, "elapsed", time.Since(start))

	return h, nil
}

// Solve builds the real Hamiltonian and returns its full spectrum.
// Returns ErrEmptyBasis when the spin filter left no states.
func (s *Solver) Solve() (*Spectrum[float64], error) {
	h, err := s.Hamiltonian()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	vals, vecs, err := matrix.EigenSym(h, matrix.WithMethod(s.cfg.method))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	s.logSolved(opSolve, vals)

	return &Spectrum[float64]{Values: vals, Vectors: vecs}, nil
}

// SolveTwisted builds the complex Hamiltonian for twist phase φ and returns its
// full spectrum. Eigenvalues are real since H is Hermitian.
func (s *Solver) SolveTwisted(phase float64) (*Spectrum[complex128], error) {
	h, err := s.TwistedHamiltonian(phase)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveTwisted, err)
	}
	vals, vecs, err := matrix.EigenHermitian(h, matrix.WithMethod(s.cfg.method))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolveTwisted, err)
	}
	s.logSolved(opSolveTwisted, vals, slog.Float64("phase", phase))

	return &Spectrum[complex128]{Values: vals, Vectors: vecs}, nil
}

func (s *Solver) logSolved(op string, vals []float64, extra ...any) {
	args := append([]any{"op", op, "method", s.cfg.method.String(), "ground", vals[0]}, extra...)
	s.cfg.logger.Debug("fci spectrum ready", args...)
}
