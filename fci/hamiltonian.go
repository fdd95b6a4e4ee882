// SPDX-License-Identifier: MIT

package fci

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lattice/matrix"
)

const opBuildHamiltonian = "BuildHamiltonian"

// BuildHamiltonian fills the dense k×k matrix H[i,j] = ⟨b_i|H|b_j⟩ for every
// pair of basis states.
//
// With workers > 1, rows are handed to an errgroup limited to that many
// goroutines. Each goroutine owns its rows, so the result is identical to the
// sequential build.
//
// Errors: ErrShapeMismatch when basis and integrals disagree on M; ErrEmptyBasis
// when k = 0.
//
// Complexity: O(k² · nelec) time, O(k²) space.
func BuildHamiltonian[S matrix.Scalar](b *Basis, ints *Integrals[S], workers int) (*matrix.Dense[S], error) {
	if b.Orbitals() != ints.Orbitals() {
		return nil, fmt.Errorf("%s: basis M=%d, integrals M=%d: %w", opBuildHamiltonian, b.Orbitals(), ints.Orbitals(), ErrShapeMismatch)
	}
	k := b.Len()
	if k == 0 {
		return nil, fmt.Errorf("%s: %w", opBuildHamiltonian, ErrEmptyBasis)
	}
	h, err := matrix.NewDense[S](k, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildHamiltonian, err)
	}

	fillRow := func(i int) error {
		bra := b.states[i]
		for j := 0; j < k; j++ {
			if err := h.Set(i, j, ints.Element(bra, b.states[j])); err != nil {
				return err
			}
		}
		return nil
	}

	if workers <= 1 {
		for i := 0; i < k; i++ {
			if err = fillRow(i); err != nil {
				return nil, fmt.Errorf("%s: %w", opBuildHamiltonian, err)
			}
		}
		return h, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < k; i++ {
		i := i
		g.Go(func() error { return fillRow(i) })
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildHamiltonian, err)
	}

	return h, nil
}
