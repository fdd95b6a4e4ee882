package fci_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/fci"
	"github.com/katalvlaran/lattice/matrix"
	"github.com/katalvlaran/lattice/model"
)

// hubbardIntegrals returns the integrals of an L-site Hubbard chain.
func hubbardIntegrals(t *testing.T, L int, boundary string) *fci.Integrals[float64] {
	t.Helper()
	h, err := model.NewHubbard1D(L, 1, 1, boundary, nil)
	require.NoError(t, err)
	ts, err := h.HoppingMatrix()
	require.NoError(t, err)
	us, err := h.InteractionTensor()
	require.NoError(t, err)
	ints, err := fci.NewIntegrals(ts, us)
	require.NoError(t, err)

	return ints
}

func TestBuildHamiltonian_TwoSiteElements(t *testing.T) {
	t.Parallel()
	ints := hubbardIntegrals(t, 2, "o")
	b, err := fci.NewBasis(4, 2, fci.WithSpin(0))
	require.NoError(t, err)

	h, err := fci.BuildHamiltonian(b, ints, 1)
	require.NoError(t, err)

	// basis: |0 2>, |0 3>, |1 2>, |1 3>
	want, err := matrix.NewDenseFrom(4, 4, []float64{
		1, -1, -1, 0,
		-1, 0, 0, -1,
		-1, 0, 0, -1,
		0, -1, -1, 1,
	})
	require.NoError(t, err)
	d, err := matrix.FrobeniusDistance(want, h)
	require.NoError(t, err)
	assert.Less(t, d, 1e-14, "got\n%s", h)
}

func TestBuildHamiltonian_Hermitian(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		L, nelec int
		boundary string
	}{
		{"4-site open half filling", 4, 4, "o"},
		{"4-site periodic three electrons", 4, 3, "p"},
		{"3-site periodic", 3, 3, "p"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ints := hubbardIntegrals(t, tc.L, tc.boundary)
			b, err := fci.NewBasis(2*tc.L, tc.nelec)
			require.NoError(t, err)
			h, err := fci.BuildHamiltonian(b, ints, 1)
			require.NoError(t, err)
			require.NoError(t, matrix.ValidateHermitian(h, 1e-14))
		})
	}
}

func TestBuildHamiltonian_ParallelMatchesSequential(t *testing.T) {
	t.Parallel()
	ints := hubbardIntegrals(t, 5, "p")
	b, err := fci.NewBasis(10, 5)
	require.NoError(t, err)

	seq, err := fci.BuildHamiltonian(b, ints, 1)
	require.NoError(t, err)
	for _, w := range []int{2, 4, 16} {
		par, err := fci.BuildHamiltonian(b, ints, w)
		require.NoError(t, err)
		assert.Equal(t, seq.Raw(), par.Raw(), "workers=%d", w)
	}
}

func TestBuildHamiltonian_Errors(t *testing.T) {
	t.Parallel()
	ints := hubbardIntegrals(t, 2, "o")

	empty, err := fci.NewBasis(4, 2, fci.WithSpin(4))
	require.NoError(t, err)
	_, err = fci.BuildHamiltonian(empty, ints, 1)
	require.ErrorIs(t, err, fci.ErrEmptyBasis)

	wide, err := fci.NewBasis(6, 2)
	require.NoError(t, err)
	_, err = fci.BuildHamiltonian(wide, ints, 1)
	require.ErrorIs(t, err, fci.ErrShapeMismatch)
}

func TestNewIntegrals_Errors(t *testing.T) {
	t.Parallel()
	t4, err := matrix.NewDense[float64](4, 4)
	require.NoError(t, err)
	u6, err := matrix.NewTensor4[float64](6)
	require.NoError(t, err)
	_, err = fci.NewIntegrals(t4, u6)
	require.ErrorIs(t, err, fci.ErrShapeMismatch)

	_, err = fci.NewIntegrals[float64](nil, u6)
	require.ErrorIs(t, err, fci.ErrShapeMismatch)

	t18, err := matrix.NewDense[float64](18, 18)
	require.NoError(t, err)
	u18, err := matrix.NewTensor4[float64](18)
	require.NoError(t, err)
	_, err = fci.NewIntegrals(t18, u18)
	require.ErrorIs(t, err, fci.ErrTooManyOrbitals)
}

func TestElement_Rules(t *testing.T) {
	t.Parallel()
	ints := hubbardIntegrals(t, 2, "o")
	two, err := fci.NewBasis(4, 2)
	require.NoError(t, err)
	// |0 1>,|0 2>,|0 3>,|1 2>,|1 3>,|2 3>
	at := two.At

	assert.InDelta(t, 0, ints.Element(at(0), at(0)), 1e-15, "same-spin pair feels no U")
	assert.InDelta(t, 1, ints.Element(at(1), at(1)), 1e-15, "double occupancy costs U")
	assert.InDelta(t, -1, ints.Element(at(1), at(2)), 1e-15, "single excitation 2→3")
	assert.InDelta(t, 0, ints.Element(at(2), at(3)), 1e-15, "double excitation without U")
	assert.InDelta(t, 0, ints.Element(at(0), at(5)), 1e-15)

	// On a 3-ring orbitals 0 and 2 are bonded; hopping 0→2 past occupied 1 flips the sign.
	ring := hubbardIntegrals(t, 3, "p")
	six, err := fci.NewBasis(6, 2)
	require.NoError(t, err)
	// At(0) = |0 1>, At(5) = |1 2>
	assert.InDelta(t, 1, ring.Element(six.At(0), six.At(5)), 1e-15)
	assert.InDelta(t, 1, ring.Element(six.At(5), six.At(0)), 1e-15)
}

func TestElement_PanicsOnCountMismatch(t *testing.T) {
	t.Parallel()
	ints := hubbardIntegrals(t, 2, "o")
	two, err := fci.NewBasis(4, 2)
	require.NoError(t, err)
	three, err := fci.NewBasis(4, 3)
	require.NoError(t, err)

	assert.Panics(t, func() { ints.Element(two.At(0), three.At(0)) })
}
