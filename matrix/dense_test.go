// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

func TestNewDense_Shapes(t *testing.T) {
	cases := []struct {
		name    string
		r, c    int
		wantErr error
	}{
		{"1x1", 1, 1, nil},
		{"3x5", 3, 5, nil},
		{"zero rows", 0, 2, matrix.ErrInvalidDimensions},
		{"negative cols", 2, -1, matrix.ErrInvalidDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := matrix.NewDense[float64](tc.r, tc.c)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			r, c := m.Shape()
			assert.Equal(t, tc.r, r)
			assert.Equal(t, tc.c, c)
			for _, v := range m.Raw() {
				assert.Zero(t, v)
			}
		})
	}
}

func TestNewDenseFrom_LengthMismatch(t *testing.T) {
	_, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestDense_AtSetAdd(t *testing.T) {
	m, err := matrix.NewDense[complex128](2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 2+1i))
	require.NoError(t, m.Add(1, 2, -1))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1+1i, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, cmplx.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Add(0, 0, complex(math.Inf(1), 0)), matrix.ErrNaNInf)
}

func TestDense_CloneIsDeep(t *testing.T) {
	m := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	v, _ := m.At(0, 0)
	assert.Equal(t, 1.0, v)
}

func TestDense_ColAndString(t *testing.T) {
	m := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, col)
	_, err = m.Col(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestNewIdentity(t *testing.T) {
	id, err := matrix.NewIdentity[complex128](3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				assert.Equal(t, complex(1, 0), v)
			} else {
				assert.Zero(t, v)
			}
		}
	}
}

func TestBlockDiag(t *testing.T) {
	a := MustDense(t, 1, 1, []float64{5})
	b := MustDense(t, 2, 2, []float64{1, 2, 3, 4})
	out, err := matrix.BlockDiag(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{
		5, 0, 0,
		0, 1, 2,
		0, 3, 4,
	}, out.Raw())

	_, err = matrix.BlockDiag(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestConjTranspose(t *testing.T) {
	m := MustDense(t, 2, 2, []complex128{1, 1i, 2 - 1i, 3})
	h, err := matrix.ConjTranspose(m)
	require.NoError(t, err)
	assert.Equal(t, []complex128{1, 2 + 1i, -1i, 3}, h.Raw())
}

func TestFrobeniusDistance(t *testing.T) {
	a := MustDense(t, 1, 2, []float64{0, 0})
	b := MustDense(t, 1, 2, []float64{3, 4})
	d, err := matrix.FrobeniusDistance(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, eps)

	ca := matrix.Complexify(a)
	cb := MustDense(t, 1, 2, []complex128{3i, 4})
	d, err = matrix.FrobeniusDistance(ca, cb)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, d, eps)

	_, err = matrix.FrobeniusDistance(a, MustDense(t, 2, 1, []float64{1, 2}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestComplexifyRealPart(t *testing.T) {
	a := MustDense(t, 2, 1, []float64{1.5, -2})
	back := matrix.RealPart(matrix.Complexify(a))
	assert.Equal(t, a.Raw(), back.Raw())
	assert.Zero(t, matrix.MaxImag(matrix.Complexify(a)))
}

func TestGonumRoundTrip(t *testing.T) {
	a := MustDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	back, err := matrix.FromGonum(matrix.ToGonum(a))
	require.NoError(t, err)
	assert.Equal(t, a.Raw(), back.Raw())
}

func TestValidateHermitian(t *testing.T) {
	cases := []struct {
		name    string
		m       *matrix.Dense[complex128]
		wantErr error
	}{
		{"hermitian", MustDense(t, 2, 2, []complex128{1, 2 - 1i, 2 + 1i, 3}), nil},
		{"not hermitian", MustDense(t, 2, 2, []complex128{1, 2 + 1i, 2 + 1i, 3}), matrix.ErrNotHermitian},
		{"complex diagonal", MustDense(t, 2, 2, []complex128{1i, 0, 0, 1}), matrix.ErrNotHermitian},
		{"non square", MustDense(t, 1, 2, []complex128{1, 2}), matrix.ErrNonSquare},
		{"nil", nil, matrix.ErrNilMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateHermitian(tc.m, 1e-12)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}
