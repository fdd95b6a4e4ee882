// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/matrix"
)

func TestTensor4_Indexing(t *testing.T) {
	tt, err := matrix.NewTensor4[float64](3)
	require.NoError(t, err)
	assert.Equal(t, 3, tt.Dim())
	assert.Len(t, tt.Raw(), 81)

	require.NoError(t, tt.Set(0, 1, 2, 0, 4))
	require.NoError(t, tt.Add(0, 1, 2, 0, 0.5))
	v, err := tt.At(0, 1, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)
	// Row-major offset ((p*n+q)*n+r)*n+s.
	assert.Equal(t, 4.5, tt.Raw()[((0*3+1)*3+2)*3+0])

	_, err = tt.At(3, 0, 0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, tt.Set(0, 0, 0, 0, math.NaN()), matrix.ErrNaNInf)

	_, err = matrix.NewTensor4[float64](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestTensor4_CloneAndLift(t *testing.T) {
	tt, err := matrix.NewTensor4[float64](2)
	require.NoError(t, err)
	require.NoError(t, tt.Set(1, 1, 1, 1, 2))

	c := tt.Clone()
	require.NoError(t, c.Set(1, 1, 1, 1, 7))
	v, _ := tt.At(1, 1, 1, 1)
	assert.Equal(t, 2.0, v)

	lifted := matrix.Lift(tt)
	lv, err := lifted.At(1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, complex(2, 0), lv)
}
