package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/core"
)

func TestDistances(t *testing.T) {
	t.Parallel()
	g := mustGraph(t, 5)
	for _, b := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
		_, err := g.AddBond(b[0], b[1], 1)
		require.NoError(t, err)
	}

	d, err := g.Distances(1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 1, 2, -1}, d)

	_, err = g.Distances(7)
	require.ErrorIs(t, err, core.ErrSiteNotFound)
}

func TestComponents(t *testing.T) {
	t.Parallel()
	g := mustGraph(t, 6, core.WithLoops())
	for _, b := range [][2]int{{4, 1}, {1, 0}, {2, 5}, {3, 3}} {
		_, err := g.AddBond(b[0], b[1], 0.5)
		require.NoError(t, err)
	}

	assert.Equal(t, [][]int{{0, 1, 4}, {2, 5}, {3}}, g.Components())
	assert.False(t, g.Connected())

	_, err := g.AddBond(4, 5, 1)
	require.NoError(t, err)
	_, err = g.AddBond(3, 0, 1)
	require.NoError(t, err)
	assert.True(t, g.Connected())
	assert.Len(t, g.Components(), 1)
}
