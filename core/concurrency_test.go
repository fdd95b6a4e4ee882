// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/core"
)

// TestConcurrentAddBond ensures concurrent AddBond calls on a multi-bond lattice
// are safe and every bond lands.
func TestConcurrentAddBond(t *testing.T) {
	const num = 200
	g, err := core.NewGraph(num+1, core.WithMultiBonds())
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(num)
	for i := 1; i <= num; i++ {
		go func(site int) {
			defer wg.Done()
			_, _ = g.AddBond(0, site, 1)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbs, num)
	require.Equal(t, num, g.BondCount())
}

// TestConcurrentReadWrite mixes readers and writers to surface races under -race.
func TestConcurrentReadWrite(t *testing.T) {
	g, err := core.NewGraph(16, core.WithMultiBonds())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_, _ = g.AddBond(i%16, (i+1)%16, 1)
		}(i)
		go func() {
			defer wg.Done()
			_ = g.Bonds()
			_ = g.AdjacencyList()
			_ = g.Clone()
		}()
	}
	wg.Wait()
	require.Equal(t, 50, g.BondCount())
}
