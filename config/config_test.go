package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/builder"
	"github.com/katalvlaran/lattice/config"
	"github.com/katalvlaran/lattice/fci"
	"github.com/katalvlaran/lattice/model"
)

func TestDefault_SolvesDimer(t *testing.T) {
	t.Parallel()
	f := config.Default()
	require.NoError(t, f.Validate())

	s, err := f.NewSolver(nil)
	require.NoError(t, err)
	spec, err := s.Solve()
	require.NoError(t, err)
	assert.InDelta(t, -1.561552812809, spec.GroundEnergy(), 1e-12)
}

func TestParse_Overlay(t *testing.T) {
	t.Parallel()
	f, err := config.Parse([]byte(`
model:
  kind: anderson
  t: 1
  u: 2
  anderson: {left: 1, right: 2, td: 0.5, v: 0.1, vg: -0.2, include_potential: true}
solver:
  electrons: 4
  ms: null
  workers: 3
  method: jacobi
`))
	require.NoError(t, err)
	require.NoError(t, f.Validate())

	assert.Equal(t, config.KindAnderson, f.Model.Kind)
	assert.Equal(t, 2, f.Model.Anderson.Right)
	assert.True(t, f.Model.Anderson.IncludePotential)
	assert.Nil(t, f.Solver.Ms)
	assert.Equal(t, 3, f.Solver.Workers)
	assert.Equal(t, "info", f.Log.Level, "absent keys keep defaults")

	m, err := f.BuildModel()
	require.NoError(t, err)
	a, ok := m.(*model.Anderson)
	require.True(t, ok)
	assert.Equal(t, 1, a.Dot())
	assert.Equal(t, 8, a.OrbitalCount())

	s, err := f.NewSolver(nil)
	require.NoError(t, err)
	assert.Equal(t, 70, s.Basis().Len())
}

func TestParse_NeighborsClearDefaultBoundary(t *testing.T) {
	t.Parallel()
	f, err := config.Parse([]byte(`
model:
  kind: hubbard1d
  sites: 3
  neighbors: [[1, 2], [0, 2], [0, 1]]
`))
	require.NoError(t, err)
	assert.Empty(t, f.Model.Boundary)

	_, err = f.BuildModel()
	require.NoError(t, err)
}

func TestParse_Rejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "model:\n  flavour: strange\n"},
		{"bad yaml", "model: [\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse([]byte(tc.yaml))
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()
	f, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), f)
}

func TestValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(f *config.File)
	}{
		{"unknown kind", func(f *config.File) { f.Model.Kind = "kagome" }},
		{"no sites", func(f *config.File) { f.Model.Sites = 0 }},
		{"2d without neighbors", func(f *config.File) { f.Model.Kind = config.KindHubbard2D }},
		{"grid without rows", func(f *config.File) { f.Model.Kind = config.KindGrid }},
		{"anderson t=0", func(f *config.File) {
			f.Model.Kind = config.KindAnderson
			f.Model.T = 0
		}},
		{"anderson negative lead", func(f *config.File) {
			f.Model.Kind = config.KindAnderson
			f.Model.Anderson.Left = -1
		}},
		{"negative electrons", func(f *config.File) { f.Solver.Electrons = -1 }},
		{"negative workers", func(f *config.File) { f.Solver.Workers = -2 }},
		{"unknown method", func(f *config.File) { f.Solver.Method = "davidson" }},
		{"unknown sweep param", func(f *config.File) { f.Sweep.Param = "t" }},
		{"zero steps", func(f *config.File) { f.Sweep.Steps = 0 }},
		{"unknown level", func(f *config.File) { f.Log.Level = "loud" }},
		{"unknown format", func(f *config.File) { f.Log.Format = "xml" }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := config.Default()
			tc.mutate(&f)
			require.ErrorIs(t, f.Validate(), config.ErrInvalidConfig)
		})
	}
}

func TestBuildModel_Kinds(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		mutate    func(f *config.File)
		wantOrbit int
	}{
		{"chain", func(f *config.File) { f.Model.Sites = 4 }, 8},
		{"grid", func(f *config.File) {
			f.Model.Kind, f.Model.Rows, f.Model.Cols = config.KindGrid, 2, 3
		}, 12},
		{"cubic", func(f *config.File) {
			f.Model.Kind, f.Model.Rows, f.Model.Cols, f.Model.Depth = config.KindCubic, 2, 2, 2
			f.Model.Boundary = "p"
		}, 16},
		{"2d neighbors", func(f *config.File) {
			f.Model.Kind, f.Model.Sites = config.KindHubbard2D, 4
			f.Model.Boundary = ""
			f.Model.Neighbors = [][]int{{1, 2}, {0, 3}, {0, 3}, {1, 2}}
		}, 8},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := config.Default()
			tc.mutate(&f)
			m, err := f.BuildModel()
			require.NoError(t, err)
			assert.Equal(t, tc.wantOrbit, m.OrbitalCount())
		})
	}
}

func TestBuildModel_Errors(t *testing.T) {
	t.Parallel()

	f := config.Default()
	f.Model.Kind = config.KindGrid
	f.Model.Rows, f.Model.Cols = 2, 2
	f.Model.Boundary = "twisted"
	m, err := f.BuildModel()
	require.ErrorIs(t, err, builder.ErrUnknownBoundary)
	assert.Nil(t, m)

	f = config.Default()
	f.Model.Neighbors = [][]int{{1}, {0}}
	_, err = f.BuildModel()
	require.ErrorIs(t, err, model.ErrConflictingLattice)
}

func TestSolverOptions(t *testing.T) {
	t.Parallel()
	f := config.Default()
	f.Solver.Ms = nil
	f.Solver.Workers = 2

	s, err := f.NewSolver(nil)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Basis().Len())

	f.Solver.Method = "nope"
	_, err = f.SolverOptions(nil)
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	f = config.Default()
	f.Model.Sites = 9
	_, err = f.NewSolver(nil)
	require.ErrorIs(t, err, fci.ErrTooManyOrbitals)
}

func TestNewSolver_DisconnectedLattice(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		doc  string
		warn bool
	}{
		{"split", `{model: {kind: hubbard2d, sites: 4, neighbors: [[1], [0], [3], [2]]}, solver: {electrons: 4, ms: 0}}`, true},
		{"ring", `{model: {kind: hubbard2d, sites: 4, neighbors: [[1, 3], [0, 2], [1, 3], [2, 0]]}, solver: {electrons: 4, ms: 0}}`, false},
		{"anderson", `{model: {kind: anderson, anderson: {left: 1, right: 1, td: 0.5}}, solver: {electrons: 3}}`, false},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f, err := config.Parse([]byte(tc.doc))
			require.NoError(t, err)
			var buf bytes.Buffer
			_, err = f.NewSolver(slog.New(slog.NewTextHandler(&buf, nil)))
			require.NoError(t, err)
			if tc.warn {
				assert.Contains(t, buf.String(), "lattice is disconnected")
				assert.Contains(t, buf.String(), "components=2")
			} else {
				assert.NotContains(t, buf.String(), "disconnected")
			}
		})
	}
}

func TestSweepPoints(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []float64{0, 2, 4, 6, 8}, config.SweepConfig{From: 0, To: 8, Steps: 5}.Points())
	assert.Equal(t, []float64{1.5}, config.SweepConfig{From: 1.5, To: 9, Steps: 1}.Points())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("solver:\n  workers: 2\n"), 0o600))

	t.Setenv("FCI_WORKERS", "5")
	t.Setenv("FCI_LOG_FORMAT", "json")
	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Solver.Workers)
	assert.Equal(t, "json", f.Log.Format)

	_, err = config.Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	t.Setenv("FCI_METHOD", "davidson")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
