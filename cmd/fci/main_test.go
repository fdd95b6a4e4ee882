package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lattice/config"
	"github.com/katalvlaran/lattice/fci"
)

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeRun(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestSolve_DefaultDimer(t *testing.T) {
	out, _, err := run(t, "solve", "--states", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "states: 4\n")
	assert.Contains(t, out, "E0: -1.561552812809\n")
	assert.Equal(t, 4, strings.Count(out, "\n"))
}

func TestSolve_JSON(t *testing.T) {
	path := writeRun(t, `
model: {kind: hubbard1d, sites: 4, boundary: o, t: 1, u: 1}
solver: {electrons: 4, ms: 0, workers: 2, states: 3}
`)
	out, _, err := run(t, "solve", "-c", path, "--json")
	require.NoError(t, err)

	var res solveResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.InDelta(t, -3.575365620447, res.Ground, 1e-12)
	assert.Len(t, res.Levels, 3)
	assert.Equal(t, 36, res.States)
	require.NotNil(t, res.Ms)
	assert.Equal(t, 0, *res.Ms)
}

func TestSolve_TwistedPhase(t *testing.T) {
	path := writeRun(t, `
model: {kind: hubbard1d, sites: 3, boundary: p}
solver: {electrons: 3, ms: 1, phase: 0}
`)
	twisted, _, err := run(t, "solve", "-c", path)
	require.NoError(t, err)

	path = writeRun(t, `
model: {kind: hubbard1d, sites: 3, boundary: p}
solver: {electrons: 3, ms: 1}
`)
	plain, _, err := run(t, "solve", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, firstLines(plain, 2), firstLines(twisted, 2))
}

func firstLines(s string, n int) string {
	return strings.Join(strings.SplitN(s, "\n", n+1)[:n], "\n")
}

func TestBasis_Render(t *testing.T) {
	path := writeRun(t, "solver: {ms: null}\n")
	out, _, err := run(t, "basis", "-c", path)
	require.NoError(t, err)
	assert.Equal(t, "|0 1> m_s = 2\n|0 2> m_s = 0\n|0 3> m_s = 0\n|1 2> m_s = 0\n|1 3> m_s = 0\n|2 3> m_s = -2\n", out)
}

func TestHamiltonian_Print(t *testing.T) {
	out, _, err := run(t, "hamiltonian")
	require.NoError(t, err)
	assert.Equal(t, "[1, -1, -1, 0]\n[-1, 0, 0, -1]\n[-1, 0, 0, -1]\n[0, -1, -1, 1]\n", out)
}

func TestSweep_U(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "e0.png")
	out, errOut, err := run(t, "sweep", "--param", "u", "--from", "0", "--to", "2", "--steps", "3",
		"--plot", plot, "--log-format", "json")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0.000000 -2.000000000000", lines[0])
	assert.Equal(t, "2.000000 -1.236067977500", lines[2])

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
	assert.Contains(t, errOut, `"msg":"sweep plot written"`)
}

func TestSweep_PhaseUnsupported(t *testing.T) {
	path := writeRun(t, `
model: {kind: anderson, t: 1, u: 1, anderson: {left: 1, right: 1, td: 0.5}}
solver: {electrons: 3, ms: 1}
`)
	_, _, err := run(t, "sweep", "-c", path, "--param", "phase", "--to", "1", "--steps", "2")
	require.ErrorIs(t, err, fci.ErrTwistUnsupported)
}

func TestRoot_Errors(t *testing.T) {
	_, _, err := run(t, "solve", "--log-level", "shout")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, _, err = run(t, "solve", "-c", filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	path := writeRun(t, "solver: {electrons: 9}\n")
	_, _, err = run(t, "solve", "-c", path)
	require.ErrorIs(t, err, fci.ErrBadParticleCount)

	_, _, err = run(t, "sweep", "--param", "t")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestDebugLogging(t *testing.T) {
	_, errOut, err := run(t, "solve", "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "fci hamiltonian built")
	assert.Contains(t, errOut, "config loaded")
}

func TestSolve_WarnsOnDisconnectedLattice(t *testing.T) {
	path := writeRun(t, `
model: {kind: hubbard2d, sites: 4, neighbors: [[1], [0], [3], [2]]}
solver: {electrons: 4, ms: 0}
`)
	_, errOut, err := run(t, "solve", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "lattice is disconnected")
	assert.Contains(t, errOut, "components=2")
}

func TestSolve_RejectsNegativeStates(t *testing.T) {
	for _, args := range [][]string{
		{"solve", "--states", "-1"},
		{"solve", "--states", "-3", "--json"},
	} {
		_, _, err := run(t, args...)
		require.ErrorIs(t, err, config.ErrInvalidConfig, "%v", args)
	}
}
