// SPDX-License-Identifier: MIT

// Package config loads FCI run descriptions from YAML.
//
// A run file has four sections:
//
//	model:
//	  kind: hubbard1d        # hubbard1d | hubbard2d | hubbard3d | grid | cubic | anderson
//	  sites: 4
//	  boundary: open         # hubbard1d, grid, cubic
//	  neighbors: [[1],[0]]   # hubbard1d/2d/3d explicit lattice
//	  t: 1
//	  u: 1
//	  anderson: {left: 2, right: 2, td: 0.5, v: 0, vg: 0, include_potential: true}
//	solver:
//	  electrons: 4
//	  ms: 0                  # null disables the spin filter
//	  phase: 0.3             # optional twist phase
//	  workers: 4
//	  method: lapack         # lapack | jacobi
//	  states: 5
//	sweep:
//	  param: u               # u | phase
//	  from: 0
//	  to: 8
//	  steps: 17
//	  plot: e0.png
//	log:
//	  level: info
//	  format: text           # text | json
//
// Absent keys keep their Default values. FCI_WORKERS, FCI_METHOD, FCI_LOG_LEVEL
// and FCI_LOG_FORMAT override the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Model kinds.
const (
	KindHubbard1D = "hubbard1d"
	KindHubbard2D = "hubbard2d"
	KindHubbard3D = "hubbard3d"
	KindGrid      = "grid"
	KindCubic     = "cubic"
	KindAnderson  = "anderson"
)

// Sweep parameters.
const (
	SweepU     = "u"
	SweepPhase = "phase"
)

// File is one run description.
type File struct {
	Model  ModelConfig  `yaml:"model"`
	Solver SolverConfig `yaml:"solver"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Log    LogConfig    `yaml:"log"`
}

// ModelConfig selects and parameterizes the lattice model.
type ModelConfig struct {
	Kind      string         `yaml:"kind"`
	Sites     int            `yaml:"sites"`
	Boundary  string         `yaml:"boundary"`
	Neighbors [][]int        `yaml:"neighbors"`
	Rows      int            `yaml:"rows"`
	Cols      int            `yaml:"cols"`
	Depth     int            `yaml:"depth"`
	T         float64        `yaml:"t"`
	U         float64        `yaml:"u"`
	Anderson  AndersonConfig `yaml:"anderson"`
}

// AndersonConfig holds the impurity-model parameters beyond t and u.
type AndersonConfig struct {
	Left             int     `yaml:"left"`
	Right            int     `yaml:"right"`
	TD               float64 `yaml:"td"`
	V                float64 `yaml:"v"`
	VG               float64 `yaml:"vg"`
	IncludePotential bool    `yaml:"include_potential"`
}

// SolverConfig controls basis and diagonalization.
type SolverConfig struct {
	Electrons int      `yaml:"electrons"`
	Ms        *int     `yaml:"ms"`
	Phase     *float64 `yaml:"phase"`
	Workers   int      `yaml:"workers"`
	Method    string   `yaml:"method"`
	States    int      `yaml:"states"`
}

// SweepConfig describes a one-parameter scan of the ground energy.
type SweepConfig struct {
	Param string  `yaml:"param"`
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
	Plot  string  `yaml:"plot"`
}

// LogConfig selects the CLI log handler.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the half-filled open two-site Hubbard dimer with t = U = 1
// in the m_s = 0 sector.
func Default() File {
	ms := 0
	return File{
		Model: ModelConfig{
			Kind:     KindHubbard1D,
			Sites:    2,
			Boundary: "open",
			T:        1,
			U:        1,
		},
		Solver: SolverConfig{
			Electrons: 2,
			Ms:        &ms,
			Workers:   1,
			Method:    "lapack",
			States:    1,
		},
		Sweep: SweepConfig{Param: SweepU, From: 0, To: 8, Steps: 9},
		Log:   LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads, parses and validates the file at path, then applies environment
// overrides. An empty path yields Default.
func Load(path string) (File, error) {
	f := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return f, fmt.Errorf("load config: %w", err)
		}
		if f, err = Parse(data); err != nil {
			return f, err
		}
	}
	applyEnv(&f)
	if err := f.Validate(); err != nil {
		return f, err
	}

	return f, nil
}

// Parse decodes YAML on top of Default. Unknown keys are rejected.
// A model section that sets neighbors without a boundary clears the default
// boundary, so the explicit lattice wins.
func Parse(data []byte) (File, error) {
	f := Default()
	var keys struct {
		Model map[string]any `yaml:"model"`
	}
	if err := yaml.Unmarshal(data, &keys); err != nil {
		return f, fmt.Errorf("parse config: %v: %w", err, ErrInvalidConfig)
	}
	if _, ok := keys.Model["neighbors"]; ok {
		if _, ok = keys.Model["boundary"]; !ok {
			f.Model.Boundary = ""
		}
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return f, fmt.Errorf("parse config: %v: %w", err, ErrInvalidConfig)
	}

	return f, nil
}

func applyEnv(f *File) {
	if v := os.Getenv("FCI_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.Solver.Workers = n
		}
	}
	if v := os.Getenv("FCI_METHOD"); v != "" {
		f.Solver.Method = v
	}
	if v := os.Getenv("FCI_LOG_LEVEL"); v != "" {
		f.Log.Level = v
	}
	if v := os.Getenv("FCI_LOG_FORMAT"); v != "" {
		f.Log.Format = v
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
