// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lattice/matrix"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidConfig)
}

// Validate checks the fields every command relies on. Model-specific ranges
// (site counts, neighbor lists, orbital limits) are left to the model and fci
// constructors, which report their own typed errors.
func (f File) Validate() error {
	m := f.Model
	switch m.Kind {
	case KindHubbard1D, KindHubbard2D, KindHubbard3D:
		if m.Sites < 1 {
			return invalid("model.sites must be >= 1, got %d", m.Sites)
		}
		if m.Kind != KindHubbard1D && len(m.Neighbors) == 0 {
			return invalid("model.neighbors required for %s", m.Kind)
		}
	case KindGrid, KindCubic:
		if m.Rows < 1 || m.Cols < 1 || (m.Kind == KindCubic && m.Depth < 1) {
			return invalid("model.rows/cols/depth must be >= 1")
		}
	case KindAnderson:
		if m.Anderson.Left < 0 || m.Anderson.Right < 0 {
			return invalid("model.anderson.left/right must be >= 0")
		}
		if m.T == 0 {
			return invalid("model.t must be non-zero for anderson")
		}
	default:
		return invalid("model.kind %q unknown", m.Kind)
	}
	if !finite(m.T, m.U, m.Anderson.TD, m.Anderson.V, m.Anderson.VG) {
		return invalid("model parameters must be finite")
	}

	s := f.Solver
	if s.Electrons < 0 {
		return invalid("solver.electrons must be >= 0, got %d", s.Electrons)
	}
	if s.Workers < 0 {
		return invalid("solver.workers must be >= 0, got %d", s.Workers)
	}
	if s.States < 0 {
		return invalid("solver.states must be >= 0, got %d", s.States)
	}
	if s.Phase != nil && !finite(*s.Phase) {
		return invalid("solver.phase must be finite")
	}
	if _, err := matrix.ParseMethod(s.Method); err != nil {
		return invalid("solver.method %q unknown", s.Method)
	}

	if err := f.Sweep.validate(); err != nil {
		return err
	}
	if _, err := f.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(f.Log.Format) {
	case "", "text", "json":
	default:
		return invalid("log.format %q unknown", f.Log.Format)
	}

	return nil
}

func (s SweepConfig) validate() error {
	switch s.Param {
	case SweepU, SweepPhase:
	default:
		return invalid("sweep.param %q unknown", s.Param)
	}
	if s.Steps < 1 {
		return invalid("sweep.steps must be >= 1, got %d", s.Steps)
	}
	if !finite(s.From, s.To) {
		return invalid("sweep.from/to must be finite")
	}

	return nil
}

// Points returns the Steps evenly spaced values from From to To inclusive.
// A single step yields From alone.
func (s SweepConfig) Points() []float64 {
	if s.Steps <= 1 {
		return []float64{s.From}
	}
	out := make([]float64, s.Steps)
	h := (s.To - s.From) / float64(s.Steps-1)
	for i := range out {
		out[i] = s.From + float64(i)*h
	}
	out[len(out)-1] = s.To

	return out
}

// SlogLevel parses Level ("debug", "info", "warn", "error"; empty means info).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, invalid("log.level %q unknown", l.Level)
	}

	return lvl, nil
}
