// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lattice/builder"
	"github.com/katalvlaran/lattice/core"
	"github.com/katalvlaran/lattice/fci"
	"github.com/katalvlaran/lattice/matrix"
	"github.com/katalvlaran/lattice/model"
)

// BuildModel constructs the model described by the model section.
func (f File) BuildModel() (fci.Model, error) {
	m := f.Model
	var (
		out fci.Model
		err error
	)
	switch m.Kind {
	case KindHubbard1D, KindHubbard2D, KindHubbard3D, KindGrid, KindCubic:
		var h *model.Hubbard
		if h, err = m.hubbard(); err == nil {
			out = h
		}
	case KindAnderson:
		a := m.Anderson
		var opts []model.AndersonOption
		if a.IncludePotential {
			opts = append(opts, model.IncludePotential())
		}
		var am *model.Anderson
		if am, err = model.NewAnderson(a.Left, a.Right, m.T, a.TD, m.U, a.V, a.VG, opts...); err == nil {
			out = am
		}
	default:
		err = invalid("model.kind %q unknown", m.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("BuildModel: %w", err)
	}

	return out, nil
}

func (m ModelConfig) hubbard() (*model.Hubbard, error) {
	switch m.Kind {
	case KindHubbard1D:
		return model.NewHubbard1D(m.Sites, m.T, m.U, m.Boundary, m.Neighbors)
	case KindHubbard2D:
		return model.NewHubbard2D(m.Sites, m.T, m.U, m.Neighbors)
	case KindHubbard3D:
		return model.NewHubbard3D(m.Sites, m.T, m.U, m.Neighbors)
	}
	b, err := builder.ParseBoundary(m.Boundary)
	if err != nil {
		return nil, err
	}
	if m.Kind == KindGrid {
		return model.NewHubbardGrid(m.Rows, m.Cols, m.T, m.U, b)
	}

	return model.NewHubbardCubic(m.Rows, m.Cols, m.Depth, m.T, m.U, b)
}

// SolverOptions translates the solver section into fci options.
// A nil logger leaves the engine's discard logger in place.
func (f File) SolverOptions(logger *slog.Logger) ([]fci.Option, error) {
	method, err := matrix.ParseMethod(f.Solver.Method)
	if err != nil {
		return nil, invalid("solver.method %q unknown", f.Solver.Method)
	}
	opts := []fci.Option{
		fci.WithMethod(method),
		fci.WithWorkers(max(f.Solver.Workers, 0)),
	}
	if f.Solver.Ms != nil {
		opts = append(opts, fci.WithSpin(*f.Solver.Ms))
	}
	if logger != nil {
		opts = append(opts, fci.WithLogger(logger))
	}

	return opts, nil
}

// NewSolver builds the model and an fci.Solver for it. A lattice that splits
// into several components is logged as a warning, not rejected.
func (f File) NewSolver(logger *slog.Logger) (*fci.Solver, error) {
	m, err := f.BuildModel()
	if err != nil {
		return nil, err
	}
	if l, ok := m.(interface{ Lattice() *core.Graph }); ok && logger != nil {
		if comps := l.Lattice().Components(); len(comps) > 1 {
			logger.Warn("lattice is disconnected", "components", len(comps), "sites", comps)
		}
	}
	opts, err := f.SolverOptions(logger)
	if err != nil {
		return nil, err
	}

	return fci.New(m, f.Solver.Electrons, opts...)
}
