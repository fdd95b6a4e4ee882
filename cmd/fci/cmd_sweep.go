// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lattice/config"
)

const (
	plotWidth  = 6 * vg.Inch
	plotHeight = 4 * vg.Inch
)

func newSweepCmd(a *app) *cobra.Command {
	var flags config.SweepConfig
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Scan the ground energy over U or the twist phase",
		Long: `sweep solves the model at evenly spaced values of one parameter and prints
"value E0" rows. With --plot the curve is also written to an image file whose
format follows the extension (png, svg, pdf, ...).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sw := a.cfg.Sweep
			fs := cmd.Flags()
			if fs.Changed("param") {
				sw.Param = flags.Param
			}
			if fs.Changed("from") {
				sw.From = flags.From
			}
			if fs.Changed("to") {
				sw.To = flags.To
			}
			if fs.Changed("steps") {
				sw.Steps = flags.Steps
			}
			if fs.Changed("plot") {
				sw.Plot = flags.Plot
			}
			cfg := a.cfg
			cfg.Sweep = sw
			if err := cfg.Validate(); err != nil {
				return err
			}

			xs := sw.Points()
			ys, err := a.sweep(cfg, xs)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i := range xs {
				fmt.Fprintf(out, "%.6f %.12f\n", xs[i], ys[i])
			}
			if sw.Plot == "" {
				return nil
			}
			if err = writePlot(sw.Plot, sw.Param, xs, ys); err != nil {
				return err
			}
			a.logger.Info("sweep plot written", "path", sw.Plot, "points", len(xs))

			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&flags.Param, "param", config.SweepU, "parameter to scan: u|phase")
	fs.Float64Var(&flags.From, "from", 0, "first value")
	fs.Float64Var(&flags.To, "to", 0, "last value")
	fs.IntVar(&flags.Steps, "steps", 0, "number of points")
	fs.StringVar(&flags.Plot, "plot", "", "write an E0 chart to this file")

	return cmd
}

// sweep returns the ground energy at each value of cfg.Sweep.Param.
// A U scan rebuilds the model per point; a phase scan reuses one solver.
func (a *app) sweep(cfg config.File, xs []float64) ([]float64, error) {
	ys := make([]float64, len(xs))
	if cfg.Sweep.Param == config.SweepPhase {
		s, err := a.solver(cfg)
		if err != nil {
			return nil, err
		}
		for i, x := range xs {
			spec, err := s.SolveTwisted(x)
			if err != nil {
				return nil, fmt.Errorf("phase=%g: %w", x, err)
			}
			ys[i] = spec.GroundEnergy()
		}
		return ys, nil
	}

	for i, x := range xs {
		cfg.Model.U = x
		s, err := a.solver(cfg)
		if err != nil {
			return nil, fmt.Errorf("u=%g: %w", x, err)
		}
		levels, err := energies(s, cfg.Solver.Phase)
		if err != nil {
			return nil, fmt.Errorf("u=%g: %w", x, err)
		}
		ys[i] = levels[0]
	}

	return ys, nil
}

// writePlot charts E0 against the scanned parameter.
func writePlot(path, param string, xs, ys []float64) error {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X, pts[i].Y = xs[i], ys[i]
	}

	p := plot.New()
	p.Title.Text = "Ground-state energy"
	p.X.Label.Text = param
	p.Y.Label.Text = "E0"
	p.Add(plotter.NewGrid())

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	marks, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot: %w", err)
	}
	p.Add(line, marks)

	if err = p.Save(plotWidth, plotHeight, path); err != nil {
		return fmt.Errorf("plot: %w", err)
	}

	return nil
}
