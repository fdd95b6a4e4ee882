// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/config"
	"github.com/katalvlaran/lattice/fci"
)

// app carries state shared by every subcommand: the loaded run file and the
// logger built from it.
type app struct {
	configPath string
	logLevel   string
	logFormat  string

	cfg    config.File
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "fci",
		Short: "Exact diagonalization of lattice Hubbard and Anderson models",
		Long: `fci builds the full configuration interaction Hamiltonian of a lattice
model in a fixed particle-number and spin sector and diagonalizes it.

Without -c the half-filled open two-site Hubbard dimer (t = U = 1) is used.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "YAML run file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug|info|warn|error (overrides the run file)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text|json (overrides the run file)")

	root.AddCommand(
		newSolveCmd(a),
		newBasisCmd(a),
		newHamiltonianCmd(a),
		newSweepCmd(a),
	)

	return root
}

// load reads the run file, applies flag overrides and builds the logger.
func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = newLogger(cmd.ErrOrStderr(), cfg.Log.Format, level)
	a.logger.Debug("config loaded", "path", a.configPath, "model", cfg.Model.Kind)

	return nil
}

// solver builds the model and its fci.Solver with the app logger, which also
// receives the disconnected-lattice warning.
func (a *app) solver(cfg config.File) (*fci.Solver, error) {
	return cfg.NewSolver(a.logger)
}
