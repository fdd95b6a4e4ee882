// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lattice/fci"
)

type solveResult struct {
	Model     string    `json:"model"`
	Electrons int       `json:"electrons"`
	Ms        *int      `json:"ms,omitempty"`
	Phase     *float64  `json:"phase,omitempty"`
	States    int       `json:"states"`
	Ground    float64   `json:"ground_energy"`
	Levels    []float64 `json:"levels"`
}

func newSolveCmd(a *app) *cobra.Command {
	var (
		states int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Print the ground energy and the lowest levels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("states") {
				cfg.Solver.States = states
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			s, err := a.solver(cfg)
			if err != nil {
				return err
			}
			levels, err := energies(s, cfg.Solver.Phase)
			if err != nil {
				return err
			}

			res := solveResult{
				Model:     cfg.Model.Kind,
				Electrons: cfg.Solver.Electrons,
				Ms:        cfg.Solver.Ms,
				Phase:     cfg.Solver.Phase,
				States:    len(levels),
				Ground:    levels[0],
				Levels:    levels[:min(cfg.Solver.States, len(levels))],
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(res)
			}
			fmt.Fprintf(out, "states: %d\n", res.States)
			fmt.Fprintf(out, "E0: %.12f\n", res.Ground)
			for i, e := range res.Levels {
				fmt.Fprintf(out, "%4d  %.12f\n", i, e)
			}

			return nil
		},
	}
	cmd.Flags().IntVar(&states, "states", 1, "number of lowest levels to print")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

// energies solves s, twisted when phase is set, and returns the ascending spectrum.
func energies(s *fci.Solver, phase *float64) ([]float64, error) {
	if phase != nil {
		spec, err := s.SolveTwisted(*phase)
		if err != nil {
			return nil, err
		}
		return spec.Values, nil
	}
	spec, err := s.Solve()
	if err != nil {
		return nil, err
	}

	return spec.Values, nil
}
