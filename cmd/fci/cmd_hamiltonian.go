// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHamiltonianCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "hamiltonian",
		Aliases: []string{"ham"},
		Short:   "Print the dense Hamiltonian in basis order",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.solver(a.cfg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if p := a.cfg.Solver.Phase; p != nil {
				h, err := s.TwistedHamiltonian(*p)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(out, h)
				return err
			}
			h, err := s.Hamiltonian()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(out, h)

			return err
		},
	}
}
