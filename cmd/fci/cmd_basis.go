// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBasisCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "basis",
		Short: "Print the determinant basis, one state per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := a.solver(a.cfg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), s.RenderBasis())
			return err
		},
	}
}
