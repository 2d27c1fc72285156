// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"
)

func newDetCmd(o *rootOptions) *cobra.Command {
	var useLU bool
	cmd := &cobra.Command{
		Use:   "det <name>",
		Short: "Determinant of a fixture matrix",
		Long: `Computes the determinant of the named fixture by cofactor expansion
along row 0. With --lu the O(n³) LU factorization is used instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := o.loadFixtures()
			if err != nil {
				return err
			}
			a, err := set.Matrix(args[0], o.matrixOptions()...)
			if err != nil {
				return err
			}
			o.log.Debug("determinant", "name", args[0], "rows", a.Rows(), "stored", a.RealSize(), "lu", useLU)

			det := a.Determinant
			if useLU {
				det = a.DeterminantLU
			}
			d, err := det()
			if err != nil {
				return err
			}
			p := o.printer(cmd)
			p.matrix(args[0], a)
			p.line("Determinant = %v", d)
			return nil
		},
	}
	cmd.Flags().BoolVar(&useLU, "lu", false, "use LU factorization")

	return cmd
}
