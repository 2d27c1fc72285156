// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsparse/sparse/linalg"
)

func newInvCmd(o *rootOptions) *cobra.Command {
	var (
		pivot  bool
		check  bool
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "inv <name>",
		Short: "Inverse of a fixture matrix",
		Long: `Inverts the named fixture by Gauss-Jordan elimination without row
exchanges. Matrices that need a row exchange fail as singular; --pivot
enables partial pivoting. Only an exact zero pivot is singular unless
--strict is given, which also rejects pivots below the matrix epsilon.`,
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
			o.log.Debug("inverse", "name", args[0], "rows", a.Rows(), "pivot", pivot, "strict", strict, "epsilon", a.Epsilon())

			invert := a.Inverse
			if pivot {
				invert = a.InversePivoted
			}
			var opts []linalg.InverseOption
			if strict {
				opts = append(opts, linalg.WithPivotTolerance())
			}
			inv, err := invert(opts...)
			if err != nil {
				return err
			}
			p := o.printer(cmd)
			p.matrix(args[0]+"⁻¹", inv)
			if !check {
				return nil
			}
			prod, err := a.Mul(inv)
			if err != nil {
				return err
			}
			p.matrix(args[0]+" × "+args[0]+"⁻¹", prod)
			return nil
		},
	}
	cmd.Flags().BoolVar(&pivot, "pivot", false, "use partial pivoting")
	cmd.Flags().BoolVar(&check, "check", false, "also print A × A⁻¹")
	cmd.Flags().BoolVar(&strict, "strict", false, "treat pivots below epsilon as zero")

	return cmd
}
