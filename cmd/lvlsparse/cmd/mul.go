// SPDX-License-Identifier: MIT

package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
)

func newMulCmd(o *rootOptions) *cobra.Command {
	var power int
	cmd := &cobra.Command{
		Use:   "mul <lhs> [rhs]",
		Short: "Product of two fixture matrices",
		Long: `Multiplies two named fixtures. With a single name and --power n the
matrix is multiplied by itself n times.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := o.loadFixtures()
			if err != nil {
				return err
			}
			a, err := set.Matrix(args[0], o.matrixOptions()...)
			if err != nil {
				return err
			}
			p := o.printer(cmd)

			if len(args) == 1 {
				r, err := a.Power(power)
				if err != nil {
					return err
				}
				o.log.Debug("power", "name", args[0], "n", power, "stored", r.RealSize())
				p.matrix(args[0]+"^"+strconv.Itoa(power), r)
				return nil
			}

			b, err := set.Matrix(args[1], o.matrixOptions()...)
			if err != nil {
				return err
			}
			r, err := a.Mul(b)
			if err != nil {
				return err
			}
			o.log.Debug("product", "lhs", args[0], "rhs", args[1], "stored", r.RealSize())
			p.matrix(args[0]+" × "+args[1], r)
			return nil
		},
	}
	cmd.Flags().IntVarP(&power, "power", "n", 1, "exponent when a single matrix is given")

	return cmd
}
