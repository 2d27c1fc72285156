// SPDX-License-Identifier: MIT

// Package cmd implements the lvlsparse command line: a demo of the sparse
// engine, fixture-driven determinant/inverse/product commands and a
// sparse-versus-dense benchmark.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsparse/fixture"
	"github.com/katalvlaran/lvlsparse/sparse"
)

var errNoFixtures = errors.New("no fixture file given (use --fixtures)")

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	fixtures string
	pretty   bool
	epsilon  float64
	verbose  bool

	// epsilonSet is true when --epsilon was given explicitly.
	epsilonSet bool

	log *slog.Logger
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:   "lvlsparse",
		Short: "Sparse matrices: determinant, inverse, products",
		Long: `lvlsparse exercises a sparse matrix engine that stores only non-zero cells.

Commands:
  demo     - walk through vectors, sums, products, minors, determinants, inverses
  det      - determinant of a fixture matrix
  inv      - inverse of a fixture matrix
  mul      - product of two fixture matrices
  bench    - time sparse, dense and gonum multiplication`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if o.epsilon < 0 || math.IsNaN(o.epsilon) || math.IsInf(o.epsilon, 0) {
				return fmt.Errorf("--epsilon must be finite and non-negative, got %g", o.epsilon)
			}
			o.epsilonSet = cmd.Flags().Changed("epsilon")
			o.log = newLogger(cmd.ErrOrStderr(), o.verbose)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&o.fixtures, "fixtures", "f", "", "fixture file (.yaml, .yml, .toml, .json)")
	flags.BoolVar(&o.pretty, "pretty", false, "render matrices in styled boxes")
	flags.Float64Var(&o.epsilon, "epsilon", sparse.DefaultEpsilon, "zero tolerance for equality and pivots")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "verbose output (debug logs on stderr)")

	root.AddCommand(
		newDemoCmd(o),
		newDetCmd(o),
		newInvCmd(o),
		newMulCmd(o),
		newBenchCmd(o),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// matrixOptions turns the persistent flags into matrix options. Without an
// explicit --epsilon a fixture keeps its own tolerance.
func (o *rootOptions) matrixOptions() []sparse.Option {
	if !o.epsilonSet {
		return nil
	}

	return []sparse.Option{sparse.WithEpsilon(o.epsilon)}
}

// loadFixtures reads the --fixtures file.
func (o *rootOptions) loadFixtures() (*fixture.Set, error) {
	if o.fixtures == "" {
		return nil, errNoFixtures
	}
	set, err := fixture.Load(o.fixtures)
	if err != nil {
		return nil, err
	}
	o.log.Debug("fixtures loaded", "path", o.fixtures, "count", set.Len())

	return set, nil
}

// printer returns a renderer bound to the command's output.
func (o *rootOptions) printer(cmd *cobra.Command) *printer {
	return &printer{w: cmd.OutOrStdout(), pretty: o.pretty}
}
