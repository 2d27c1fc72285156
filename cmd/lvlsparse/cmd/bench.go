// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/katalvlaran/lvlsparse/sparse/linalg"
)

// benchConfig holds the bench flags.
type benchConfig struct {
	size    int
	density float64
	seed    int64
	repeat  int
}

func newBenchCmd(o *rootOptions) *cobra.Command {
	cfg := benchConfig{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time sparse, dense and gonum multiplication",
		Long: `Builds two random size×size matrices with the given density and
times their product with the sparse engine, the naive dense reference and
gonum's mat.Dense.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cfg.size <= 0 {
				return fmt.Errorf("--size must be > 0, got %d", cfg.size)
			}
			if cfg.density <= 0 || cfg.density > 1 {
				return fmt.Errorf("--density must be in (0, 1], got %g", cfg.density)
			}
			if cfg.repeat <= 0 {
				return fmt.Errorf("--repeat must be > 0, got %d", cfg.repeat)
			}
			res, err := runBench(cfg, o.matrixOptions())
			if err != nil {
				return err
			}
			o.log.Debug("bench done", "size", cfg.size, "density", cfg.density, "seed", cfg.seed)

			p := o.printer(cmd)
			p.line("size=%d density=%g nnz(A)=%d nnz(B)=%d nnz(A×B)=%d",
				cfg.size, cfg.density, res.nnzA, res.nnzB, res.nnzProduct)
			rows := make([][]string, 0, len(res.timings))
			for _, t := range res.timings {
				rows = append(rows, []string{t.engine, t.total.String(), (t.total / time.Duration(cfg.repeat)).String()})
			}
			p.table([]string{"engine", "total", "per op"}, rows)
			if !res.agree {
				return fmt.Errorf("engines disagree on the product")
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.size, "size", 200, "matrix order")
	f.Float64Var(&cfg.density, "density", 0.01, "fraction of non-zero cells")
	f.Int64Var(&cfg.seed, "seed", 1, "random seed")
	f.IntVar(&cfg.repeat, "repeat", 3, "products per engine")

	return cmd
}

type timing struct {
	engine string
	total  time.Duration
}

type benchResult struct {
	nnzA, nnzB, nnzProduct int
	timings                []timing
	agree                  bool
}

// randomMatrix fills a size×size matrix with values in [1, 10) at the given density.
func randomMatrix(rng *rand.Rand, size int, density float64, opts []sparse.Option) (*linalg.Matrix, error) {
	m, err := linalg.New(size, size, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			if rng.Float64() < density {
				if err = m.Set(i, j, 1+9*rng.Float64()); err != nil {
					return nil, err
				}
			}
		}
	}

	return m, nil
}

func runBench(cfg benchConfig, opts []sparse.Option) (*benchResult, error) {
	rng := rand.New(rand.NewSource(cfg.seed))
	a, err := randomMatrix(rng, cfg.size, cfg.density, opts)
	if err != nil {
		return nil, err
	}
	b, err := randomMatrix(rng, cfg.size, cfg.density, opts)
	if err != nil {
		return nil, err
	}

	var (
		sparseOut *linalg.Matrix
		denseOut  *sparse.Dense[float64]
		gonumOut  mat.Dense
	)
	da, db := a.Dense(), b.Dense()
	ga, gb := a.ToGonum(), b.ToGonum()

	engines := []struct {
		name string
		run  func() error
	}{
		{"sparse", func() (err error) {
			sparseOut, err = a.Mul(b)
			return err
		}},
		{"dense", func() (err error) {
			denseOut, err = da.Mul(db)
			return err
		}},
		{"gonum", func() error {
			gonumOut.Mul(ga, gb)
			return nil
		}},
	}

	res := &benchResult{nnzA: a.RealSize(), nnzB: b.RealSize()}
	for _, e := range engines {
		start := time.Now()
		for i := 0; i < cfg.repeat; i++ {
			if err = e.run(); err != nil {
				return nil, fmt.Errorf("%s: %w", e.name, err)
			}
		}
		res.timings = append(res.timings, timing{engine: e.name, total: time.Since(start)})
	}

	res.nnzProduct = sparseOut.RealSize()
	fromDense, err := sparse.FromDense(denseOut, opts...)
	if err != nil {
		return nil, err
	}
	res.agree = linalg.Wrap(fromDense).Equal(sparseOut) && mat.EqualApprox(sparseOut, &gonumOut, 1e-9)

	return res, nil
}
