// SPDX-License-Identifier: MIT

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/katalvlaran/lvlsparse/sparse/linalg"
)

// scenario is one self-contained demonstration.
type scenario struct {
	title string
	run   func(p *printer, opts []sparse.Option) error
}

func newDemoCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the sparse engine with built-in matrices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := o.printer(cmd)
			for _, s := range demoScenarios() {
				o.log.Debug("scenario", "title", s.title)
				p.heading(s.title)
				if err := s.run(p, o.matrixOptions()); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

var (
	demoFour = [][]float64{
		{4, 3, 2, 2},
		{0, 1, -3, 3},
		{0, -1, 3, 3},
		{0, 3, 1, 1},
	}
	demoFive = [][]float64{
		{4, 5, 2, 5, 1},
		{1, 4, 3, 1, 0},
		{2, 1, 1, 3, 5},
		{2, 3, 1, 4, 5},
		{12, 1, 3, 4, 2},
	}
	demoTall = [][]float64{
		{1, 0, 1},
		{2, 1, 1},
		{0, 1, 1},
		{1, 1, 2},
	}
)

func demoScenarios() []scenario {
	return []scenario{
		{"zero vector", demoVector},
		{"equality and sum", demoSum},
		{"product 2x2", func(p *printer, opts []sparse.Option) error {
			a, err := linalg.FromRows([][]float64{{1, 2}, {3, 4}}, opts...)
			if err != nil {
				return err
			}
			return demoProduct(p, a, a)
		}},
		{"product 4x3 by 3x3", func(p *printer, opts []sparse.Option) error {
			a, b, err := pair(demoTall, [][]float64{{1, 2, 1}, {2, 3, 0}, {4, 2, 2}}, opts)
			if err != nil {
				return err
			}
			return demoProduct(p, a, b)
		}},
		{"product by column", func(p *printer, opts []sparse.Option) error {
			a, err := linalg.FromRows(demoTall, opts...)
			if err != nil {
				return err
			}
			p.matrix("A", a)
			r, err := a.MulVec(sparse.VectorOf(1.0, 2.0, 4.0))
			if err != nil {
				return err
			}
			p.matrix("A × [1 2 4]ᵀ", r)
			return nil
		}},
		{"minor", demoMinor},
		{"determinants", demoDeterminants},
		{"row and column operations", demoRowCol},
		{"identity", func(p *printer, opts []sparse.Option) error {
			id, err := linalg.Identity(5, opts...)
			if err != nil {
				return err
			}
			p.matrix("I(5)", id)
			return nil
		}},
		{"inverses", demoInverses},
	}
}

func pair(a, b [][]float64, opts []sparse.Option) (*linalg.Matrix, *linalg.Matrix, error) {
	ma, err := linalg.FromRows(a, opts...)
	if err != nil {
		return nil, nil, err
	}
	mb, err := linalg.FromRows(b, opts...)
	if err != nil {
		return nil, nil, err
	}

	return ma, mb, nil
}

func demoVector(p *printer, _ []sparse.Option) error {
	v, err := sparse.NewVector[int](5)
	if err != nil {
		return err
	}
	p.line("len=%d stored=%d", v.Len(), v.RealSize())
	p.line("%s", v)
	return nil
}

func demoSum(p *printer, opts []sparse.Option) error {
	a, err := linalg.New(3, 5, opts...)
	if err != nil {
		return err
	}
	b, err := linalg.New(3, 5, opts...)
	if err != nil {
		return err
	}
	for _, c := range []struct {
		m    *linalg.Matrix
		i, j int
		v    float64
	}{
		{a, 0, 1, 3}, {a, 0, 2, 3},
		{b, 0, 1, 2}, {b, 0, 3, 1},
	} {
		if err = c.m.Set(c.i, c.j, c.v); err != nil {
			return err
		}
	}
	if a.Equal(b) {
		p.line("equal")
	} else {
		p.line("not equal")
	}
	p.matrix("A", a)
	p.matrix("B", b)
	sum, err := a.Add(b)
	if err != nil {
		return err
	}
	p.matrix("A + B", sum)
	return nil
}

func demoProduct(p *printer, a, b *linalg.Matrix) error {
	p.matrix("A", a)
	p.matrix("B", b)
	r, err := a.Mul(b)
	if err != nil {
		return err
	}
	p.matrix("A × B", r)
	return nil
}

func demoMinor(p *printer, opts []sparse.Option) error {
	a, err := linalg.FromRows(demoTall[:3], opts...)
	if err != nil {
		return err
	}
	p.matrix("A", a)
	m, err := a.SubMatrix(1, 1)
	if err != nil {
		return err
	}
	p.matrix("minor(1, 1)", m)
	return nil
}

func demoDeterminants(p *printer, opts []sparse.Option) error {
	for _, rows := range [][][]float64{{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, demoFour, demoFive} {
		a, err := linalg.FromRows(rows, opts...)
		if err != nil {
			return err
		}
		d, err := a.Determinant()
		if err != nil {
			return err
		}
		p.matrix("A", a)
		p.line("Determinant = %v", d)
	}
	return nil
}

func demoRowCol(p *printer, opts []sparse.Option) error {
	for _, byRow := range []bool{true, false} {
		a, err := linalg.FromRows(demoFive, opts...)
		if err != nil {
			return err
		}
		title := "row 0 + 2"
		if byRow {
			err = a.RowOperation(0, 2, sparse.OpAdd)
		} else {
			title = "col 0 + 2"
			err = a.ColOperation(0, 2, sparse.OpAdd)
		}
		if err != nil {
			return err
		}
		p.matrix(title, a)
	}
	return nil
}

func demoInverses(p *printer, opts []sparse.Option) error {
	for _, rows := range [][][]float64{{{2, 1}, {7, 4}}, demoFive} {
		a, err := linalg.FromRows(rows, opts...)
		if err != nil {
			return err
		}
		inv, err := a.Inverse()
		if err != nil {
			return err
		}
		check, err := a.Mul(inv)
		if err != nil {
			return err
		}
		p.matrix("A", a)
		p.matrix("A⁻¹", inv)
		p.matrix("A × A⁻¹", check)
	}
	return nil
}
