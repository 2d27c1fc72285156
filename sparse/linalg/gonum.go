// SPDX-License-Identifier: MIT
// Package linalg: bridge to gonum.org/v1/gonum/mat.
//
// *Matrix implements mat.Matrix, so it can be handed to any gonum routine
// (factorizations, norms, formatting) without copying. At follows the gonum
// contract and panics on out-of-range indices; everything else in this
// package reports errors instead.

package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/sparse"
)

var _ mat.Matrix = (*Matrix)(nil)

// Dims returns (Rows(), Cols()).
func (m *Matrix) Dims() (r, c int) { return m.Shape() }

// At returns the cell at (i, j). It panics with mat.ErrRowAccess or
// mat.ErrColAccess when the index is out of range.
func (m *Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.Rows() {
		panic(mat.ErrRowAccess)
	}
	if j < 0 || j >= m.Cols() {
		panic(mat.ErrColAccess)
	}
	v, _ := m.Get(i, j)

	return v
}

// T returns an implicit transpose view, as gonum types do.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// ToGonum copies m into a new *mat.Dense.
func (m *Matrix) ToGonum() *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	m.Do(func(i, j int, v float64) bool {
		d.Set(i, j, v)
		return true
	})

	return d
}

// FromGonum copies any mat.Matrix into a sparse matrix, storing non-zeros only.
//
// Errors:
//   - sparse.ErrNilMatrix for a nil argument.
//   - sparse.ErrInvalidDimensions for an empty matrix.
func FromGonum(a mat.Matrix, opts ...sparse.Option) (*Matrix, error) {
	if a == nil {
		return nil, linalgErrorf(opFromGonum, sparse.ErrNilMatrix)
	}
	r, c := a.Dims()
	m, err := sparse.NewMatrix[float64](r, c, opts...)
	if err != nil {
		return nil, linalgErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v := a.At(i, j); v != 0 {
				if err = m.Set(i, j, v); err != nil {
					return nil, linalgErrorf(opFromGonum, err)
				}
			}
		}
	}

	return Wrap(m), nil
}
