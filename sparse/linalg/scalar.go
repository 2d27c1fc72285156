// SPDX-License-Identifier: MIT
// Package linalg: scalar elementwise operators.
// Each operator works on a deep copy and visits every logical cell, so adding
// or subtracting a non-zero scalar densifies the result.

package linalg

import (
	"math"

	"github.com/katalvlaran/lvlsparse/sparse"
)

// mapCells returns a copy of m with f applied to every cell.
func (m *Matrix) mapCells(f func(v float64) float64) *Matrix {
	out := m.Matrix.Clone()
	out.Apply(func(_, _ int, v float64) float64 { return f(v) })

	return Wrap(out)
}

// AddScalar returns m + c cell by cell.
func (m *Matrix) AddScalar(c float64) *Matrix {
	return m.mapCells(func(v float64) float64 { return v + c })
}

// SubScalar returns m - c cell by cell.
func (m *Matrix) SubScalar(c float64) *Matrix {
	return m.mapCells(func(v float64) float64 { return v - c })
}

// MulScalar returns m · c cell by cell.
func (m *Matrix) MulScalar(c float64) *Matrix {
	return m.mapCells(func(v float64) float64 { return v * c })
}

// DivScalar returns m / c cell by cell.
//
// Errors:
//   - sparse.ErrDivisionByZero when |c| < Epsilon() or c is NaN or ±Inf.
func (m *Matrix) DivScalar(c float64) (*Matrix, error) {
	// Non-finite divisors would silently fill every cell with NaN or zero.
	if math.IsNaN(c) || math.IsInf(c, 0) || math.Abs(c) < m.Epsilon() || c == 0 {
		return nil, linalgErrorf(opDivScalar, sparse.ErrDivisionByZero)
	}

	return m.mapCells(func(v float64) float64 { return v / c }), nil
}

// PowElements raises every cell to exp with math.Pow. Zero cells take part:
// exp == 0 turns them into 1, a negative exp into +Inf.
func (m *Matrix) PowElements(exp float64) *Matrix {
	return m.mapCells(func(v float64) float64 { return math.Pow(v, exp) })
}
