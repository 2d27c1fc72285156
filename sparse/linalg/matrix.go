// SPDX-License-Identifier: MIT

package linalg

import (
	"math"

	"github.com/katalvlaran/lvlsparse/sparse"
)

// Matrix is a float64 sparse matrix with tolerant equality and the linear
// algebra operations. The tolerance is the embedded matrix's Epsilon().
type Matrix struct {
	*sparse.Matrix[float64]
}

// New creates an all-zero rows×cols matrix.
//
// Errors:
//   - sparse.ErrInvalidDimensions when rows <= 0 or cols <= 0.
func New(rows, cols int, opts ...sparse.Option) (*Matrix, error) {
	m, err := sparse.NewMatrix[float64](rows, cols, opts...)
	if err != nil {
		return nil, linalgErrorf(opNew, err)
	}

	return Wrap(m), nil
}

// FromRows builds a matrix from a nested literal (see sparse.FromRows).
func FromRows(values [][]float64, opts ...sparse.Option) (*Matrix, error) {
	m, err := sparse.FromRows(values, opts...)
	if err != nil {
		return nil, linalgErrorf(opFromRows, err)
	}

	return Wrap(m), nil
}

// Wrap adopts m without copying. A nil m yields nil.
func Wrap(m *sparse.Matrix[float64]) *Matrix {
	if m == nil {
		return nil
	}

	return &Matrix{Matrix: m}
}

// Identity returns the n×n identity matrix.
func Identity(n int, opts ...sparse.Option) (*Matrix, error) {
	m, err := sparse.Identity[float64](n, opts...)
	if err != nil {
		return nil, linalgErrorf(opIdentity, err)
	}

	return Wrap(m), nil
}

// unwrap returns the embedded generic matrix, tolerating a nil receiver.
func (m *Matrix) unwrap() *sparse.Matrix[float64] {
	if m == nil {
		return nil
	}

	return m.Matrix
}

// Equal reports whether shapes match and every pair of corresponding cells
// differs by at most Epsilon(). Cells unstored on both sides are equal.
func (m *Matrix) Equal(other *Matrix) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.Rows() != other.Rows() || m.Cols() != other.Cols() {
		return false
	}
	eps := m.Epsilon()

	return within(m.Matrix, other.Matrix, eps) && within(other.Matrix, m.Matrix, eps)
}

// within checks every stored cell of a against the same cell of b.
func within(a, b *sparse.Matrix[float64], eps float64) bool {
	ok := true
	a.Do(func(i, j int, x float64) bool {
		y, _ := b.Get(i, j)
		ok = math.Abs(x-y) <= eps
		return ok
	})

	return ok
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix { return Wrap(m.Matrix.Clone()) }

// Add returns m + other.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	out, err := m.Matrix.Add(other.unwrap())
	return Wrap(out), err
}

// Sub returns m - other.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	out, err := m.Matrix.Sub(other.unwrap())
	return Wrap(out), err
}

// Mul returns m × other.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	out, err := m.Matrix.Mul(other.unwrap())
	return Wrap(out), err
}

// MulVec returns m × v as a column matrix.
func (m *Matrix) MulVec(v *sparse.Vector[float64]) (*Matrix, error) {
	out, err := m.Matrix.MulVec(v)
	return Wrap(out), err
}

// Transpose returns the transposed matrix.
func (m *Matrix) Transpose() *Matrix { return Wrap(m.Matrix.Transpose()) }

// Col returns the given column as a Rows()×1 matrix.
func (m *Matrix) Col(col int) (*Matrix, error) {
	out, err := m.Matrix.Col(col)
	return Wrap(out), err
}

// SubMatrix returns the minor without excludeRow and excludeCol.
func (m *Matrix) SubMatrix(excludeRow, excludeCol int) (*Matrix, error) {
	out, err := m.Matrix.SubMatrix(excludeRow, excludeCol)
	return Wrap(out), err
}
