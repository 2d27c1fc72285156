// SPDX-License-Identifier: MIT

// Package sparse - Matrix storage & safe accessors.
//
// Purpose:
//   - Represent a rows×cols grid as an ordered store of sparse row vectors.
//   - Guarantee safety at the public surface: Get/Set return errors instead of panicking.
//   - Keep the two-level sparsity invariant: zero cells are never stored in a row,
//     and a row without stored cells is never stored in the outer container.
//
// Complexity quicksheet:
//   - NewMatrix: O(1); Get/Set: O(log rows + log nnz(row)); Clone: O(nnz); RealSize: O(rows).
package sparse

import (
	"fmt"
	"iter"
)

// Matrix is a generic sparse matrix with value semantics.
//   - r,c hold the logical extent.
//   - rows stores only rows that hold at least one non-zero cell; each stored
//     row is a Vector of logical size c.
//   - opts carries the tolerance inherited by every derived matrix.
type Matrix[T Number] struct {
	r, c int
	rows *store[*Vector[T]]
	opts Options
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Matrix[float64])(nil)

// NewMatrix creates an all-zero rows×cols matrix.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: O(1); nothing proportional to rows×cols is allocated.
func NewMatrix[T Number](rows, cols int, opts ...Option) (*Matrix[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opNewMatrix, ErrInvalidDimensions)
	}

	return newMatrix[T](rows, cols, gatherOptions(opts...)), nil
}

func newMatrix[T Number](rows, cols int, o Options) *Matrix[T] {
	return &Matrix[T]{r: rows, c: cols, rows: newStore[*Vector[T]](), opts: o}
}

// FromRows builds a matrix from a nested literal.
// The outer length fixes Rows(); the first inner length fixes Cols().
// Longer rows are truncated, shorter rows are zero-padded.
//
// Errors:
//   - ErrInvalidInitializer when values is empty or its first row is empty.
func FromRows[T Number](values [][]T, opts ...Option) (*Matrix[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, sparseErrorf(opFromRows, ErrInvalidInitializer)
	}
	m := newMatrix[T](len(values), len(values[0]), gatherOptions(opts...))
	for i, row := range values {
		for j, x := range row {
			if j >= m.c {
				break
			}
			m.set(i, j, x)
		}
	}

	return m, nil
}

// FromVector promotes a vector of length n to an n×1 matrix.
//
// Errors:
//   - ErrNilMatrix for a nil vector; ErrInvalidDimensions for an empty one.
func FromVector[T Number](v *Vector[T], opts ...Option) (*Matrix[T], error) {
	if v == nil {
		return nil, sparseErrorf(opFromVector, ErrNilMatrix)
	}
	if v.Len() == 0 {
		return nil, sparseErrorf(opFromVector, ErrInvalidDimensions)
	}
	m := newMatrix[T](v.Len(), 1, gatherOptions(opts...))
	v.data.ascend(func(i int, x T) bool {
		m.set(i, 0, x)
		return true
	})

	return m, nil
}

// Rows returns the row count.
func (m *Matrix[T]) Rows() int { return m.r }

// Cols returns the column count.
func (m *Matrix[T]) Cols() int { return m.c }

// Shape returns (Rows(), Cols()).
func (m *Matrix[T]) Shape() (rows, cols int) { return m.r, m.c }

// IsSquare reports whether Rows() == Cols().
func (m *Matrix[T]) IsSquare() bool { return m.r == m.c }

// Options returns the resolved options the matrix was built with.
func (m *Matrix[T]) Options() Options { return m.opts }

// Epsilon returns the tolerance used by division guards.
func (m *Matrix[T]) Epsilon() float64 { return m.opts.eps }

// checkCell validates coordinates and returns a bare sentinel on failure.
func (m *Matrix[T]) checkCell(row, col int) error {
	if row < 0 || row >= m.r {
		return ErrRowOutOfRange
	}
	if col < 0 || col >= m.c {
		return ErrColOutOfRange
	}

	return nil
}

// Get returns the value at (row, col), or zero when nothing is stored there.
//
// Errors:
//   - ErrRowOutOfRange / ErrColOutOfRange for invalid coordinates.
func (m *Matrix[T]) Get(row, col int) (T, error) {
	if err := m.checkCell(row, col); err != nil {
		var zero T
		return zero, cellErrorf(opGet, row, col, err)
	}

	return m.at(row, col), nil
}

// Set stores v at (row, col). Storing zero removes the cell, and the row
// itself when it becomes empty.
//
// Errors:
//   - ErrRowOutOfRange / ErrColOutOfRange for invalid coordinates.
func (m *Matrix[T]) Set(row, col int, v T) error {
	if err := m.checkCell(row, col); err != nil {
		return cellErrorf(opSet, row, col, err)
	}
	m.set(row, col, v)

	return nil
}

// Has reports whether (row, col) is physically stored.
// Out-of-range coordinates are never stored.
func (m *Matrix[T]) Has(row, col int) bool {
	r, ok := m.rows.get(row)
	return ok && r.Has(col)
}

// at reads in-range coordinates without validation.
func (m *Matrix[T]) at(row, col int) T {
	r, ok := m.rows.get(row)
	if !ok {
		var zero T
		return zero
	}

	return r.at(col)
}

// set is the single mutation site for cells; coordinates must be in range.
func (m *Matrix[T]) set(row, col int, v T) {
	r, ok := m.rows.get(row)
	if !ok {
		var zero T
		if v == zero {
			return
		}
		r = newVector[T](m.c)
		m.rows.put(row, r)
	}
	r.set(col, v)
	if r.RealSize() == 0 {
		m.rows.remove(row)
	}
}

// Equal reports whether shapes match and every cell is equal.
// Unstored cells compare as zero.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	if m.rows.len() != other.rows.len() {
		return false
	}
	equal := true
	m.rows.ascend(func(i int, row *Vector[T]) bool {
		o, ok := other.rows.get(i)
		equal = ok && row.Equal(o)
		return equal
	})

	return equal
}

// Clone returns a deep copy; no row is shared with the receiver.
func (m *Matrix[T]) Clone() *Matrix[T] {
	out := newMatrix[T](m.r, m.c, m.opts)
	m.rows.ascend(func(i int, row *Vector[T]) bool {
		out.rows.put(i, row.Clone())
		return true
	})

	return out
}

// RealSize returns the total number of stored (non-zero) cells.
func (m *Matrix[T]) RealSize() int {
	n := 0
	m.rows.ascend(func(_ int, row *Vector[T]) bool {
		n += row.RealSize()
		return true
	})

	return n
}

// Do visits every stored cell in row-major order; it stops when f returns false.
// f must not mutate the matrix.
func (m *Matrix[T]) Do(f func(i, j int, v T) bool) {
	m.rows.ascend(func(i int, row *Vector[T]) bool {
		cont := true
		row.data.ascend(func(j int, v T) bool {
			cont = f(i, j, v)
			return cont
		})
		return cont
	})
}

// RowEntries yields the stored (col, value) pairs of one row in column order.
// An out-of-range row yields nothing.
func (m *Matrix[T]) RowEntries(row int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		r, ok := m.rows.get(row)
		if !ok {
			return
		}
		r.data.ascend(func(j int, v T) bool { return yield(j, v) })
	}
}

// RowVectors yields every logical row as a Vector in row order. Rows without
// stored cells are synthesized as empty vectors; yielded vectors are copies.
func (m *Matrix[T]) RowVectors() iter.Seq2[int, *Vector[T]] {
	return func(yield func(int, *Vector[T]) bool) {
		for i := 0; i < m.r; i++ {
			r, ok := m.rows.get(i)
			if ok {
				r = r.Clone()
			} else {
				r = newVector[T](m.c)
			}
			if !yield(i, r) {
				return
			}
		}
	}
}

// Row returns a copy of the given row as a Vector of length Cols().
//
// Errors:
//   - ErrRowOutOfRange for an invalid row.
func (m *Matrix[T]) Row(row int) (*Vector[T], error) {
	if row < 0 || row >= m.r {
		return nil, indexErrorf(opRow, row, ErrRowOutOfRange)
	}
	if r, ok := m.rows.get(row); ok {
		return r.Clone(), nil
	}

	return newVector[T](m.c), nil
}

// Col returns the given column as a Rows()×1 matrix.
//
// Errors:
//   - ErrColOutOfRange for an invalid column.
func (m *Matrix[T]) Col(col int) (*Matrix[T], error) {
	if col < 0 || col >= m.c {
		return nil, indexErrorf(opCol, col, ErrColOutOfRange)
	}
	out := newMatrix[T](m.r, 1, m.opts)
	m.rows.ascend(func(i int, row *Vector[T]) bool {
		if v, ok := row.data.get(col); ok {
			out.set(i, 0, v)
		}
		return true
	})

	return out, nil
}

// String renders one line per row, values separated by single spaces,
// zeros rendered as 0. Every line ends with '\n'.
func (m *Matrix[T]) String() string {
	return formatRows(m.r, func(i int) iter.Seq[T] {
		if r, ok := m.rows.get(i); ok {
			return r.Values()
		}
		return zeros[T](m.c)
	})
}
