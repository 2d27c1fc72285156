// SPDX-License-Identifier: MIT

// Package sparse - Dense reference storage (row-major) & conversions.
//
// Purpose:
//   - Provide a plain row-major buffer with the explicit index formula i*cols + j,
//     used as the comparison baseline for the sparse engine (benchmarks, tests,
//     CLI timing).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Mul: O(r*k*c).
package sparse

import (
	"fmt"
	"iter"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c (offset = i*c + j).
type Dense[T Number] struct {
	r, c int
	data []T
}

var _ fmt.Stringer = (*Dense[float64])(nil)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, sparseErrorf(opNewDense, ErrInvalidDimensions)
	}

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols)}, nil
}

// Rows returns the row count.
func (d *Dense[T]) Rows() int { return d.r }

// Cols returns the column count.
func (d *Dense[T]) Cols() int { return d.c }

// Shape packs Rows() and Cols() into a single call.
func (d *Dense[T]) Shape() (rows, cols int) { return d.r, d.c }

// indexOf computes the row-major offset or returns a bare range sentinel.
func (d *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r {
		return 0, ErrRowOutOfRange
	}
	if col < 0 || col >= d.c {
		return 0, ErrColOutOfRange
	}

	return row*d.c + col, nil
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrRowOutOfRange / ErrColOutOfRange for invalid indices.
func (d *Dense[T]) At(row, col int) (T, error) {
	off, err := d.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return d.data[off], nil
}

// Set stores v at (row, col).
//
// Errors:
//   - ErrRowOutOfRange / ErrColOutOfRange for invalid indices.
func (d *Dense[T]) Set(row, col int, v T) error {
	off, err := d.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	d.data[off] = v

	return nil
}

// Clone returns a deep copy with a fresh buffer.
func (d *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(d.data))
	copy(cp, d.data)

	return &Dense[T]{r: d.r, c: d.c, data: cp}
}

// Mul performs the naive dense product d × other (every term, no skipping).
//
// Errors:
//   - ErrDimensionMismatch when d.Cols() != other.Rows().
//
// Complexity: Time O(r*k*c), Space O(r*c).
func (d *Dense[T]) Mul(other *Dense[T]) (*Dense[T], error) {
	if other == nil {
		return nil, sparseErrorf(opDenseMul, ErrNilMatrix)
	}
	if d.c != other.r {
		return nil, sparseErrorf(opDenseMul, ErrDimensionMismatch)
	}
	out := &Dense[T]{r: d.r, c: other.c, data: make([]T, d.r*other.c)}
	var i, j, k int
	var sum T
	for i = 0; i < d.r; i++ {
		for j = 0; j < other.c; j++ {
			sum = 0
			for k = 0; k < d.c; k++ {
				sum += d.data[i*d.c+k] * other.data[k*other.c+j]
			}
			out.data[i*other.c+j] = sum
		}
	}

	return out, nil
}

// Do visits each element (i,j) in row-major order; it stops when f returns false.
func (d *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			if !f(i, j, d.data[base+j]) {
				return
			}
		}
	}
}

// Equal reports whether shapes and every element match exactly.
func (d *Dense[T]) Equal(other *Dense[T]) bool {
	if d.r != other.r || d.c != other.c {
		return false
	}
	for i := range d.data {
		if d.data[i] != other.data[i] {
			return false
		}
	}

	return true
}

// String renders the matrix in the same dense text form as Matrix.String.
func (d *Dense[T]) String() string {
	return formatRows(d.r, func(i int) iter.Seq[T] {
		row := d.data[i*d.c : (i+1)*d.c]
		return func(yield func(T) bool) {
			for _, x := range row {
				if !yield(x) {
					return
				}
			}
		}
	})
}

// Dense materializes the sparse matrix into a row-major reference matrix.
func (m *Matrix[T]) Dense() *Dense[T] {
	d := &Dense[T]{r: m.r, c: m.c, data: make([]T, m.r*m.c)}
	m.Do(func(i, j int, v T) bool {
		d.data[i*m.c+j] = v
		return true
	})

	return d
}

// FromDense converts a dense matrix into a sparse one, storing non-zeros only.
//
// Errors:
//   - ErrNilMatrix for a nil argument.
func FromDense[T Number](d *Dense[T], opts ...Option) (*Matrix[T], error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, ErrNilMatrix)
	}
	m := newMatrix[T](d.r, d.c, gatherOptions(opts...))
	d.Do(func(i, j int, v T) bool {
		m.set(i, j, v)
		return true
	})

	return m, nil
}
