// SPDX-License-Identifier: MIT
// Package sparse: shape transforms (minor, transpose) and in-place row/column
// transforms used by elimination algorithms.

package sparse

import "fmt"

// SubMatrix returns the (Rows()-1)×(Cols()-1) minor obtained by deleting
// excludeRow and excludeCol. Remaining rows and columns keep their relative
// order. Only stored cells are visited.
//
// Errors:
//   - ErrBadShape when Rows() < 2 or Cols() < 2.
//   - ErrRowOutOfRange / ErrColOutOfRange for invalid exclusion indices.
func (m *Matrix[T]) SubMatrix(excludeRow, excludeCol int) (*Matrix[T], error) {
	if err := validateMinor(m); err != nil {
		return nil, sparseErrorf(opSubMatrix, err)
	}
	if err := m.checkCell(excludeRow, excludeCol); err != nil {
		return nil, cellErrorf(opSubMatrix, excludeRow, excludeCol, err)
	}
	out := newMatrix[T](m.r-1, m.c-1, m.opts)
	m.Do(func(i, j int, v T) bool {
		if i == excludeRow || j == excludeCol {
			return true
		}
		if i > excludeRow {
			i--
		}
		if j > excludeCol {
			j--
		}
		out.set(i, j, v)
		return true
	})

	return out, nil
}

// Transpose returns a new Cols()×Rows() matrix with out[j][i] = m[i][j].
// Only stored cells are copied.
func (m *Matrix[T]) Transpose() *Matrix[T] {
	out := newMatrix[T](m.c, m.r, m.opts)
	m.Do(func(i, j int, v T) bool {
		out.set(j, i, v)
		return true
	})

	return out
}

// checkOperand validates op and, for division, the divisor against the tolerance.
func (m *Matrix[T]) checkOperand(value T, op Operation) error {
	switch op {
	case OpAdd, OpSubtract, OpMultiply:
		return nil
	case OpDivide:
		if negligible(value, m.opts.eps) {
			return ErrDivisionByZero
		}
		return nil
	default:
		return ErrUnknownOperation
	}
}

// RowOperation applies op with value to every cell of row, in place.
// Every cell is visited, so Add/Subtract materialize previously zero cells.
//
// Errors:
//   - ErrRowOutOfRange for an invalid row.
//   - ErrDivisionByZero when dividing by a value whose magnitude is below Epsilon().
//   - ErrUnknownOperation for an undefined op.
//
// The matrix is left untouched when an error is returned.
func (m *Matrix[T]) RowOperation(row int, value T, op Operation) error {
	if row < 0 || row >= m.r {
		return indexErrorf(opRowOperation, row, ErrRowOutOfRange)
	}
	if err := m.checkOperand(value, op); err != nil {
		return fmt.Errorf("%s(%d, %s): %w", opRowOperation, row, op, err)
	}
	for j := 0; j < m.c; j++ {
		nv, _ := applyOp(op, m.at(row, j), value) // op validated above
		m.set(row, j, nv)
	}

	return nil
}

// ColOperation applies op with value to every cell of col, in place.
//
// Errors:
//   - ErrColOutOfRange for an invalid column.
//   - ErrDivisionByZero when dividing by a value whose magnitude is below Epsilon().
//   - ErrUnknownOperation for an undefined op.
func (m *Matrix[T]) ColOperation(col int, value T, op Operation) error {
	if col < 0 || col >= m.c {
		return indexErrorf(opColOperation, col, ErrColOutOfRange)
	}
	if err := m.checkOperand(value, op); err != nil {
		return fmt.Errorf("%s(%d, %s): %w", opColOperation, col, op, err)
	}
	for i := 0; i < m.r; i++ {
		nv, _ := applyOp(op, m.at(i, col), value)
		m.set(i, col, nv)
	}

	return nil
}

// AddScaledRow performs row[to] += factor · row[from] in place.
// Cells where row[from] is zero are left as they are.
//
// Errors:
//   - ErrRowOutOfRange when either row is invalid.
func (m *Matrix[T]) AddScaledRow(from, to int, factor T) error {
	if from < 0 || from >= m.r {
		return indexErrorf(opAddScaledRow, from, ErrRowOutOfRange)
	}
	if to < 0 || to >= m.r {
		return indexErrorf(opAddScaledRow, to, ErrRowOutOfRange)
	}
	src, ok := m.rows.get(from)
	if !ok {
		return nil
	}
	// Snapshot: from == to would otherwise mutate the row being walked.
	for _, e := range src.data.entries() {
		m.set(to, e.index, m.at(to, e.index)+e.value*factor)
	}

	return nil
}

// SwapRows exchanges two rows in place.
//
// Errors:
//   - ErrRowOutOfRange when either row is invalid.
func (m *Matrix[T]) SwapRows(a, b int) error {
	if a < 0 || a >= m.r {
		return indexErrorf(opSwapRows, a, ErrRowOutOfRange)
	}
	if b < 0 || b >= m.r {
		return indexErrorf(opSwapRows, b, ErrRowOutOfRange)
	}
	if a == b {
		return nil
	}
	ra, okA := m.rows.get(a)
	rb, okB := m.rows.get(b)
	m.rows.remove(a)
	m.rows.remove(b)
	if okA {
		m.rows.put(b, ra)
	}
	if okB {
		m.rows.put(a, rb)
	}

	return nil
}

// Apply replaces every logical cell, stored or not, with f(i, j, v), in place.
// Results equal to zero are not stored.
//
// Complexity: O(Rows()·Cols()·log).
func (m *Matrix[T]) Apply(f func(i, j int, v T) T) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			m.set(i, j, f(i, j, m.at(i, j)))
		}
	}
}
