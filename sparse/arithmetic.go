// SPDX-License-Identifier: MIT
// Package sparse: element-wise addition, subtraction and matrix multiplication.
// All functions perform fail-fast validation, never mutate their operands and
// return fresh matrices that inherit the receiver's options.

package sparse

// addSub computes out = a + sign·b cell by cell.
// Implementation:
//   - Stage 1: validate shapes.
//   - Stage 2: clone a, then fold in the stored cells of b only; cells where b
//     is zero already hold a's value, so they need no visit.
//   - Stage 3: set drops cells that cancel to zero, and rows that empty out.
//
// Inputs:
//   - a, b: same-shape operands; neither is mutated.
//   - subtract: false for a + b, true for a - b.
//   - opTag: operation name used to wrap errors.
//
// Returns:
//   - fresh matrix carrying a's options.
//
// Determinism:
//   - b is walked row-major in ascending (i, j); output is order-independent.
//
// Complexity: O(nnz(a) + nnz(b)·log).
func addSub[T Number](a, b *Matrix[T], subtract bool, opTag string) (*Matrix[T], error) {
	// Shape guard (also rejects nil operands)
	if err := validateSameShape(a, b); err != nil {
		return nil, sparseErrorf(opTag, err)
	}
	out := a.Clone()
	// Fold b into the copy; unstored cells of b contribute nothing.
	b.Do(func(i, j int, y T) bool {
		x := out.at(i, j)
		if subtract {
			out.set(i, j, x-y)
		} else {
			out.set(i, j, x+y)
		}
		return true
	})

	return out, nil
}

// Add returns m + other.
//
// Errors:
//   - ErrShapeMismatch when shapes differ; ErrNilMatrix for a nil operand.
func (m *Matrix[T]) Add(other *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, other, false, opAdd)
}

// Sub returns m - other.
//
// Errors:
//   - ErrShapeMismatch when shapes differ; ErrNilMatrix for a nil operand.
func (m *Matrix[T]) Sub(other *Matrix[T]) (*Matrix[T], error) {
	return addSub(m, other, true, opSub)
}

// Mul returns the product m × other with shape (m.Rows(), other.Cols()).
//
// Implementation:
//   - For every stored row i of m, walk its stored cells (k, a_ik) in ascending
//     k, and for each walk the stored cells (j, b_kj) of row k of other.
//   - Products are accumulated in a per-row scratch buffer, so for any output
//     cell the terms are summed in ascending k, exactly like the dense
//     triple loop restricted to stored×stored pairs.
//   - Zero sums are not stored.
//
// Inputs:
//   - other: right operand with other.Rows() == m.Cols().
//
// Returns:
//   - fresh m.Rows()×other.Cols() matrix carrying m's options.
//
// Errors:
//   - ErrDimensionMismatch when m.Cols() != other.Rows(); ErrNilMatrix for nil.
//
// Determinism:
//   - Fixed i→k→j order; equal inputs give bit-equal output.
//
// Complexity: O(Σ stored pairs + nnzRows(m)·other.Cols()); scratch O(other.Cols()).
func (m *Matrix[T]) Mul(other *Matrix[T]) (*Matrix[T], error) {
	// Inner-dimension guard (also rejects nil operands)
	if err := validateMulCompatible(m, other); err != nil {
		return nil, sparseErrorf(opMul, err)
	}
	out := newMatrix[T](m.r, other.c, m.opts)
	// Scratch row reused across output rows; hit marks columns that got a term.
	acc := make([]T, other.c)
	hit := make([]bool, other.c)

	var zero T
	m.rows.ascend(func(i int, lhs *Vector[T]) bool {
		touched := false
		lhs.data.ascend(func(k int, a T) bool {
			rhs, ok := other.rows.get(k)
			if !ok {
				return true // row k of other is empty
			}
			rhs.data.ascend(func(j int, b T) bool {
				acc[j] += a * b
				hit[j] = true
				touched = true
				return true
			})
			return true
		})
		if !touched {
			return true
		}
		// Flush and reset the scratch row.
		for j := range acc {
			if hit[j] {
				out.set(i, j, acc[j])
			}
			acc[j] = zero
			hit[j] = false
		}
		return true
	})

	return out, nil
}

// MulVec promotes v to an n×1 matrix and returns m × v.
//
// Errors:
//   - ErrDimensionMismatch when m.Cols() != v.Len(); ErrNilMatrix for nil.
func (m *Matrix[T]) MulVec(v *Vector[T]) (*Matrix[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	col, err := FromVector(v, WithEpsilon(m.opts.eps))
	if err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}
	out, err := m.Mul(col)
	if err != nil {
		return nil, sparseErrorf(opMulVec, err)
	}

	return out, nil
}
