// SPDX-License-Identifier: MIT

package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestAddSub verifies cell-wise sums and that cancellation removes cells.
func TestAddSub(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {0, 3}})
	b := mustRows(t, [][]int{{-1, 0}, {4, 3}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustRows(t, [][]int{{0, 2}, {4, 6}})))
	require.False(t, sum.Has(0, 0)) // 1 + (-1) cancelled

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustRows(t, [][]int{{2, 2}, {-4, 0}})))
	require.Equal(t, 3, diff.RealSize())

	// Operands are untouched.
	require.True(t, a.Equal(mustRows(t, [][]int{{1, 2}, {0, 3}})))
}

// TestAddSubShapeMismatch covers operand validation.
func TestAddSubShapeMismatch(t *testing.T) {
	a := mustMatrix[float64](t, 2, 2)
	b := mustMatrix[float64](t, 2, 3)

	_, err := a.Add(b)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	_, err = a.Sub(b)
	require.ErrorIs(t, err, sparse.ErrShapeMismatch)
	_, err = a.Add(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestAddSubInverse checks (a + b) - b == a on a random operand.
func TestAddSubInverse(t *testing.T) {
	a := randomSparse(t, 12, 9, 0.2, 1)
	b := randomSparse(t, 12, 9, 0.3, 2)

	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	require.True(t, back.Equal(a))
}

// TestMulSmall verifies a hand-computed rectangular product.
func TestMulSmall(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2, 0}, {0, 0, 3}})
	b := mustRows(t, [][]int{{1, 0}, {0, 1}, {2, 2}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, 2, p.Rows())
	require.Equal(t, 2, p.Cols())
	require.Equal(t, "1 2\n6 6\n", p.String())

	_, err = b.Mul(b)
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = a.Mul(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestMulCancellationNotStored checks that zero sums are dropped.
func TestMulCancellationNotStored(t *testing.T) {
	a := mustRows(t, [][]int{{1, 1}})
	b := mustRows(t, [][]int{{2}, {-2}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	require.Zero(t, p.RealSize())
	require.Equal(t, "0\n", p.String())
}

// TestMulIdentity checks I·A == A·I == A.
func TestMulIdentity(t *testing.T) {
	a := randomSparse(t, 7, 7, 0.3, 3)
	id, err := sparse.Identity[float64](7)
	require.NoError(t, err)

	left, err := id.Mul(a)
	require.NoError(t, err)
	right, err := a.Mul(id)
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	require.True(t, right.Equal(a))
}

// TestMulMatchesDense compares the sparse product with the naive dense one.
func TestMulMatchesDense(t *testing.T) {
	for _, tc := range []struct {
		r, k, c int
		density float64
	}{
		{5, 5, 5, 0.5},
		{10, 4, 7, 0.2},
		{30, 30, 30, 0.05},
		{1, 12, 1, 0.9},
	} {
		t.Run(fmt.Sprintf("%dx%dx%d", tc.r, tc.k, tc.c), func(t *testing.T) {
			a := randomSparse(t, tc.r, tc.k, tc.density, int64(tc.r))
			b := randomSparse(t, tc.k, tc.c, tc.density, int64(tc.c+100))

			got, err := a.Mul(b)
			require.NoError(t, err)
			want, err := a.Dense().Mul(b.Dense())
			require.NoError(t, err)
			require.True(t, got.Dense().Equal(want))
		})
	}
}

// TestMulAssociative checks (AB)C == A(BC) on integer operands.
func TestMulAssociative(t *testing.T) {
	a := mustRows(t, [][]int{{1, 0, 2}, {0, 3, 0}})
	b := mustRows(t, [][]int{{0, 1}, {4, 0}, {0, 5}})
	c := mustRows(t, [][]int{{2, 0, 1}, {0, 1, 0}})

	ab, err := a.Mul(b)
	require.NoError(t, err)
	abc1, err := ab.Mul(c)
	require.NoError(t, err)

	bc, err := b.Mul(c)
	require.NoError(t, err)
	abc2, err := a.Mul(bc)
	require.NoError(t, err)

	require.True(t, abc1.Equal(abc2))
}

// TestMulVec checks vector promotion and the length check.
func TestMulVec(t *testing.T) {
	a := mustRows(t, [][]int{{1, 2}, {3, 4}, {0, 1}})

	p, err := a.MulVec(sparse.VectorOf(1, 1))
	require.NoError(t, err)
	require.Equal(t, "3\n7\n1\n", p.String())

	_, err = a.MulVec(sparse.VectorOf(1, 2, 3))
	require.ErrorIs(t, err, sparse.ErrDimensionMismatch)
	_, err = a.MulVec(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestResultsInheritOptions checks that derived matrices keep the receiver's tolerance.
func TestResultsInheritOptions(t *testing.T) {
	a := mustRows(t, [][]float64{{1, 2}, {3, 4}}, sparse.WithEpsilon(0.25))
	b := mustRows(t, [][]float64{{1, 0}, {0, 1}})

	sum, err := a.Add(b)
	require.NoError(t, err)
	prod, err := a.Mul(b)
	require.NoError(t, err)
	minor, err := a.SubMatrix(0, 0)
	require.NoError(t, err)

	for _, m := range []*sparse.Matrix[float64]{sum, prod, minor, a.Transpose(), a.Clone()} {
		require.Equal(t, 0.25, m.Epsilon())
	}
}
