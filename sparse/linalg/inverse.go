// SPDX-License-Identifier: MIT
// Package linalg: Gauss-Jordan inversion and integer powers.
//
// Inverse follows a fixed elimination order without row exchanges:
//
//	forward:  for i = 0..n-1: scale row i by 1/pivot; for j > i: row j -= a[j][i]·row i
//	backward: for i = n-1..1, j = i-1..0: row j -= a[j][i]·row i
//
// Every step is mirrored on an identity matrix, which ends as the inverse.
// A pivot equal to zero aborts with ErrSingular, even when a row exchange
// would have succeeded; InversePivoted handles those matrices. Callers that
// want small pivots rejected as well pass WithPivotTolerance.

package linalg

import (
	"math"

	"github.com/katalvlaran/lvlsparse/sparse"
)

// ZeroPivot is the pivot value that marks a matrix singular during inversion.
const ZeroPivot = 0.0

// InverseOption tunes Inverse and InversePivoted.
type InverseOption func(*inverseConfig)

type inverseConfig struct {
	tolerant bool
}

// WithPivotTolerance makes inversion reject any pivot whose magnitude is
// below the matrix Epsilon, not only an exact zero.
func WithPivotTolerance() InverseOption {
	return func(c *inverseConfig) { c.tolerant = true }
}

// elimination carries the working copy and its mirrored identity.
type elimination struct {
	tmp, inv *sparse.Matrix[float64]
	eps      float64
	tolerant bool
}

func newElimination(m *Matrix, opts []InverseOption) (*elimination, error) {
	var cfg inverseConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	n := m.Rows()
	inv, err := sparse.Identity[float64](n, sparse.WithEpsilon(m.Epsilon()))
	if err != nil {
		return nil, err
	}

	return &elimination{tmp: m.Matrix.Clone(), inv: inv, eps: m.Epsilon(), tolerant: cfg.tolerant}, nil
}

// singular reports whether pivot must abort the elimination.
func (e *elimination) singular(pivot float64) bool {
	if pivot == ZeroPivot {
		return true
	}

	return e.tolerant && math.Abs(pivot) < e.eps
}

// scale multiplies row i of both matrices by 1/pivot.
func (e *elimination) scale(i int, pivot float64) error {
	f := 1 / pivot
	if err := e.tmp.RowOperation(i, f, sparse.OpMultiply); err != nil {
		return err
	}

	return e.inv.RowOperation(i, f, sparse.OpMultiply)
}

// eliminate zeroes tmp[to][col] using row from, mirrored on inv.
func (e *elimination) eliminate(from, to, col int) error {
	factor, err := e.tmp.Get(to, col)
	if err != nil {
		return err
	}
	if factor == 0 {
		return nil
	}
	if err = e.tmp.AddScaledRow(from, to, -factor); err != nil {
		return err
	}

	return e.inv.AddScaledRow(from, to, -factor)
}

// swap exchanges two rows in both matrices.
func (e *elimination) swap(a, b int) error {
	if err := e.tmp.SwapRows(a, b); err != nil {
		return err
	}

	return e.inv.SwapRows(a, b)
}

// Inverse returns the inverse by pivot-free Gauss-Jordan elimination.
// Implementation:
//   - Stage 1: validate shape and clone m next to an identity of the same order.
//   - Stage 2: forward pass. Scale row i by 1/pivot, then clear column i below it.
//   - Stage 3: backward pass. Clear column i above the diagonal, bottom-up.
//   - Stage 4: the mirrored identity now holds the inverse.
//
// Inputs:
//   - opts: WithPivotTolerance to reject pivots below Epsilon as well.
//
// Returns:
//   - *Matrix with the receiver's Epsilon; m itself is never mutated.
//
// Errors:
//   - ErrNotSquare for a non-square matrix.
//   - ErrSingular when a pivot equals ZeroPivot (or is below Epsilon with
//     WithPivotTolerance). The wrapped message names the step.
//
// Determinism:
//   - Fixed i→j order; no row exchanges, so equal inputs give bit-equal output.
//
// Complexity: O(n³·log) time in the dense case.
func (m *Matrix) Inverse(opts ...InverseOption) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, linalgErrorf(opInverse, ErrNotSquare)
	}
	e, err := newElimination(m, opts)
	if err != nil {
		return nil, linalgErrorf(opInverse, err)
	}
	n := m.Rows()

	// Forward pass: unit diagonal, zeros below it.
	for i := 0; i < n; i++ {
		pivot, _ := e.tmp.Get(i, i)
		// Zero-pivot guard (no row exchange is attempted)
		if e.singular(pivot) {
			return nil, pivotErrorf(opInverse, i, pivot)
		}
		if err = e.scale(i, pivot); err != nil {
			return nil, linalgErrorf(opInverse, err)
		}
		for j := i + 1; j < n; j++ {
			if err = e.eliminate(i, j, i); err != nil {
				return nil, linalgErrorf(opInverse, err)
			}
		}
	}

	// Backward pass: zeros above the diagonal.
	for i := n - 1; i >= 1; i-- {
		for j := i - 1; j >= 0; j-- {
			if err = e.eliminate(i, j, i); err != nil {
				return nil, linalgErrorf(opInverse, err)
			}
		}
	}

	return Wrap(e.inv), nil
}

// InversePivoted returns the inverse by Gauss-Jordan elimination with partial
// pivoting: at step i the row with the largest |a[k][i]|, k >= i, is swapped
// into place before scaling, and column i is cleared from every other row.
//
// Errors:
//   - ErrNotSquare for a non-square matrix.
//   - ErrSingular when the best available pivot equals ZeroPivot (or is
//     below Epsilon with WithPivotTolerance).
func (m *Matrix) InversePivoted(opts ...InverseOption) (*Matrix, error) {
	if !m.IsSquare() {
		return nil, linalgErrorf(opInversePivoted, ErrNotSquare)
	}
	e, err := newElimination(m, opts)
	if err != nil {
		return nil, linalgErrorf(opInversePivoted, err)
	}
	n := m.Rows()

	for i := 0; i < n; i++ {
		best, bestAbs := i, -1.0
		for k := i; k < n; k++ {
			v, _ := e.tmp.Get(k, i)
			if a := math.Abs(v); a > bestAbs {
				best, bestAbs = k, a
			}
		}
		if e.singular(bestAbs) {
			return nil, pivotErrorf(opInversePivoted, i, bestAbs)
		}
		if err = e.swap(i, best); err != nil {
			return nil, linalgErrorf(opInversePivoted, err)
		}
		pivot, _ := e.tmp.Get(i, i)
		if err = e.scale(i, pivot); err != nil {
			return nil, linalgErrorf(opInversePivoted, err)
		}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			if err = e.eliminate(i, j, i); err != nil {
				return nil, linalgErrorf(opInversePivoted, err)
			}
		}
	}

	return Wrap(e.inv), nil
}

// Power returns m multiplied by itself n times; Power(1) is a copy of m.
//
// Errors:
//   - ErrInvalidExponent when n < 1.
//   - sparse.ErrDimensionMismatch when n > 1 and m is not square.
func (m *Matrix) Power(n int) (*Matrix, error) {
	if n < 1 {
		return nil, linalgErrorf(opPower, ErrInvalidExponent)
	}
	out := m.Clone()
	for i := 1; i < n; i++ {
		next, err := out.Mul(m)
		if err != nil {
			return nil, linalgErrorf(opPower, err)
		}
		out = next
	}

	return out, nil
}
