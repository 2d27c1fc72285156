// SPDX-License-Identifier: MIT
// Package linalg: determinants.
//
// Determinant is the reference algorithm: Laplace expansion along row 0,
// det = Σ_j (-1)^j · a[0][j] · det(minor(0, j)), recursing down to 1×1.
// Unstored cells of row 0 contribute exactly zero and are skipped, which keeps
// the numeric result identical while pruning whole subtrees on sparse input.
// The term count is still O(n!) in the dense case.
//
// DeterminantLU is the O(n³) alternative backed by gonum's LU factorization.
// Its result differs from Determinant by rounding only.

package linalg

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlsparse/sparse"
)

// Determinant returns the determinant by cofactor expansion along row 0.
//
// Errors:
//   - ErrNotSquare for a non-square matrix.
//
// Complexity: O(n!) worst case; recursion depth n.
func (m *Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, linalgErrorf(opDeterminant, ErrNotSquare)
	}
	d, err := cofactor(m.Matrix)
	if err != nil {
		return 0, linalgErrorf(opDeterminant, err)
	}

	return d, nil
}

// cofactor expands a square matrix along its first row.
// Implementation:
//   - Stage 1: a 1×1 matrix is its own determinant.
//   - Stage 2: for each stored cell (0, j) in ascending j, recurse on
//     minor(0, j) and add (-1)^j · a[0][j] · det(minor).
//
// Inputs:
//   - a: square, at least 1×1; validated by the caller.
//
// Returns:
//   - the determinant; an empty row 0 gives exactly 0.
//
// Determinism:
//   - Terms are summed in ascending j, so rounding is reproducible.
func cofactor(a *sparse.Matrix[float64]) (float64, error) {
	// Base case
	if a.Rows() == 1 {
		return a.Get(0, 0)
	}
	var det float64
	// Unstored cells of row 0 would add exact zeros and are skipped.
	for j, x := range a.RowEntries(0) {
		minor, err := a.SubMatrix(0, j)
		if err != nil {
			return 0, err
		}
		sub, err := cofactor(minor)
		if err != nil {
			return 0, err
		}
		sign := 1.0
		if j%2 == 1 {
			sign = -1.0
		}
		det = det + sign*x*sub
	}

	return det, nil
}

// IsInvertible reports whether Determinant() is exactly non-zero.
// Non-square matrices are never invertible. A matrix that needs a row
// exchange may report true and still fail Inverse; use InversePivoted.
func (m *Matrix) IsInvertible() bool {
	d, err := m.Determinant()
	return err == nil && d != 0
}

// DeterminantLU returns the determinant from an LU factorization.
//
// Errors:
//   - ErrNotSquare for a non-square matrix.
//
// Complexity: O(n³) time, O(n²) space (dense factorization).
func (m *Matrix) DeterminantLU() (float64, error) {
	if !m.IsSquare() {
		return 0, linalgErrorf(opDeterminantLU, ErrNotSquare)
	}
	var lu mat.LU
	lu.Factorize(m)

	return lu.Det(), nil
}
