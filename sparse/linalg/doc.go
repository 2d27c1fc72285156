// SPDX-License-Identifier: MIT

// Package linalg specializes the generic sparse matrix for float64 and adds the
// operations that need ordering, division and a zero tolerance:
//
//   - scalar elementwise operators (AddScalar, SubScalar, MulScalar, DivScalar,
//     PowElements);
//   - tolerant equality (every cell pair within Epsilon);
//   - Determinant by cofactor expansion along row 0 and Inverse by pivot-free
//     Gauss-Jordan elimination, both reproducing the reference numeric results;
//   - opt-in variants DeterminantLU (gonum LU, O(n³)) and InversePivoted
//     (partial pivoting), named separately so they never replace the
//     reference algorithms silently;
//   - a bridge to gonum.org/v1/gonum/mat: *Matrix satisfies mat.Matrix.
//
// A Matrix embeds *sparse.Matrix[float64], so every read-only accessor of the
// generic type (Get, Set, Rows, RealSize, String, ...) is available directly.
// Operations that produce a new matrix are shadowed to return *Matrix.
//
// Example:
//
//	a, _ := linalg.FromRows([][]float64{{2, 1}, {7, 4}})
//	inv, _ := a.Inverse()
//	fmt.Print(inv) // 4 -1 / -7 2
package linalg
