// SPDX-License-Identifier: MIT

// Package lvlsparse is an in-memory sparse matrix engine: vectors and
// matrices that store only their non-zero cells while exposing a fixed
// logical extent.
//
// What is inside?
//
//	sparse/        generic Vector[T] and Matrix[T]: Get/Set, Add/Sub/Mul,
//	               Transpose, minors, row/column transforms, Identity,
//	               a dense reference type and conversions
//	sparse/linalg/ float64 specialization: scalar operators, tolerant
//	               equality, Determinant, Inverse, Power, gonum bridge
//	fixture/       named matrices from YAML, TOML or JSON files
//	cmd/lvlsparse/ command line: demo, det, inv, mul, bench, version
//
// Guarantees:
//
//   - Sparsity: a zero cell is never stored, and neither is an empty row.
//   - Value semantics: Clone and every operation return independent storage.
//   - Safety: invalid indices and shapes return sentinel errors (errors.Is);
//     nothing panics on user input except option constructors and the
//     gonum At contract.
//
// Quick example:
//
//	a, _ := linalg.FromRows([][]float64{{2, 1}, {7, 4}})
//	d, _ := a.Determinant()   // 1
//	inv, _ := a.Inverse()     // [[4 -1] [-7 2]]
//	p, _ := a.Mul(inv)        // identity within Epsilon
//
// Complexity notes:
//
//	Get/Set          O(log rows + log nnz(row))
//	Mul              O(stored×stored pairs + nnz rows·cols)
//	Determinant      O(n!) cofactor expansion (DeterminantLU: O(n³))
//	Inverse          O(n³·log) Gauss-Jordan without row exchanges
package lvlsparse
