// SPDX-License-Identifier: MIT

// Package sparse provides sparse, logically dense vectors and matrices.
//
// What & Why:
//
//	A Vector or Matrix exposes a fixed logical extent (every index in range is
//	readable) while only physically storing entries that differ from the zero
//	value. Memory therefore grows with the number of non-zero cells (nnz), not
//	with rows×cols.
//
// Storage:
//   - Vector[T] keeps an ordered index→value store (B-tree) plus a logical size.
//   - Matrix[T] keeps an ordered store of row vectors; a row that holds only
//     zeros is dropped from the outer store, so sparsity propagates to both levels.
//   - Assigning the zero value to a stored index deletes it. This invariant is
//     enforced at every mutation site.
//
// Semantics:
//   - Value semantics: Clone produces fully independent storage; rows are never
//     shared between matrices.
//   - Public accessors return sentinel errors (errors.Is) instead of panicking.
//   - Multiplication only visits stored×stored pairs.
//
// Complexity quicksheet:
//   - Vector Get/Set/Has: O(log nnz).
//   - Matrix Get/Set: O(log rows + log nnz(row)).
//   - Add/Sub: O(nnz(B)·log) over a clone of A.
//   - Mul: O(Σ_k nnz(A col k)·nnz(B row k)) plus O(cols) per non-zero output row.
//   - Transpose / SubMatrix: O(nnz·log).
//
// The float64 specialization (determinant, inverse, scalar operators and
// tolerant equality) lives in the linalg subpackage.
package sparse
