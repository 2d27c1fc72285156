// SPDX-License-Identifier: MIT

package sparse

// Identity returns the n×n identity matrix: 1 on the diagonal, zero elsewhere.
// Only the n diagonal cells are stored.
//
// Errors:
//   - ErrInvalidDimensions when n <= 0.
func Identity[T Number](n int, opts ...Option) (*Matrix[T], error) {
	if n <= 0 {
		return nil, sparseErrorf(opIdentity, ErrInvalidDimensions)
	}
	m := newMatrix[T](n, n, gatherOptions(opts...))
	for i := 0; i < n; i++ {
		m.set(i, i, 1)
	}

	return m, nil
}
