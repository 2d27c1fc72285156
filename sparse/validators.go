// SPDX-License-Identifier: MIT
// Package sparse: canonical shape checks.
//
// Validators return plain sentinels (no wrapping) so call sites can wrap
// uniformly with their own operation tag.

package sparse

// validateNotNil ensures both operands are non-nil.
func validateNotNil[T Number](ms ...*Matrix[T]) error {
	for _, m := range ms {
		if m == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions (Add/Sub).
func validateSameShape[T Number](a, b *Matrix[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.r != b.r || a.c != b.c {
		return ErrShapeMismatch
	}

	return nil
}

// validateMulCompatible ensures a.Cols() == b.Rows().
func validateMulCompatible[T Number](a, b *Matrix[T]) error {
	if err := validateNotNil(a, b); err != nil {
		return err
	}
	if a.c != b.r {
		return ErrDimensionMismatch
	}

	return nil
}

// validateMinor ensures the matrix has a defined (rows-1)×(cols-1) minor.
func validateMinor[T Number](m *Matrix[T]) error {
	if m.r < 2 || m.c < 2 {
		return ErrBadShape
	}

	return nil
}
