// SPDX-License-Identifier: MIT

package linalg

import (
	"errors"
	"fmt"
)

var (
	// ErrNotSquare indicates a determinant or inverse requested on a non-square matrix.
	ErrNotSquare = errors.New("linalg: matrix must be square")

	// ErrSingular indicates a zero pivot during inversion.
	ErrSingular = errors.New("linalg: matrix is singular")

	// ErrInvalidExponent indicates Power with an exponent below 1.
	ErrInvalidExponent = errors.New("linalg: exponent must be >= 1")
)

const (
	opNew            = "New"
	opFromRows       = "FromRows"
	opIdentity       = "Identity"
	opDivScalar      = "DivScalar"
	opDeterminant    = "Determinant"
	opDeterminantLU  = "DeterminantLU"
	opInverse        = "Inverse"
	opInversePivoted = "InversePivoted"
	opPower          = "Power"
	opFromGonum      = "FromGonum"
)

// linalgErrorf wraps err with an operation tag, preserving it for errors.Is.
func linalgErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// pivotErrorf reports the elimination step at which a pivot vanished.
func pivotErrorf(tag string, step int, pivot float64) error {
	return fmt.Errorf("%s: pivot %g at step %d: %w", tag, pivot, step, ErrSingular)
}
