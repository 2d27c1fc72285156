// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every algorithm returns one of these sentinels (possibly wrapped with an
// operation tag via %w); tests match them with errors.Is. Nothing in this
// package panics on user-triggered conditions except option constructors.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned when a vector index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrIteratorOutOfRange is returned when an iterator is read past the logical size.
	ErrIteratorOutOfRange = errors.New("sparse: iterator out of range")

	// ErrRowOutOfRange indicates a row index outside [0, Rows()).
	ErrRowOutOfRange = errors.New("sparse: row out of range")

	// ErrColOutOfRange indicates a column index outside [0, Cols()).
	ErrColOutOfRange = errors.New("sparse: col out of range")

	// ErrShapeMismatch indicates Add/Sub operands with different shapes.
	ErrShapeMismatch = errors.New("sparse: matrices are of different sizes")

	// ErrDimensionMismatch indicates Mul operands where lhs.Cols() != rhs.Rows().
	ErrDimensionMismatch = errors.New("sparse: invalid sizes for multiplication")

	// ErrInvalidInitializer indicates an empty nested literal passed to FromRows.
	ErrInvalidInitializer = errors.New("sparse: invalid initializer")

	// ErrInvalidDimensions indicates non-positive dimensions in a constructor.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be > 0")

	// ErrBadShape indicates an operation undefined for the matrix shape
	// (e.g., a minor of a matrix with fewer than 2 rows or columns).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrDivisionByZero indicates division by a value below the tolerance.
	ErrDivisionByZero = errors.New("sparse: division by zero")

	// ErrUnknownOperation indicates an Operation value outside the defined set.
	ErrUnknownOperation = errors.New("sparse: unknown operation")

	// ErrNilMatrix indicates a nil matrix or vector argument.
	ErrNilMatrix = errors.New("sparse: nil argument")
)

// Operation tags used for uniform error wrapping.
const (
	opNewVector    = "NewVector"
	opNewMatrix    = "NewMatrix"
	opFromRows     = "FromRows"
	opFromVector   = "FromVector"
	opVectorSet    = "Vector.Set"
	opVectorGet    = "Vector.Get"
	opIterValue    = "Iterator.Value"
	opGet          = "Get"
	opSet          = "Set"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMulVec       = "MulVec"
	opSubMatrix    = "SubMatrix"
	opRow          = "Row"
	opCol          = "Col"
	opRowOperation = "RowOperation"
	opColOperation = "ColOperation"
	opAddScaledRow = "AddScaledRow"
	opSwapRows     = "SwapRows"
	opNewDense     = "NewDense"
	opDenseMul     = "Dense.Mul"
	opFromDense    = "FromDense"
	opIdentity     = "Identity"
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
// Call only with a non-nil err.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with an operation tag and the offending coordinates.
func cellErrorf(tag string, row, col int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", tag, row, col, err)
}

// indexErrorf wraps err with an operation tag and a single index.
func indexErrorf(tag string, index int, err error) error {
	return fmt.Errorf("%s(%d): %w", tag, index, err)
}
