// SPDX-License-Identifier: MIT

package sparse

import "math"

// Number is the element constraint for vectors and matrices: every Go integer
// and floating-point kind. Each of them has a zero value (the additive
// identity), supports + - * / and converts to float64 for tolerance checks.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Operation selects the elementwise transform applied by RowOperation and
// ColOperation.
type Operation int

// Supported elementwise operations.
const (
	OpAdd Operation = iota
	OpSubtract
	OpMultiply
	OpDivide
)

// String returns the operation name.
func (op Operation) String() string {
	switch op {
	case OpAdd:
		return "Add"
	case OpSubtract:
		return "Subtract"
	case OpMultiply:
		return "Multiply"
	case OpDivide:
		return "Divide"
	default:
		return "Unknown"
	}
}

// negligible reports whether v is a zero divisor under tolerance eps.
// An exact zero is always negligible so integer division can never panic.
func negligible[T Number](v T, eps float64) bool {
	var zero T
	if v == zero {
		return true
	}

	return math.Abs(float64(v)) < eps
}

// applyOp computes x <op> y. Divisor validation is the caller's job.
func applyOp[T Number](op Operation, x, y T) (T, error) {
	switch op {
	case OpAdd:
		return x + y, nil
	case OpSubtract:
		return x - y, nil
	case OpMultiply:
		return x * y, nil
	case OpDivide:
		return x / y, nil
	default:
		var zero T
		return zero, ErrUnknownOperation
	}
}
