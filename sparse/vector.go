// SPDX-License-Identifier: MIT

// Package sparse - Vector: one-dimensional sparse container.
//
// Purpose:
//   - Expose a logical range [0, Len()) while storing only non-zero entries.
//   - Keep the sparsity invariant at the single mutation site (set).
//
// Complexity quicksheet:
//   - Get/Set/Has: O(log nnz); RealSize/Len: O(1); Clone: O(nnz); Equal: O(Len·log nnz).
package sparse

import (
	"fmt"
	"iter"
)

// Vector is a sparse vector with logical size Len().
// The zero value is not usable; construct with NewVector, NewVectorFilled or VectorOf.
type Vector[T Number] struct {
	size int       // logical size
	data *store[T] // non-zero entries only
}

// NewVector creates an all-zero vector of the given logical size.
//
// Errors:
//   - ErrInvalidDimensions when size < 0.
func NewVector[T Number](size int) (*Vector[T], error) {
	if size < 0 {
		return nil, sparseErrorf(opNewVector, ErrInvalidDimensions)
	}

	return newVector[T](size), nil
}

// NewVectorFilled creates a vector with every position set to fill.
// A zero fill produces an empty store.
func NewVectorFilled[T Number](size int, fill T) (*Vector[T], error) {
	v, err := NewVector[T](size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < size; i++ {
		v.set(i, fill)
	}

	return v, nil
}

// VectorOf creates a vector whose size is len(values), assigned in order.
func VectorOf[T Number](values ...T) *Vector[T] {
	v := newVector[T](len(values))
	for i, x := range values {
		v.set(i, x)
	}

	return v
}

func newVector[T Number](size int) *Vector[T] {
	return &Vector[T]{size: size, data: newStore[T]()}
}

// Len returns the logical size.
func (v *Vector[T]) Len() int { return v.size }

// RealSize returns the number of physically stored (non-zero) entries.
func (v *Vector[T]) RealSize() int { return v.data.len() }

// Has reports whether index is physically stored.
func (v *Vector[T]) Has(index int) bool { return v.data.has(index) }

// Set stores value at index. Assigning zero removes any stored entry.
// Setting an index at or beyond Len() grows the logical size to index+1.
//
// Errors:
//   - ErrIndexOutOfRange when index < 0.
func (v *Vector[T]) Set(index int, value T) error {
	if index < 0 {
		return indexErrorf(opVectorSet, index, ErrIndexOutOfRange)
	}
	v.set(index, value)

	return nil
}

// set is the single mutation site; index must be non-negative.
func (v *Vector[T]) set(index int, value T) {
	if index >= v.size {
		v.size = index + 1
	}
	var zero T
	if value == zero {
		v.data.remove(index)
		return
	}
	v.data.put(index, value)
}

// Get returns the value at index, or zero when nothing is stored there.
//
// Errors:
//   - ErrIndexOutOfRange when index < 0 or index >= Len().
func (v *Vector[T]) Get(index int) (T, error) {
	if index < 0 || index >= v.size {
		var zero T
		return zero, indexErrorf(opVectorGet, index, ErrIndexOutOfRange)
	}
	x, _ := v.data.get(index)

	return x, nil
}

// at reads an in-range index without validation.
func (v *Vector[T]) at(index int) T {
	x, _ := v.data.get(index)
	return x
}

// Equal reports whether both vectors have the same size and the same value
// at every position. Unstored positions compare as zero.
func (v *Vector[T]) Equal(other *Vector[T]) bool {
	if v == nil || other == nil {
		return v == other
	}
	if v.size != other.size {
		return false
	}
	// Stored sets must coincide because zeros are never stored.
	if v.data.len() != other.data.len() {
		return false
	}
	equal := true
	v.data.ascend(func(i int, x T) bool {
		y, ok := other.data.get(i)
		equal = ok && x == y
		return equal
	})

	return equal
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{size: v.size, data: v.data.clone()}
}

// Values yields exactly Len() values in index order, synthesizing zeros for
// unstored positions. The sequence is restartable and allocates nothing dense.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.All() {
			if !yield(x) {
				return
			}
		}
	}
}

// All yields (index, value) for every logical position in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var zero T
		next := 0 // first index not yet yielded
		stopped := false
		v.data.ascend(func(i int, x T) bool {
			if i >= v.size {
				return false
			}
			for ; next < i; next++ {
				if !yield(next, zero) {
					stopped = true
					return false
				}
			}
			next = i + 1
			if !yield(i, x) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
		for ; next < v.size; next++ {
			if !yield(next, zero) {
				return
			}
		}
	}
}

// NonZero yields only the physically stored (index, value) pairs.
func (v *Vector[T]) NonZero() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		v.data.ascend(func(i int, x T) bool { return yield(i, x) })
	}
}

// Dense materializes the vector into a fresh slice of length Len().
func (v *Vector[T]) Dense() []T {
	out := make([]T, v.size)
	v.data.ascend(func(i int, x T) bool {
		out[i] = x
		return true
	})

	return out
}

// String renders the values separated by single spaces.
func (v *Vector[T]) String() string {
	return formatValues(v.Values())
}

// GoString supports %#v with the shape and stored entries.
func (v *Vector[T]) GoString() string {
	return fmt.Sprintf("sparse.Vector{size: %d, nnz: %d}", v.size, v.data.len())
}
