// SPDX-License-Identifier: MIT

package sparse

// Iterator is an explicit, restartable cursor over the logical positions of a
// Vector. It starts before the first position:
//
//	it := v.Iter()
//	for it.Next() {
//		x, _ := it.Value()
//	}
//
// The cursor reads the vector lazily; mutating the vector while iterating is
// allowed and observed by later Value calls.
type Iterator[T Number] struct {
	vec   *Vector[T]
	index int
}

// Iter returns a cursor positioned before index 0.
func (v *Vector[T]) Iter() *Iterator[T] {
	return &Iterator[T]{vec: v, index: -1}
}

// Next advances the cursor and reports whether it is within the logical size.
func (it *Iterator[T]) Next() bool {
	if it.index < it.vec.size {
		it.index++
	}

	return it.index < it.vec.size
}

// Index returns the current position (-1 before the first Next).
func (it *Iterator[T]) Index() int { return it.index }

// Value returns the value at the current position, synthesizing zero for
// unstored positions.
//
// Errors:
//   - ErrIteratorOutOfRange when the cursor is outside [0, Len()).
func (it *Iterator[T]) Value() (T, error) {
	if it.index < 0 || it.index >= it.vec.size {
		var zero T
		return zero, indexErrorf(opIterValue, it.index, ErrIteratorOutOfRange)
	}

	return it.vec.at(it.index), nil
}

// Reset moves the cursor back before index 0.
func (it *Iterator[T]) Reset() { it.index = -1 }
