// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"iter"
	"strings"
)

// Formatting literals.
const (
	_fmtSep     = " "
	_fmtRowSep  = "\n"
	_fmtInitCap = 8
)

// formatValues writes the values of seq separated by single spaces.
func formatValues[T Number](seq iter.Seq[T]) string {
	var b strings.Builder
	writeValues(&b, seq)

	return b.String()
}

// formatRows renders n rows produced by row, one per line, each terminated by '\n'.
func formatRows[T Number](n int, row func(i int) iter.Seq[T]) string {
	var b strings.Builder
	b.Grow(n * _fmtInitCap)
	for i := 0; i < n; i++ {
		writeValues(&b, row(i))
		b.WriteString(_fmtRowSep)
	}

	return b.String()
}

func writeValues[T Number](b *strings.Builder, seq iter.Seq[T]) {
	first := true
	for x := range seq {
		if !first {
			b.WriteString(_fmtSep)
		}
		first = false
		fmt.Fprint(b, x) // %v: shortest repr for floats, plain digits for ints
	}
}

// zeros yields n zero values.
func zeros[T Number](n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		var zero T
		for i := 0; i < n; i++ {
			if !yield(zero) {
				return
			}
		}
	}
}
