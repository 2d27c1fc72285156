// SPDX-License-Identifier: MIT

package sparse_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/stretchr/testify/require"
)

// TestNewVectorAllZero verifies that every unset index reads as zero.
func TestNewVectorAllZero(t *testing.T) {
	v, err := sparse.NewVector[int](5)
	require.NoError(t, err)
	require.Equal(t, 5, v.Len())
	require.Equal(t, 0, v.RealSize())

	for i := 0; i < v.Len(); i++ {
		x, err := v.Get(i)
		require.NoError(t, err)
		require.Zero(t, x)
		require.False(t, v.Has(i))
	}

	_, err = sparse.NewVector[int](-1)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

// TestVectorSetZeroRemovesEntry checks that assigning zero restores sparsity.
func TestVectorSetZeroRemovesEntry(t *testing.T) {
	v := sparse.VectorOf(1.5, 0, 2.5)
	require.Equal(t, 2, v.RealSize())
	require.True(t, v.Has(0))
	require.False(t, v.Has(1)) // zero literal never stored

	require.NoError(t, v.Set(0, 0))
	require.Equal(t, 1, v.RealSize()) // dropped by exactly one
	require.False(t, v.Has(0))

	require.NoError(t, v.Set(1, 0)) // zero over zero is a no-op
	require.Equal(t, 1, v.RealSize())
}

// TestVectorGetOutOfRange ensures Get rejects indices outside [0, Len()).
func TestVectorGetOutOfRange(t *testing.T) {
	v := sparse.VectorOf(1, 2, 3)

	_, err := v.Get(3)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)

	_, err = v.Get(-1)
	require.ErrorIs(t, err, sparse.ErrIndexOutOfRange)

	require.ErrorIs(t, v.Set(-1, 4), sparse.ErrIndexOutOfRange)
}

// TestVectorSetGrows verifies that Set beyond Len() makes the index addressable.
func TestVectorSetGrows(t *testing.T) {
	v, err := sparse.NewVector[int](2)
	require.NoError(t, err)

	require.NoError(t, v.Set(4, 7))
	require.Equal(t, 5, v.Len())

	x, err := v.Get(4)
	require.NoError(t, err)
	require.Equal(t, 7, x)

	x, err = v.Get(3)
	require.NoError(t, err)
	require.Zero(t, x)

	// Growth also applies when assigning zero.
	require.NoError(t, v.Set(9, 0))
	require.Equal(t, 10, v.Len())
	require.Equal(t, 1, v.RealSize())
}

// TestVectorFilled checks fill construction for zero and non-zero fills.
func TestVectorFilled(t *testing.T) {
	v, err := sparse.NewVectorFilled(4, 3)
	require.NoError(t, err)
	require.Equal(t, []int{3, 3, 3, 3}, v.Dense())
	require.Equal(t, 4, v.RealSize())

	z, err := sparse.NewVectorFilled(4, 0.0)
	require.NoError(t, err)
	require.Equal(t, 0, z.RealSize())
	require.Equal(t, 4, z.Len())
}

// TestVectorEqual covers value semantics of equality.
func TestVectorEqual(t *testing.T) {
	a := sparse.VectorOf(0, 1, 0, 2)
	b, err := sparse.NewVector[int](4)
	require.NoError(t, err)
	require.NoError(t, b.Set(1, 1))
	require.NoError(t, b.Set(3, 2))

	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))

	c := sparse.VectorOf(0, 1, 0, 2, 0) // same stored entries, longer
	require.False(t, a.Equal(c))

	require.NoError(t, b.Set(0, 5))
	require.False(t, a.Equal(b))
}

// TestVectorCloneIndependence ensures Clone does not share storage.
func TestVectorCloneIndependence(t *testing.T) {
	a := sparse.VectorOf(1, 2, 3)
	b := a.Clone()
	require.NoError(t, b.Set(0, 9))

	x, err := a.Get(0)
	require.NoError(t, err)
	require.Equal(t, 1, x)
	require.False(t, a.Equal(b))
}

// TestVectorIterationSynthesizesZeros checks the lazy dense sequences.
func TestVectorIterationSynthesizesZeros(t *testing.T) {
	v, err := sparse.NewVector[int](6)
	require.NoError(t, err)
	require.NoError(t, v.Set(1, 4))
	require.NoError(t, v.Set(4, 8))

	require.Equal(t, []int{0, 4, 0, 0, 8, 0}, slices.Collect(v.Values()))
	// Restartable: a second pass yields the same values.
	require.Equal(t, []int{0, 4, 0, 0, 8, 0}, slices.Collect(v.Values()))

	var idx []int
	for i, x := range v.All() {
		idx = append(idx, i)
		if x == 8 {
			break // early stop honoured
		}
	}
	require.Equal(t, []int{0, 1, 2, 3, 4}, idx)

	var stored []int
	for i := range v.NonZero() {
		stored = append(stored, i)
	}
	require.Equal(t, []int{1, 4}, stored)
}

// TestIteratorOutOfRange ensures the cursor fails past the logical size.
func TestIteratorOutOfRange(t *testing.T) {
	v := sparse.VectorOf(0.0, 2.0)
	it := v.Iter()

	_, err := it.Value() // before the first Next
	require.ErrorIs(t, err, sparse.ErrIteratorOutOfRange)

	var got []float64
	for it.Next() {
		x, err := it.Value()
		require.NoError(t, err)
		got = append(got, x)
	}
	require.Equal(t, []float64{0, 2}, got)
	require.Equal(t, 2, it.Index())

	_, err = it.Value()
	require.ErrorIs(t, err, sparse.ErrIteratorOutOfRange)
	require.False(t, it.Next()) // stays exhausted

	it.Reset()
	require.True(t, it.Next())
	require.Equal(t, 0, it.Index())
}

// TestVectorString checks the space-separated rendering.
func TestVectorString(t *testing.T) {
	require.Equal(t, "1 0 2.5", sparse.VectorOf(1, 0, 2.5).String())
	require.Equal(t, "", sparse.VectorOf[int]().String())
}
