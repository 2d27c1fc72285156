// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/katalvlaran/lvlsparse/sparse/linalg"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestGonumMatrixContract checks Dims, At and T.
func TestGonumMatrixContract(t *testing.T) {
	m := mustRows(t, [][]float64{{1, 0, 2}, {0, 3, 0}})

	r, c := m.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 2.0, m.At(0, 2))
	require.Zero(t, m.At(1, 0))

	tr := m.T()
	r, c = tr.Dims()
	require.Equal(t, 3, r)
	require.Equal(t, 2, c)
	require.Equal(t, 2.0, tr.At(2, 0))
	require.True(t, mat.Equal(tr, m.Transpose().ToGonum()))

	require.Panics(t, func() { m.At(2, 0) })
	require.Panics(t, func() { m.At(0, -1) })
}

// TestGonumRoundTrip copies through *mat.Dense and back.
func TestGonumRoundTrip(t *testing.T) {
	m := mustRows(t, fixture4)
	d := m.ToGonum()
	require.True(t, mat.Equal(m, d))

	back, err := linalg.FromGonum(d, sparse.WithEpsilon(1e-9))
	require.NoError(t, err)
	require.True(t, back.Equal(m))
	require.Equal(t, m.RealSize(), back.RealSize())
	require.Equal(t, 1e-9, back.Epsilon())

	_, err = linalg.FromGonum(nil)
	require.ErrorIs(t, err, sparse.ErrNilMatrix)
}

// TestGonumProductAgrees multiplies with gonum and compares.
func TestGonumProductAgrees(t *testing.T) {
	a := mustRows(t, fixture5)
	b := a.Transpose()

	got, err := a.Mul(b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(a, b)
	require.True(t, mat.EqualApprox(got, &want, 1e-12))
}
