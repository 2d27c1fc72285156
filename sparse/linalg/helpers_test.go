// SPDX-License-Identifier: MIT

package linalg_test

import (
	"testing"

	"github.com/katalvlaran/lvlsparse/sparse/linalg"
	"github.com/stretchr/testify/require"
)

// Reference fixtures with known determinants.
var (
	singular3 = [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}} // det 0
	fixture4  = [][]float64{
		{4, 3, 2, 2},
		{0, 1, -3, 3},
		{0, -1, 3, 3},
		{0, 3, 1, 1},
	} // det -240; zero pivot at step 2 without row exchanges
	fixture5 = [][]float64{
		{4, 5, 2, 5, 1},
		{1, 4, 3, 1, 0},
		{2, 1, 1, 3, 5},
		{2, 3, 1, 4, 5},
		{12, 1, 3, 4, 2},
	} // det 503
)

// mustRows builds a linalg matrix or fails the test.
func mustRows(tb testing.TB, rows [][]float64) *linalg.Matrix {
	tb.Helper()
	m, err := linalg.FromRows(rows)
	require.NoError(tb, err)

	return m
}

// mustIdentity builds I(n) or fails the test.
func mustIdentity(tb testing.TB, n int) *linalg.Matrix {
	tb.Helper()
	id, err := linalg.Identity(n)
	require.NoError(tb, err)

	return id
}
