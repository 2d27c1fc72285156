// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the sparse kernels.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlsparse/sparse"
	"github.com/stretchr/testify/require"
)

// mustRows builds a matrix from a nested literal or fails the test.
func mustRows[T sparse.Number](tb testing.TB, rows [][]T, opts ...sparse.Option) *sparse.Matrix[T] {
	tb.Helper()
	m, err := sparse.FromRows(rows, opts...)
	require.NoError(tb, err)

	return m
}

// mustMatrix allocates an all-zero r×c matrix or fails the test.
func mustMatrix[T sparse.Number](tb testing.TB, r, c int) *sparse.Matrix[T] {
	tb.Helper()
	m, err := sparse.NewMatrix[T](r, c)
	require.NoError(tb, err)

	return m
}

// mustGet reads a cell or fails the test.
func mustGet[T sparse.Number](tb testing.TB, m *sparse.Matrix[T], i, j int) T {
	tb.Helper()
	v, err := m.Get(i, j)
	require.NoError(tb, err)

	return v
}

// randomSparse fills an r×c matrix with integers in [1,9] at the given
// density using a fixed seed.
func randomSparse(tb testing.TB, r, c int, density float64, seed int64) *sparse.Matrix[float64] {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustMatrix[float64](tb, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if rng.Float64() < density {
				require.NoError(tb, m.Set(i, j, float64(rng.Intn(9)+1)))
			}
		}
	}

	return m
}
