// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// closeTol is the absolute tolerance used by property checks on float64 results.
const closeTol = 1e-8

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide[T matrix.Float] struct{ matrix.Matrix[T] }

// sample is the 3×4 fixture shared by the elimination scenarios.
var sample = [][]float64{
	{1, 2, 3, 4},
	{5, 6, 7, 8},
	{9, 10, 11, 12},
}

// MustFromRows builds a matrix from a literal grid or fails the test.
func MustFromRows[T matrix.Float](t testing.TB, grid [][]T, opts ...matrix.Option) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(grid, opts...)
	require.NoError(t, err, "FromRows(%v)", grid)

	return m
}

// MustIdentity returns I_n or fails the test.
func MustIdentity[T matrix.Float](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewIdentity[T](n)
	require.NoError(t, err, "NewIdentity(%d)", n)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Float](t testing.TB, m matrix.Matrix[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// CompareExact asserts m equals want cell by cell (no tolerance).
func CompareExact[T matrix.Float](t testing.TB, want [][]T, m matrix.Matrix[T]) {
	t.Helper()
	r, c := m.Shape()
	require.Equal(t, len(want), r, "rows")
	for i := range want {
		require.Equal(t, len(want[i]), c, "cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "cell (%d,%d)", i, j)
		}
	}
}

// RequireClose asserts m equals want within closeTol.
func RequireClose(t testing.TB, want [][]float64, m matrix.Matrix[float64]) {
	t.Helper()
	r, c := m.Shape()
	require.Equal(t, len(want), r, "rows")
	for i := range want {
		require.Equal(t, len(want[i]), c, "cols of row %d", i)
		for j := range want[i] {
			require.InDelta(t, want[i][j], MustAt(t, m, i, j), closeTol, "cell (%d,%d)", i, j)
		}
	}
}

// RequireZero asserts every cell of m is within closeTol of 0.
func RequireZero(t testing.TB, m *matrix.Dense[float64]) {
	t.Helper()
	m.Do(func(i, j int, v float64) bool {
		require.InDelta(t, 0.0, v, closeTol, "cell (%d,%d)", i, j)
		return true
	})
}

// RandIntDense builds an r×c matrix of small integers in [-lim, lim] from seed.
// Integer entries keep the elimination well conditioned for property checks.
func RandIntDense(t testing.TB, r, c, lim int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.New(r, c, func(_, _ int) float64 {
		return float64(rng.Intn(2*lim+1) - lim)
	})
	require.NoError(t, err)

	return m
}

// RankDeficient builds an r×c integer matrix whose last row is the sum of the
// first two, so its rank is at most r-1 (r >= 3).
func RankDeficient(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()

	return DependentLastRow(t, RandIntDense(t, r, c, 3, seed))
}

// DependentLastRow returns m with its last row replaced by row0 + row1.
func DependentLastRow(t testing.TB, m *matrix.Dense[float64]) *matrix.Dense[float64] {
	t.Helper()
	base := m.ToRows()
	r := len(base)
	for j := range base[r-1] {
		base[r-1][j] = base[0][j] + base[1][j]
	}

	return MustFromRows(t, base)
}

// ToSingle converts an integer fixture to float32; small integers convert exactly.
func ToSingle(m *matrix.Dense[float64]) *matrix.Dense[float32] {
	return matrix.Convert[float32](m)
}

// MaxAbs returns the largest |v| over m as float64 (0 for an empty matrix).
func MaxAbs[T matrix.Float](m *matrix.Dense[T]) float64 {
	var peak float64
	m.Do(func(_, _ int, v T) bool {
		if a := math.Abs(float64(v)); a > peak {
			peak = a
		}
		return true
	})

	return peak
}
