// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the product, transpose and sum kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestDot_Sample(t *testing.T) {
	m := MustFromRows(t, sample)
	b := MustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}, {7, 8}})

	got, err := m.Dot(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{50, 60}, {114, 140}, {178, 220}}, got)
}

// TestDot_InterfaceFallback ensures that hiding the concrete type forces the
// interface fallback path and produces the same result as the *Dense fast path.
func TestDot_InterfaceFallback(t *testing.T) {
	t.Parallel()

	a := RandIntDense(t, 3, 5, 4, 7)
	b := RandIntDense(t, 5, 2, 4, 8)

	fast, err := matrix.Dot[float64](a, b)
	require.NoError(t, err)
	slowRight, err := matrix.Dot[float64](a, hide[float64]{b})
	require.NoError(t, err)
	slowLeft, err := matrix.Dot[float64](hide[float64]{a}, b)
	require.NoError(t, err)

	CompareExact(t, fast.ToRows(), slowRight)
	CompareExact(t, fast.ToRows(), slowLeft)
}

func TestDot_DimensionMismatch(t *testing.T) {
	m := MustFromRows(t, sample)
	_, err := m.Dot(m)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	require.ErrorContains(t, err, "(3, 4) and (3, 4)")

	_, err = m.Dot(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDot_IdentityNeutral(t *testing.T) {
	m := MustFromRows(t, sample)
	left, err := MustIdentity[float64](t, 3).Dot(m)
	require.NoError(t, err)
	right, err := m.Dot(MustIdentity[float64](t, 4))
	require.NoError(t, err)
	CompareExact(t, sample, left)
	CompareExact(t, sample, right)
}

func TestDot_ZeroInnerDimension(t *testing.T) {
	a, err := matrix.NewZeros[float64](2, 0)
	require.NoError(t, err)
	b := a.Transpose() // 0×2, legal as a derived value

	got, err := a.Dot(b)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0, 0}, {0, 0}}, got)
}

func TestTranspose(t *testing.T) {
	m := MustFromRows(t, sample)
	tr := m.Transpose()
	CompareExact(t, [][]float64{
		{1, 5, 9},
		{2, 6, 10},
		{3, 7, 11},
		{4, 8, 12},
	}, tr)

	require.Same(t, tr, m.T(), "transpose is cached")
	require.Same(t, tr, matrix.Transpose(m))
	require.Same(t, m, tr.Transpose(), "(mᵀ)ᵀ is m")
}

func TestTranspose_DotRule(t *testing.T) {
	a := RandIntDense(t, 3, 4, 3, 11)
	b := RandIntDense(t, 4, 2, 3, 12)

	ab, err := a.Dot(b)
	require.NoError(t, err)
	btat, err := b.T().Dot(a.T())
	require.NoError(t, err)
	require.True(t, ab.Transpose().Equal(btat), "(AB)ᵀ = BᵀAᵀ")
}

func TestSum(t *testing.T) {
	m := MustFromRows(t, sample)
	require.Equal(t, 78.0, m.Sum())
	require.Equal(t, 78.0, m.Transpose().Sum())

	z, err := matrix.NewZeros[float32](2, 0)
	require.NoError(t, err)
	require.Zero(t, z.Sum())
}
