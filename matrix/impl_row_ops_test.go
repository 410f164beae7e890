// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestAddRowToRow(t *testing.T) {
	m := MustFromRows(t, sample)
	next, err := m.AddRowToRow(0, -1, 2)
	require.NoError(t, err)

	row, err := next.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{8, 8, 8, 8}, row)
	CompareExact(t, sample, m)
}

func TestAddRowToRow_SameRowAndZeroMultiple(t *testing.T) {
	m := MustFromRows(t, sample)

	doubled, err := m.AddRowToRow(1, 1, 1)
	require.NoError(t, err)
	row, _ := doubled.Row(1)
	require.Equal(t, []float64{10, 12, 14, 16}, row)

	unchanged, err := m.AddRowToRow(0, 0, 2)
	require.NoError(t, err)
	CompareExact(t, sample, unchanged)
}

func TestScaleAndSwapRows(t *testing.T) {
	m := MustFromRows(t, sample)

	scaled, err := m.ScaleRow(0, 2)
	require.NoError(t, err)
	row, _ := scaled.Row(0)
	require.Equal(t, []float64{2, 4, 6, 8}, row)

	swapped, err := m.SwapRows(0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{
		{9, 10, 11, 12},
		{5, 6, 7, 8},
		{1, 2, 3, 4},
	}, swapped)

	self, err := m.SwapRows(1, 1)
	require.NoError(t, err)
	CompareExact(t, sample, self)
}

func TestMapRow(t *testing.T) {
	m := MustFromRows(t, sample)
	next, err := m.MapRow(1, func(v float64) float64 { return v - 5 })
	require.NoError(t, err)
	row, _ := next.Row(1)
	require.Equal(t, []float64{0, 1, 2, 3}, row)

	copied, err := m.MapRow(0, nil)
	require.NoError(t, err)
	require.NotSame(t, m, copied)
	CompareExact(t, sample, copied)
}

func TestRowOps_Errors(t *testing.T) {
	m := MustFromRows(t, sample)

	_, err := m.AddRowToRow(3, 1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.AddRowToRow(0, 1, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.ScaleRow(5, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.SwapRows(0, 3)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.MapRow(-1, nil)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.ScaleRow(0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = m.AddRowToRow(0, math.NaN(), 1)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestRowOps_PreserveRank(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		m := RandIntDense(t, 4, 5, 4, seed)
		want := m.Rank()

		a, err := m.AddRowToRow(0, 3, 2)
		require.NoError(t, err)
		s, err := a.ScaleRow(1, -2)
		require.NoError(t, err)
		w, err := s.SwapRows(0, 3)
		require.NoError(t, err)
		require.Equal(t, want, w.Rank(), "seed %d", seed)
	}
}
