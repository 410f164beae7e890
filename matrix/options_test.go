// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestOptions_Defaults(t *testing.T) {
	o := matrix.NewMatrixOptions()
	eps, set := o.Epsilon()
	require.False(t, set)
	require.Zero(t, eps)
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.NewMatrixOptions(
		matrix.WithEpsilon(1e-3),
		matrix.WithNoValidateNaNInf(),
		matrix.WithEpsilon(1e-4),
		matrix.WithValidateNaNInf(),
	)
	eps, set := o.Epsilon()
	require.True(t, set)
	require.Equal(t, 1e-4, eps)
	require.True(t, o.ValidateNaNInf())
}

func TestWithEpsilon_PanicsOnNonsense(t *testing.T) {
	for _, eps := range []float64{-1, math.NaN(), math.Inf(1)} {
		require.Panics(t, func() { matrix.WithEpsilon(eps) }, "eps=%v", eps)
	}
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
}

func TestWithEpsilon_AppliesToMatrix(t *testing.T) {
	m := MustFromRows(t, [][]float64{{1, 0}, {0, 1e-5}}, matrix.WithEpsilon(1e-4))
	require.Equal(t, 1e-4, m.Epsilon())
	// 1e-5 is below the tolerance, so the second row has no pivot.
	require.Equal(t, 1, m.Rank())

	strict := MustFromRows(t, [][]float64{{1, 0}, {0, 1e-5}})
	require.Equal(t, 2, strict.Rank())
}

func TestWithEpsilon_InheritedByDerived(t *testing.T) {
	m := MustFromRows(t, sample, matrix.WithEpsilon(1e-3))
	require.Equal(t, 1e-3, m.ReducedRowEchelonForm().Epsilon())
	require.Equal(t, 1e-3, m.Transpose().Epsilon())
	require.Equal(t, 1e-3, m.NullSpace().Epsilon())

	next, err := m.AddRowToRow(0, 1, 1)
	require.NoError(t, err)
	require.Equal(t, 1e-3, next.Epsilon())
}
