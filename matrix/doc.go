// SPDX-License-Identifier: MIT

// Package matrix is a dense real-matrix algebra engine built around Gaussian
// elimination.
//
// The matrix package provides:
//
//   - Dense[T], an immutable row-major matrix over float32 or float64 with a
//     per-value near-zero tolerance (see Precision, WithEpsilon).
//   - Construction from a generator, a fill value or a literal grid; identity;
//     copy-on-write Set; sub-block extraction and augmentation.
//   - Elementary row operations (AddRowToRow, ScaleRow, SwapRows, MapRow).
//   - The elimination engine: ReducedRowEchelonForm, PivotLocations, Rank,
//     NullSpace and Inverse / RequireInverse.
//   - Dot, Transpose, Sum and an element-wise surface (Map, Zip, Add, Sub, ...).
//
// Values never change after construction; derived properties (transpose, sum,
// RREF, pivots, rank, null space) are computed on first use and cached, so a
// *Dense can be shared between goroutines without locking.
//
// Errors are package sentinels (ErrBadShape, ErrDimensionMismatch,
// ErrOutOfRange, ErrNotInvertible, ErrSingular, ErrNaNInf, ErrNilMatrix)
// wrapped with call-site context; match them with errors.Is. A singular
// square matrix is not an error for Inverse: it reports ok == false.
//
// Quick example:
//
//	m, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	inv, ok, err := m.Inverse()
package matrix
