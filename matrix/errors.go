// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the wrapping helpers
// used across the matrix package. All operations MUST return these sentinels
// (possibly wrapped with %w) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions; panics are reserved
// for nonsensical option values (programmer error), see options.go.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Context is attached at the detection site with
// denseErrorf / matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape -> index -> NaN/Inf -> dimension mismatch -> invertibility.

var (
	// ErrBadShape is returned when a requested shape is invalid: zero rows at a
	// public constructor, a ragged literal grid, or a block window outside the matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) and row operations MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub on different shapes, or Dot where a.Cols != b.Rows.
	// Returned errors always carry both shapes as (rows, columns) pairs.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotInvertible signals that an inverse was requested for a non-square matrix.
	// A singular square matrix is NOT reported with this error (see Inverse).
	ErrNotInvertible = errors.New("matrix: matrix is not invertible")

	// ErrSingular is returned by RequireInverse when the square input has no inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (construction, Set, elementwise ops).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// The result formats as "Dense.<method>(row,col): <err>" and keeps err for errors.Is.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// shapeMismatchf reports a dimension mismatch with both operand shapes.
// Format: "matrix: dimension mismatch: (r1, c1) and (r2, c2)".
func shapeMismatchf(r1, c1, r2, c2 int) error {
	return fmt.Errorf("%w: (%d, %d) and (%d, %d)", ErrDimensionMismatch, r1, c1, r2, c2)
}
