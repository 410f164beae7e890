// SPDX-License-Identifier: MIT

// Package matrix: domain-facing types.
// This file contains ONLY the public capability interface; errors, options
// and the concrete storage live in dedicated files (errors.go, options.go,
// impl_dense.go).
package matrix

// NoPivot marks a row of a reduced row echelon form without a leading entry.
const NoPivot = -1

// Matrix is the read/copy-on-write capability every kernel accepts.
// *Dense is the only implementation in this package; kernels take a *Dense
// fast path and fall back to At for any other implementation.
//
// Complexity notes: all methods are expected O(1) except WithValue (O(r*c)).
type Matrix[T Float] interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// Shape packs Rows() and Cols() into a single call.
	Shape() (rows, cols int)

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (T, error)

	// WithValue returns a new matrix equal to the receiver except at (i, j).
	// The receiver is never modified.
	WithValue(i, j int, v T) (Matrix[T], error)
}
