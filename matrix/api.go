// SPDX-License-Identifier: MIT
// Package matrix: public constructors and free-function facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//   - Keep function names explicit and intention-revealing to improve discoverability.
//
// Determinism & Policy:
//   - Constructors resolve options once; the resulting matrix carries eps and
//     the NaN/Inf policy for its whole lifetime and passes them to derived values.
//   - Validation is performed in the kernels; facades only compose or forward.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - Use NewIdentity/NewZeros to build matrices with explicit shape and neutral elements.

package matrix

import "fmt"

// ---------- Constructors ----------

// New builds a rows×cols matrix with entry (i, j) = gen(i, j).
// MAIN DESCRIPTION:
//   - Generator-based construction; gen is called once per cell in i→j order.
//
// Errors:
//   - ErrBadShape (rows<=0 or cols<0), ErrNaNInf (gen produced a non-finite
//     value while validation is on), ErrNilMatrix (nil gen).
//
// Complexity:
//   - Time O(r*c) calls to gen, Space O(r*c).
func New[T Float](rows, cols int, gen func(i, j int) T, opts ...Option) (*Dense[T], error) {
	if gen == nil {
		return nil, matrixErrorf(ctxNew, ErrNilMatrix)
	}
	m, err := newDense[T](rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	var i, j int
	var v T
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v = gen(i, j)
			if m.validateNaNInf && isNonFinite(v) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
			m.data[i*cols+j] = v
		}
	}

	return m, nil
}

// NewFilled builds a rows×cols matrix with every entry equal to v.
// Complexity: O(r*c).
func NewFilled[T Float](rows, cols int, v T, opts ...Option) (*Dense[T], error) {
	m, err := newDense[T](rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return nil, matrixErrorf(ctxNew, ErrNaNInf)
	}
	for i := range m.data {
		m.data[i] = v
	}

	return m, nil
}

// NewZeros returns a new zero-initialized rows×cols matrix.
// It is a thin alias of the strict constructor with an intention-revealing name.
func NewZeros[T Float](rows, cols int, opts ...Option) (*Dense[T], error) {
	return newDense[T](rows, cols, gatherOptions(opts...))
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
//
// AI-Hints: Use as a neutral element for Dot and as the right half of [M | I].
func NewIdentity[T Float](n int, opts ...Option) (*Dense[T], error) {
	m, err := newDense[T](n, n, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ { // fixed i order guarantees reproducibility
		m.data[i*n+i] = 1
	}

	return m, nil
}

// FromRows builds a matrix from a literal grid. The grid is copied.
// MAIN DESCRIPTION:
//   - Literal construction; the column count is taken from the first row.
//
// Errors:
//   - ErrBadShape when the grid has zero rows or rows of differing lengths.
//   - ErrNaNInf when validation is on and the grid holds a non-finite value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Float](grid [][]T, opts ...Option) (*Dense[T], error) {
	if len(grid) == 0 {
		return nil, fmt.Errorf("FromRows: zero rows: %w", ErrBadShape)
	}
	rows, cols := len(grid), len(grid[0])
	m, err := newDense[T](rows, cols, gatherOptions(opts...))
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < rows; i++ {
		if len(grid[i]) != cols {
			return nil, fmt.Errorf("FromRows: row %d has %d entries, want %d: %w", i, len(grid[i]), cols, ErrBadShape)
		}
		for j = 0; j < cols; j++ {
			if m.validateNaNInf && isNonFinite(grid[i][j]) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
		}
		copy(m.data[i*cols:(i+1)*cols], grid[i])
	}

	return m, nil
}

// ---------- Facades (delegate to the canonical implementation) ----------

// Dot is the free-function form of (*Dense).Dot for any Matrix operands.
func Dot[T Float](a, b Matrix[T]) (*Dense[T], error) { return dot(a, b) }

// RREF returns the reduced row echelon form of m. m must be non-nil.
func RREF[T Float](m *Dense[T]) *Dense[T] { return m.ReducedRowEchelonForm() }

// Rank returns the rank of m. m must be non-nil.
func Rank[T Float](m *Dense[T]) int { return m.Rank() }

// NullSpace returns a basis of the null space of m, one vector per column.
// m must be non-nil.
func NullSpace[T Float](m *Dense[T]) *Dense[T] { return m.NullSpace() }

// Inverse returns m⁻¹; ok is false when m is square but singular.
// Errors: ErrNilMatrix, ErrNotInvertible (not square).
func Inverse[T Float](m *Dense[T]) (inv *Dense[T], ok bool, err error) {
	if err = ValidateNotNil[T](m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	return m.Inverse()
}

// Transpose returns mᵀ. m must be non-nil.
func Transpose[T Float](m *Dense[T]) *Dense[T] { return m.Transpose() }
