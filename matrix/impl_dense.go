// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major), safe accessors & copy-on-write.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep values immutable: Set, row operations and every kernel return a new Dense.
//   - Support copy-based sub-block extraction (Block, Induced) and horizontal
//     concatenation (Augment) for the elimination engine.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra: operate on the flat data slice directly.
//   - derive() is the only way kernels allocate results; it carries eps and the
//     NaN/Inf policy of the source matrix.
//
// Complexity quicksheet:
//   - New*: O(r*c); At: O(1); Set/Clone: O(r*c); Block/Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt      = "At"      // method tag used in error wrappers
	ctxSet     = "Set"     // method tag used in error wrappers
	ctxNew     = "New"     // ctor tag used in error wrappers
	ctxBlock   = "Block"   // ctor tag for Dense.Block
	ctxInduce  = "Induced" // ctor tag for Dense.Induced
	ctxAugment = "Augment" // ctor tag for Dense.Augment
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is an immutable row-major matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - eps is the near-zero tolerance used by every comparison on this value;
//     epsSet records that it came from WithEpsilon rather than the type default.
//   - validateNaNInf enables NaN/Inf rejection in Set and elementwise kernels.
//
// Derived properties are memoized; a *Dense is safe for concurrent readers.
type Dense[T Float] struct {
	r, c           int  // row and column counts (zero allowed only for derived results)
	data           []T  // contiguous row-major storage (len == r*c)
	eps            T    // near-zero tolerance
	epsSet         bool // eps was given explicitly
	validateNaNInf bool // numeric guard

	transposed memo[*Dense[T]]
	total      memo[T]
	tol        memo[T]
	rref       memo[*Dense[T]]
	pivots     memo[[]int]
	rank       memo[int]
	nullSpace  memo[*Dense[T]]
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[float32] = (*Dense[float32])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// newDense allocates a zero rows×cols matrix under the resolved options.
// MAIN DESCRIPTION:
//   - Strict constructor used by every public factory.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>=0; else ErrBadShape.
//   - Stage 2: allocate zero-filled buffer and set policy from o.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func newDense[T Float](rows, cols int, o Options) (*Dense[T], error) {
	if rows <= 0 || cols < 0 {
		return nil, fmt.Errorf("Dense.%s(%d,%d): %w", ctxNew, rows, cols, ErrBadShape)
	}

	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		eps:            epsilonFor[T](o),
		epsSet:         o.epsSet,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// derive allocates a zero rows×cols matrix sharing the receiver's policy.
// Zero rows or columns are legal here (e.g. the null space of a full-rank matrix).
func (m *Dense[T]) derive(rows, cols int) *Dense[T] {
	return &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		eps:            m.eps,
		epsSet:         m.epsSet,
		validateNaNInf: m.validateNaNInf,
	}
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Epsilon returns the near-zero tolerance carried by the matrix.
func (m *Dense[T]) Epsilon() T { return m.eps }

// Precision returns the storage policy of the element type.
func (m *Dense[T]) Precision() Precision { return PrecisionOf[T]() }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods wrap the sentinel with their own method tag and coordinates.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkRow validates a row index for row-level operations.
func (m *Dense[T]) checkRow(method string, row int) error {
	if row < 0 || row >= m.r {
		return fmt.Errorf("Dense.%s: row %d of %d: %w", method, row, m.r, ErrOutOfRange)
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Behavior highlights:
//   - Never panics on out-of-range; returns a wrapped sentinel error.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set returns a copy of the matrix with v stored at (row, col).
// MAIN DESCRIPTION:
//   - Copy-on-write element update; the receiver is never modified.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: clone and write into the clone's flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Set(row, col int, v T) (*Dense[T], error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return nil, denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	res := m.Clone()
	res.data[off] = v

	return res, nil
}

// WithValue implements Matrix via Set.
func (m *Dense[T]) WithValue(row, col int, v T) (Matrix[T], error) {
	res, err := m.Set(row, col, v)
	if err != nil {
		return nil, err
	}

	return res, nil
}

// Clone returns a deep copy (new buffer, same numeric policy, empty caches).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	res := m.derive(m.r, m.c)
	copy(res.data, m.data)

	return res
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if err := m.checkRow("Row", i); err != nil {
		return nil, err
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows materializes the matrix as a fresh [][]T grid.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// String renders rows as lines with comma-separated values (%g).
// Intended for logs and debugging; not for hot paths.
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Block copies the window [r0:r0+rows, c0:c0+cols) into a new matrix.
// MAIN DESCRIPTION:
//   - Sub-block extraction used by Inverse to slice the right half of [M | I].
//
// Implementation:
//   - Stage 1: validate window bounds; zero-area windows are legal.
//   - Stage 2: copy row segments with direct offset math.
//
// Errors:
//   - ErrBadShape when the window is invalid.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense[T]) Block(r0, c0, rows, cols int) (*Dense[T], error) {
	if r0 < 0 || c0 < 0 || rows < 0 || cols < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxBlock, r0, c0, rows, cols, ErrBadShape)
	}
	res := m.derive(rows, cols)
	var i, src int
	for i = 0; i < rows; i++ {
		src = (r0+i)*m.c + c0
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// Induced materializes a copy submatrix using explicit index sets.
// MAIN DESCRIPTION:
//   - Copy rows/cols at the given index lists (duplicates allowed).
//
// Behavior highlights:
//   - Policy is preserved from the base.
//   - Zero-length index sets produce a legal zero-area matrix.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	rp := len(rowsIdx) // result rows
	cp := len(colsIdx) // result cols
	res := m.derive(rp, cp)

	var i, j, ri, cj int
	for i = 0; i < rp; i++ {
		ri = rowsIdx[i]
		if ri < 0 || ri >= m.r {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, ri, ErrOutOfRange)
		}
		for j = 0; j < cp; j++ {
			cj = colsIdx[j]
			if cj < 0 || cj >= m.c {
				return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, cj, ErrOutOfRange)
			}
			res.data[i*cp+j] = m.data[ri*m.c+cj]
		}
	}

	return res, nil
}

// Augment returns [m | b], the horizontal concatenation of m and b.
// Both operands must have the same row count; the result has m's policy.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (row counts differ).
//
// Complexity:
//   - Time O(r*(c1+c2)), Space O(r*(c1+c2)).
func (m *Dense[T]) Augment(b Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil[T](b); err != nil {
		return nil, matrixErrorf(ctxAugment, err)
	}
	br, bc := b.Shape()
	if br != m.r {
		return nil, matrixErrorf(ctxAugment, shapeMismatchf(m.r, m.c, br, bc))
	}
	w := m.c + bc
	res := m.derive(m.r, w)
	var i, j int
	for i = 0; i < m.r; i++ {
		copy(res.data[i*w:i*w+m.c], m.data[i*m.c:(i+1)*m.c])
	}
	if db, ok := b.(*Dense[T]); ok {
		for i = 0; i < m.r; i++ {
			copy(res.data[i*w+m.c:(i+1)*w], db.data[i*bc:(i+1)*bc])
		}

		return res, nil
	}
	// Fallback: interface path with fixed i→j order.
	var v T
	var err error
	for i = 0; i < m.r; i++ {
		for j = 0; j < bc; j++ {
			if v, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(ctxAugment, err)
			}
			res.data[i*w+m.c+j] = v
		}
	}

	return res, nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false. Read-only; no allocations.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return // early exit requested by caller
			}
		}
	}
}
