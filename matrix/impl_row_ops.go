// SPDX-License-Identifier: MIT

// Package matrix - elementary row operations.
//
// Purpose:
//   - Expose the three primitives of Gaussian elimination (add a multiple of
//     one row to another, scale a row, swap two rows) plus a generic row map.
//   - Public forms are copy-on-write; the elimination engine drives the
//     unexported in-place kernels on a private scratch buffer instead.
//
// Complexity quicksheet:
//   - Public ops: O(r*c) (clone) + O(c) (row work); kernels: O(c).

package matrix

const (
	ctxAddRow   = "AddRowToRow"
	ctxScaleRow = "ScaleRow"
	ctxSwapRows = "SwapRows"
	ctxMapRow   = "MapRow"
)

// ---------- in-place kernels (scratch buffers only) ----------

// addRowKernel performs data[dst,:] += data[src,:] * multiple on a row-major buffer of width c.
// src == dst is legal and doubles (multiple=1) or zeroes (multiple=-1) the row.
func addRowKernel[T Float](data []T, c, src int, multiple T, dst int) {
	s, d := src*c, dst*c
	for j := 0; j < c; j++ {
		data[d+j] += data[s+j] * multiple
	}
}

// scaleRowKernel performs data[row,:] *= factor.
func scaleRowKernel[T Float](data []T, c, row int, factor T) {
	base := row * c
	for j := 0; j < c; j++ {
		data[base+j] *= factor
	}
}

// swapRowsKernel exchanges rows a and b.
func swapRowsKernel[T Float](data []T, c, a, b int) {
	if a == b {
		return
	}
	ra, rb := a*c, b*c
	for j := 0; j < c; j++ {
		data[ra+j], data[rb+j] = data[rb+j], data[ra+j]
	}
}

// ---------- public copy-on-write operations ----------

// AddRowToRow returns a copy with target[c] += source[c] * multiple for every column c.
// MAIN DESCRIPTION:
//   - The "add a multiple" elementary row operation.
//
// Behavior highlights:
//   - source == target is allowed; multiple == 0 leaves the target unchanged.
//
// Errors:
//   - ErrOutOfRange when source or target is outside [0, rows).
//   - ErrNaNInf when validation is on and the updated row is non-finite.
//
// Complexity:
//   - Time O(r*c) for the copy + O(c), Space O(r*c).
func (m *Dense[T]) AddRowToRow(source int, multiple T, target int) (*Dense[T], error) {
	if err := m.checkRow(ctxAddRow, source); err != nil {
		return nil, err
	}
	if err := m.checkRow(ctxAddRow, target); err != nil {
		return nil, err
	}
	res := m.Clone()
	addRowKernel(res.data, res.c, source, multiple, target)
	if err := res.checkRowFinite(ctxAddRow, target); err != nil {
		return nil, err
	}

	return res, nil
}

// ScaleRow returns a copy with every entry of row multiplied by factor.
//
// Errors:
//   - ErrOutOfRange, ErrNaNInf (validation on and the row became non-finite).
func (m *Dense[T]) ScaleRow(row int, factor T) (*Dense[T], error) {
	if err := m.checkRow(ctxScaleRow, row); err != nil {
		return nil, err
	}
	res := m.Clone()
	scaleRowKernel(res.data, res.c, row, factor)
	if err := res.checkRowFinite(ctxScaleRow, row); err != nil {
		return nil, err
	}

	return res, nil
}

// SwapRows returns a copy with rows a and b exchanged.
func (m *Dense[T]) SwapRows(a, b int) (*Dense[T], error) {
	if err := m.checkRow(ctxSwapRows, a); err != nil {
		return nil, err
	}
	if err := m.checkRow(ctxSwapRows, b); err != nil {
		return nil, err
	}
	res := m.Clone()
	swapRowsKernel(res.data, res.c, a, b)

	return res, nil
}

// MapRow returns a copy with every entry v of row replaced by f(v).
// A nil f returns an unchanged copy.
func (m *Dense[T]) MapRow(row int, f func(T) T) (*Dense[T], error) {
	if err := m.checkRow(ctxMapRow, row); err != nil {
		return nil, err
	}
	res := m.Clone()
	if f == nil {
		return res, nil
	}
	base := row * res.c
	for j := 0; j < res.c; j++ {
		res.data[base+j] = f(res.data[base+j])
	}
	if err := res.checkRowFinite(ctxMapRow, row); err != nil {
		return nil, err
	}

	return res, nil
}

// checkRowFinite enforces the NaN/Inf policy on one row after an update.
func (m *Dense[T]) checkRowFinite(method string, row int) error {
	if !m.validateNaNInf {
		return nil
	}
	base := row * m.c
	for j := 0; j < m.c; j++ {
		if isNonFinite(m.data[base+j]) {
			return denseErrorf(method, row, j, ErrNaNInf)
		}
	}

	return nil
}
