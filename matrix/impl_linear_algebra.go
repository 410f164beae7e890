// SPDX-License-Identifier: MIT
// Package matrix provides the product, transpose and sum kernels.
// All kernels perform strict fail-fast validation and return clear errors on
// dimension mismatches; operands are never mutated.
//
// Purpose:
//   - Dot over any Matrix implementation with a *Dense fast path.
//   - Lazily cached Transpose and Sum of a Dense value.
//
// Notes:
//   - Kernels allocate results through derive() so the left operand's numeric
//     policy flows into the result.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for products and sums.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opDot = "Dot"
)

// asDense returns m as *Dense when possible, otherwise a copy materialized via At.
func asDense[T Float](m Matrix[T], tag string) (*Dense[T], error) {
	if d, ok := m.(*Dense[T]); ok {
		return d, nil
	}
	rows, cols := m.Shape()
	res := &Dense[T]{
		r:              rows,
		c:              cols,
		data:           make([]T, rows*cols),
		eps:            T(PrecisionOf[T]().Epsilon),
		validateNaNInf: DefaultValidateNaNInf,
	}
	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// dot performs standard matrix multiplication C = A × B.
// MAIN DESCRIPTION:
//   - Shape (r×n)·(n×c) → (r×c).
//
// Implementation:
//   - Stage 1: ValidateMulCompatible (nil, inner dimension).
//   - Stage 2: if A and B are *Dense, run i→k→j over the flat buffers and skip
//     zero A[i,k]; otherwise use the i→j→k At fallback.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (message carries both shapes).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func dot[T Float](a, b Matrix[T]) (*Dense[T], error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	aRows, aCols := a.Shape()
	bCols := b.Cols()

	left, err := asDense(a, opDot)
	if err != nil {
		return nil, err
	}
	res := left.derive(aRows, bCols)

	var (
		i, j, k         int
		av, bv, current T
	)
	if db, ok := b.(*Dense[T]); ok {
		var rowOffsetA, rowOffsetB, rowOffsetR int
		for i = 0; i < aRows; i++ {
			rowOffsetA = i * aCols
			rowOffsetR = i * bCols
			for k = 0; k < aCols; k++ {
				av = left.data[rowOffsetA+k]
				if av == 0 {
					continue // skip zero for performance
				}
				rowOffsetB = k * bCols
				for j = 0; j < bCols; j++ {
					res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
				}
			}
		}

		return res, nil
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av = left.data[i*aCols+k]
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opDot, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// Dot returns the matrix product m·b.
// Errors: ErrNilMatrix, ErrDimensionMismatch when m.Cols() != b.Rows().
func (m *Dense[T]) Dot(b Matrix[T]) (*Dense[T], error) { return dot[T](m, b) }

// Transpose returns mᵀ (cols×rows). The result is cached on m.
// Complexity: first call O(r*c); later calls O(1).
func (m *Dense[T]) Transpose() *Dense[T] {
	return m.transposed.get(func() *Dense[T] {
		res := m.derive(m.c, m.r)
		var i, j, baseSrc int
		for i = 0; i < m.r; i++ {
			baseSrc = i * m.c
			for j = 0; j < m.c; j++ {
				res.data[j*m.r+i] = m.data[baseSrc+j]
			}
		}
		// (mᵀ)ᵀ is m itself.
		res.transposed.get(func() *Dense[T] { return m })

		return res
	})
}

// T is shorthand for Transpose.
func (m *Dense[T]) T() *Dense[T] { return m.Transpose() }

// Sum returns the sum of all entries, accumulated in row-major order. Cached.
func (m *Dense[T]) Sum() T {
	return m.total.get(func() T {
		var s T = ZeroSum
		for _, v := range m.data {
			s += v
		}

		return s
	})
}
