// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the element-wise surface: a unary Map, a binary Zip and the
//     convenience operations built on them (negate, reciprocal, scalar multiply,
//     square, sigmoid, one-minus, sigmoid derivative, abs, add, subtract,
//     element-wise multiply, divide).
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 on *Dense, i→j on the fallback).
//   - No hidden allocations beyond the output Dense; O(r*c) time and space.
//
// Numeric policy:
//   - When the source matrix validates NaN/Inf, a non-finite result (e.g. the
//     reciprocal of 0) fails with ErrNaNInf; no partial result is returned.

package matrix

import "math"

// Operation tags.
const (
	opMap      = "Map"
	opZip      = "Zip"
	opAdd      = "Add"
	opSub      = "Sub"
	opHadamard = "Hadamard"
	opDivide   = "Divide"
)

// ewMap computes out[i] = f(data[i]) over a flat buffer.
func ewMap[T Float](m *Dense[T], f func(T) T, tag string) (*Dense[T], error) {
	out := m.derive(m.r, m.c)
	for idx, v := range m.data {
		nv := f(v)
		if m.validateNaNInf && isNonFinite(nv) {
			return nil, matrixErrorf(tag, denseErrorf(opMap, idx/max(m.c, 1), idx%max(m.c, 1), ErrNaNInf))
		}
		out.data[idx] = nv
	}

	return out, nil
}

// Map returns a new matrix with every entry v replaced by f(v).
// A nil f returns the receiver itself (values are immutable).
//
// Errors:
//   - ErrNaNInf when validation is on and f produced a non-finite value.
//
// Complexity: O(r*c).
func (m *Dense[T]) Map(f func(T) T) (*Dense[T], error) {
	if f == nil {
		return m, nil
	}

	return ewMap(m, f, opMap)
}

// Zip returns a new matrix with entry (i,j) = f(m[i,j], b[i,j]).
// MAIN DESCRIPTION:
//   - Binary element-wise combinator shared by Add/Sub/Hadamard/Divide.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape.
//   - Stage 2: flat loop when b is *Dense; i→j At fallback otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (both shapes reported), ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Zip(b Matrix[T], f func(x, y T) T) (*Dense[T], error) {
	return zip(m, b, f, opZip)
}

func zip[T Float](m *Dense[T], b Matrix[T], f func(x, y T) T, tag string) (*Dense[T], error) {
	if err := ValidateBinarySameShape[T](m, b); err != nil {
		return nil, matrixErrorf(tag, err)
	}
	out := m.derive(m.r, m.c)

	var (
		i, j int
		nv   T
		bv   T
		err  error
	)
	db, fast := b.(*Dense[T])
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if fast {
				bv = db.data[i*m.c+j]
			} else if bv, err = b.At(i, j); err != nil {
				return nil, matrixErrorf(tag, err)
			}
			nv = f(m.data[i*m.c+j], bv)
			if m.validateNaNInf && isNonFinite(nv) {
				return nil, matrixErrorf(tag, denseErrorf(opZip, i, j, ErrNaNInf))
			}
			out.data[i*m.c+j] = nv
		}
	}

	return out, nil
}

// ---------- unary conveniences ----------

// Negate returns −m.
func (m *Dense[T]) Negate() (*Dense[T], error) {
	return ewMap(m, func(x T) T { return -x }, "Negate")
}

// Reciprocal returns the element-wise 1/m.
// Zero entries fail with ErrNaNInf unless validation is disabled.
func (m *Dense[T]) Reciprocal() (*Dense[T], error) {
	return ewMap(m, func(x T) T { return 1 / x }, "Reciprocal")
}

// MulScalar returns alpha·m.
func (m *Dense[T]) MulScalar(alpha T) (*Dense[T], error) {
	return ewMap(m, func(x T) T { return x * alpha }, "MulScalar")
}

// Square returns the element-wise m².
func (m *Dense[T]) Square() (*Dense[T], error) {
	return ewMap(m, func(x T) T { return x * x }, "Square")
}

// Sigmoid returns the element-wise logistic function 1/(1+e^−x).
func (m *Dense[T]) Sigmoid() (*Dense[T], error) {
	return ewMap(m, func(x T) T { return T(1 / (1 + math.Exp(-float64(x)))) }, "Sigmoid")
}

// OneMinus returns the element-wise 1 − m.
func (m *Dense[T]) OneMinus() (*Dense[T], error) {
	return ewMap(m, func(x T) T { return 1 - x }, "OneMinus")
}

// SigmoidDerivative returns x·(1 − x) element-wise, the derivative of the
// logistic function expressed in terms of its output.
func (m *Dense[T]) SigmoidDerivative() (*Dense[T], error) {
	return ewMap(m, func(x T) T { return x * (1 - x) }, "SigmoidDerivative")
}

// Abs returns the element-wise |m|.
func (m *Dense[T]) Abs() (*Dense[T], error) {
	return ewMap(m, abs[T], "Abs")
}

// ---------- binary conveniences ----------

// Add returns m + b.
func (m *Dense[T]) Add(b Matrix[T]) (*Dense[T], error) {
	return zip(m, b, func(x, y T) T { return x + y }, opAdd)
}

// Sub returns m − b.
func (m *Dense[T]) Sub(b Matrix[T]) (*Dense[T], error) {
	return zip(m, b, func(x, y T) T { return x - y }, opSub)
}

// MulElem returns the element-wise (Hadamard) product m ⊙ b.
func (m *Dense[T]) MulElem(b Matrix[T]) (*Dense[T], error) {
	return zip(m, b, func(x, y T) T { return x * y }, opHadamard)
}

// Divide returns the element-wise quotient m ⊘ b.
func (m *Dense[T]) Divide(b Matrix[T]) (*Dense[T], error) {
	return zip(m, b, func(x, y T) T { return x / y }, opDivide)
}

// ---------- free-function facades ----------

// Add computes the element-wise sum a + b. The result carries a's policy.
func Add[T Float](a *Dense[T], b Matrix[T]) (*Dense[T], error) { return a.Add(b) }

// Sub computes the element-wise difference a − b.
func Sub[T Float](a *Dense[T], b Matrix[T]) (*Dense[T], error) { return a.Sub(b) }

// Hadamard computes the element-wise product a ⊙ b.
func Hadamard[T Float](a *Dense[T], b Matrix[T]) (*Dense[T], error) { return a.MulElem(b) }
