// SPDX-License-Identifier: MIT

package matrix

// SameShape reports whether b has the receiver's (rows, cols).
func (m *Dense[T]) SameShape(b Matrix[T]) bool {
	if ValidateNotNil(b) != nil {
		return false
	}
	r, c := b.Shape()

	return r == m.r && c == m.c
}

// Equal reports whether b has the same shape and every entry pair differs by
// at most the receiver's epsilon. A nil b is never equal.
// Complexity: O(r*c), early exit on the first mismatch.
func (m *Dense[T]) Equal(b Matrix[T]) bool {
	if !m.SameShape(b) {
		return false
	}
	if db, ok := b.(*Dense[T]); ok {
		for idx, v := range m.data {
			if !nearlyEqual(v, db.data[idx], m.eps) {
				return false
			}
		}

		return true
	}

	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			bv, err := b.At(i, j)
			if err != nil || !nearlyEqual(m.data[i*m.c+j], bv, m.eps) {
				return false
			}
		}
	}

	return true
}

// Equal is the free-function form of (*Dense).Equal using a's tolerance.
func Equal[T Float](a *Dense[T], b Matrix[T]) bool {
	if a == nil {
		return false
	}

	return a.Equal(b)
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances fail with ErrNaNInf.
//
// Complexity: O(r*c), Space O(1).
func AllClose[T Float](a, b Matrix[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf("AllClose", ErrNaNInf)
	}
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rt, at := abs(rtol), abs(atol)
	r, c := a.Shape()

	var (
		i, j   int
		av, bv T
		err    error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if float64(abs(av-bv)) > at+rt*float64(abs(bv)) {
				return false, nil // early-exit on first violation
			}
		}
	}

	return true, nil
}
