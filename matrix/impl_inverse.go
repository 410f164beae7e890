// SPDX-License-Identifier: MIT

// Package matrix - inverse via elimination on the augmented matrix [M | I].
//
// Purpose:
//   - Distinguish the two failure shapes of inversion: a non-square input is an
//     error (ErrNotInvertible); a singular square input is an absent result
//     (ok == false), which RequireInverse turns into ErrSingular.
//
// Complexity quicksheet:
//   - O(n² * 2n) elimination on an n×2n scratch matrix; nothing is cached.

package matrix

const (
	opInverse        = "Inverse"
	opRequireInverse = "RequireInverse"
)

// Inverse computes M⁻¹ by reducing [M | I] to RREF.
// MAIN DESCRIPTION:
//   - Returns (inv, true, nil) for an invertible matrix, (nil, false, nil) for a
//     singular square matrix and (nil, false, err) for a non-square one.
//   - A 0×0 matrix (reachable as a derived value) inverts to itself.
//
// Implementation:
//   - Stage 1: ValidateSquare; build the n×2n augmented matrix [M | I].
//   - Stage 2: RREF of the augmented matrix.
//   - Stage 3: the left half of the last row entirely near zero ⇒ singular.
//   - Stage 4: otherwise slice the right half (n×n) as the inverse.
//
// Errors:
//   - ErrNotInvertible (not square). Never ErrSingular.
//
// Determinism:
//   - Same pivot order as ReducedRowEchelonForm.
//
// Complexity:
//   - Time O(n³), Space O(n²) scratch.
//
// AI-Hints:
//   - Use RequireInverse when the caller already knows the matrix is invertible.
func (m *Dense[T]) Inverse() (*Dense[T], bool, error) {
	if err := ValidateSquare[T](m); err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	n := m.r
	if n == 0 {
		// the empty matrix is its own inverse
		return m.derive(0, 0), true, nil
	}

	id := m.derive(n, n)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}
	aug, err := m.Augment(id)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}
	rref := aug.ReducedRowEchelonForm()

	// Left half of the last row: all near zero ⇔ the left block lost rank.
	w := rref.c
	if leadingColumn(rref.data[(n-1)*w:(n-1)*w+n], rref.pivotTolerance()) == NoPivot {
		log.Debugw("inverse absent: matrix is singular", "n", n, "tol", rref.pivotTolerance())

		return nil, false, nil
	}

	inv, err := rref.Block(0, n, n, n)
	if err != nil {
		return nil, false, matrixErrorf(opInverse, err)
	}

	return inv, true, nil
}

// RequireInverse is Inverse for callers that know the matrix is invertible.
// A singular input fails with ErrSingular instead of returning an absent value.
//
// Errors:
//   - ErrNotInvertible (not square), ErrSingular (square but singular).
func (m *Dense[T]) RequireInverse() (*Dense[T], error) {
	inv, ok, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	if !ok {
		log.Debugw("required inverse is absent", "rows", m.r, "cols", m.c)

		return nil, matrixErrorf(opRequireInverse, ErrSingular)
	}

	return inv, nil
}
