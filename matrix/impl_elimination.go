// SPDX-License-Identifier: MIT

// Package matrix - Gaussian elimination engine: RREF, pivot locations, rank.
//
// Purpose:
//   - Reduce a matrix to reduced row echelon form with partial pivot search
//     (forward pass) followed by back-substitution (backward pass).
//   - Derive the pivot vector and the rank from the cached RREF.
//
// Numeric policy:
//   - One zero test (|v| <= tol, see nearZero) is used for pivot search, pivot
//     extraction and singularity detection alike. tol is the matrix epsilon
//     scaled by its largest magnitude (at least 1), fixed once per elimination
//     and carried by the RREF result so later pivot reads agree with it.
//   - Pivots are stored as exactly 1 and eliminated cells as exactly 0; cells of
//     a column without a pivot are flushed to 0 below the current row, so
//     round-off cannot resurface as a phantom pivot in a later column.
//
// Complexity quicksheet:
//   - RREF: O(r² * c) time on a single scratch buffer of r*c.
//   - PivotLocations/Rank: O(r*c) once, then O(r)/O(1) from cache.

package matrix

// rrefKernel reduces the row-major r×c buffer in place.
// MAIN DESCRIPTION:
//   - Forward elimination with partial pivot search, then back-substitution.
//
// Implementation:
//   - Stage 1 (forward): cursors pivotCol/row start at 0. For the current
//     column scan rows row..r-1 for the first |v| > tol. None ⇒ the column is
//     free: flush it below row and advance pivotCol. Found at p ⇒ swap p↔row,
//     scale row so the pivot is 1, eliminate the column below, advance both.
//     Stops when pivotCol == c or row == r.
//   - Stage 2 (backward): for rows r-1..0 locate the leading column and
//     eliminate it in every row above.
//
// Determinism:
//   - Fixed loop orders; the first admissible row wins the pivot search.
//
// Complexity:
//   - Time O(r² * c), Space O(1) beyond the buffer.
func rrefKernel[T Float](data []T, r, c int, tol T) {
	var (
		pivotCol, row int
		i, p          int
		f             T
	)

	// Stage 1: forward pass.
	for pivotCol < c && row < r {
		p = -1
		for i = row; i < r; i++ {
			if !nearZero(data[i*c+pivotCol], tol) {
				p = i
				break
			}
		}
		if p < 0 {
			// free column: everything at or below row is zero under the policy
			for i = row; i < r; i++ {
				data[i*c+pivotCol] = 0
			}
			pivotCol++
			continue
		}

		swapRowsKernel(data, c, p, row)
		// cells left of the pivot are already 0; scaling them could yield -0
		f = 1 / data[row*c+pivotCol]
		for j := pivotCol + 1; j < c; j++ {
			data[row*c+j] *= f
		}
		data[row*c+pivotCol] = 1

		for i = row + 1; i < r; i++ {
			f = data[i*c+pivotCol]
			if f != 0 {
				addRowKernel(data, c, row, -f, i)
			}
			data[i*c+pivotCol] = 0
		}
		row++
		pivotCol++
	}

	// Stage 2: backward pass.
	for i = r - 1; i >= 0; i-- {
		p = leadingColumn(data[i*c:(i+1)*c], tol)
		if p == NoPivot {
			continue
		}
		for k := i - 1; k >= 0; k-- {
			f = data[k*c+p]
			if f != 0 {
				addRowKernel(data, c, i, -f, k)
			}
			data[k*c+p] = 0
		}
	}
}

// leadingColumn returns the index of the first |v| > tol in row, or NoPivot.
func leadingColumn[T Float](row []T, tol T) int {
	for j, v := range row {
		if !nearZero(v, tol) {
			return j
		}
	}

	return NoPivot
}

// pivotTolerance returns eps * max(1, max|a_ij|), the zero threshold of an
// elimination on m. Cached; an RREF result carries the value of its source.
func (m *Dense[T]) pivotTolerance() T {
	return m.tol.get(func() T {
		var peak T = 1
		for _, v := range m.data {
			if a := abs(v); a > peak {
				peak = a
			}
		}

		return m.eps * peak
	})
}

// ReducedRowEchelonForm returns the RREF of the matrix.
// MAIN DESCRIPTION:
//   - Total function; a matrix with zero rows or zero columns is returned as is.
//
// Behavior highlights:
//   - Every nonzero row leads with exactly 1; each pivot is strictly right of
//     the pivots above; all-near-zero rows are at the bottom; pivot columns are
//     zero outside the pivot row.
//   - The result is cached; the result's own RREF is itself (idempotence).
//
// Complexity:
//   - First call O(r² * c); later calls O(1).
func (m *Dense[T]) ReducedRowEchelonForm() *Dense[T] {
	return m.rref.get(func() *Dense[T] {
		if m.r == 0 || m.c == 0 {
			return m
		}
		res := m.Clone()
		tol := m.pivotTolerance()
		rrefKernel(res.data, res.r, res.c, tol)
		res.tol.get(func() T { return tol })
		res.rref.get(func() *Dense[T] { return res })

		return res
	})
}

// PivotLocations returns, for every row of the RREF, the column of its leading
// entry or NoPivot. Rows with NoPivot form a trailing suffix.
// The returned slice is a copy; callers may modify it.
// Complexity: first call O(r² * c); later calls O(r).
func (m *Dense[T]) PivotLocations() []int {
	src := m.pivotLocations()
	out := make([]int, len(src))
	copy(out, src)

	return out
}

// pivotLocations returns the cached pivot vector (shared; do not modify).
func (m *Dense[T]) pivotLocations() []int {
	return m.pivots.get(func() []int {
		rref := m.ReducedRowEchelonForm()
		tol := rref.pivotTolerance()
		out := make([]int, rref.r)
		for i := 0; i < rref.r; i++ {
			out[i] = leadingColumn(rref.data[i*rref.c:(i+1)*rref.c], tol)
		}

		return out
	})
}

// Rank returns the number of pivot rows of the RREF.
// Equals the index of the first NoPivot row, or Rows() when every row has a pivot.
// Always rank <= min(Rows(), Cols()). Cached.
func (m *Dense[T]) Rank() int {
	return m.rank.get(func() int {
		pivots := m.pivotLocations()
		for i, p := range pivots {
			if p == NoPivot {
				return i
			}
		}

		return len(pivots)
	})
}
