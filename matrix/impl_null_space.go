// SPDX-License-Identifier: MIT

package matrix

// NullSpace returns a basis of {x : M·x = 0} as the columns of a
// Cols() × (Cols() − Rank()) matrix.
// MAIN DESCRIPTION:
//   - One basis vector per free (non-pivot) column of the RREF, left to right.
//
// Implementation:
//   - Stage 1: take the cached RREF and pivot vector; mark pivot columns.
//   - Stage 2: for free column w, set entry p_k = −RREF[k][w] for every pivot
//     row k whose pivot column p_k < w, set entry w = 1, leave the rest 0.
//
// Behavior highlights:
//   - Rank 0 (every column free) yields the identity of size Cols().
//   - Full column rank yields a Cols()×0 matrix; this is legal, not an error.
//   - The result is cached on the matrix.
//
// Complexity:
//   - Time O(r² * c) for the first RREF, then O(c * (c − rank) + r*c).
func (m *Dense[T]) NullSpace() *Dense[T] {
	return m.nullSpace.get(func() *Dense[T] {
		rref := m.ReducedRowEchelonForm()
		pivots := m.pivotLocations()
		rank := m.Rank()
		nullity := m.c - rank
		res := m.derive(m.c, nullity)
		if rank == 0 {
			log.Debugw("null space of rank-0 matrix is the identity", "rows", m.r, "cols", m.c)
		}

		isPivot := make([]bool, m.c)
		for _, p := range pivots[:rank] {
			isPivot[p] = true
		}

		var (
			w, k   int
			column int // next basis column to fill
		)
		for w = 0; w < m.c; w++ {
			if isPivot[w] {
				continue
			}
			for k = 0; k < rank && pivots[k] < w; k++ {
				if v := rref.data[k*rref.c+w]; v != 0 { // keep +0 for untouched cells
					res.data[pivots[k]*nullity+column] = -v
				}
			}
			res.data[w*nullity+column] = 1
			column++
		}

		return res
	})
}
