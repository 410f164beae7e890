// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleDense_ReducedRowEchelonForm reduces the classic 3×4 grid and reads
// off its pivots and rank.
func ExampleDense_ReducedRowEchelonForm() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	fmt.Print(m.ReducedRowEchelonForm())
	fmt.Println("pivots:", m.PivotLocations())
	fmt.Println("rank:", m.Rank())

	// Output:
	// [1, 0, -1, -2]
	// [0, 1, 2, 3]
	// [0, 0, 0, 0]
	// pivots: [0 1 -1]
	// rank: 2
}

// ExampleDense_NullSpace lists a basis of the solutions of M·x = 0, one per column.
func ExampleDense_NullSpace() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})

	fmt.Print(m.NullSpace())

	// Output:
	// [1, 2]
	// [-2, -3]
	// [1, 0]
	// [0, 1]
}

// ExampleDense_Inverse shows both outcomes: a present inverse and an absent one.
func ExampleDense_Inverse() {
	m, _ := matrix.FromRows([][]float64{{2, 0}, {0, 4}})
	inv, ok, _ := m.Inverse()
	fmt.Println(ok)
	fmt.Print(inv)

	singular, _ := matrix.FromRows([][]float64{{1, 2}, {2, 4}})
	_, ok, _ = singular.Inverse()
	fmt.Println(ok)

	// Output:
	// true
	// [0.5, 0]
	// [0, 0.25]
	// false
}

// ExampleDense_AddRowToRow applies one elementary row operation.
func ExampleDense_AddRowToRow() {
	m, _ := matrix.FromRows([][]float64{
		{1, 2, 3, 4},
		{5, 6, 7, 8},
		{9, 10, 11, 12},
	})
	next, _ := m.AddRowToRow(0, -1, 2)
	row, _ := next.Row(2)
	fmt.Println(row)

	// Output:
	// [8 8 8 8]
}
