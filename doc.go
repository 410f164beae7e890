// Package linalg is a dense real-matrix algebra module centered on Gaussian
// elimination: reduced row echelon form, rank, null-space bases and inverses.
//
// Under the hood, everything lives in one subpackage:
//
//	matrix/   immutable Dense[T] values (float32 or float64), elementary row
//	          operations, the elimination engine, products and element-wise ops
//
// Quick ASCII example:
//
//	    ┌ 1  2  3  4 ┐         ┌ 1  0 -1 -2 ┐
//	M = │ 5  6  7  8 │  RREF → │ 0  1  2  3 │   rank(M) = 2
//	    └ 9 10 11 12 ┘         └ 0  0  0  0 ┘
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
