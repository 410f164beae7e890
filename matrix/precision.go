// SPDX-License-Identifier: MIT

// Package matrix - numeric precision policy.
//
// Purpose:
//   - Describe the two supported storage widths (single, double) in one place.
//   - Supply the near-zero tolerance every elimination step and every equality
//     comparison uses; one matrix carries exactly one tolerance.
//
// Notes:
//   - The element type of Dense decides the storage width; the epsilon can be
//     overridden per matrix via WithEpsilon.

package matrix

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the element constraint of Dense: float32 (single) or float64 (double),
// including named types whose underlying type is one of them.
type Float interface {
	constraints.Float
}

// Precision is the numeric policy of a storage width.
type Precision struct {
	Name         string  // "single" or "double"
	MantissaBits int     // significand width including the implicit bit
	Epsilon      float64 // default near-zero tolerance for this width
}

// Supported precisions.
var (
	// Single covers float32 storage.
	Single = Precision{Name: "single", MantissaBits: 24, Epsilon: DefaultSingleEpsilon}

	// Double covers float64 storage.
	Double = Precision{Name: "double", MantissaBits: 53, Epsilon: DefaultEpsilon}
)

// PrecisionOf returns the policy matching the storage width of T.
// Complexity: O(1).
func PrecisionOf[T Float]() Precision {
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		return Single
	}

	return Double
}

// nearZero reports |v| <= eps. This is the single zero test of the package:
// pivot search, pivot extraction and singularity detection all go through it.
func nearZero[T Float](v, eps T) bool {
	return abs(v) <= eps
}

// nearlyEqual reports |a-b| <= eps.
func nearlyEqual[T Float](a, b, eps T) bool {
	return abs(a-b) <= eps
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite[T Float](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}
