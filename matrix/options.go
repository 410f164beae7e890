// SPDX-License-Identifier: MIT

// Package matrix: functional configuration of the numeric policy.
// This file defines:
//   - the tolerance and NaN/Inf defaults every constructor starts from,
//   - the Option setters a caller passes to New, FromRows, NewIdentity, ...,
//   - gatherOptions helper (internal) that resolves the policy for an element type.
//
// Design goals:
//   - A resolved Options value is plain data; nothing is read from globals.
//   - A nonsensical tolerance is a programmer error and panics at the setter.
//
// Notes:
//   - Options are consumed at construction time only. Every matrix derived from
//     another one (row ops, RREF, Dot, Map, Block, ...) inherits the source's
//     epsilon and NaN/Inf policy; there is no way to change the policy of an
//     existing value.
//   - When WithEpsilon is not given, the epsilon follows the element type:
//     DefaultSingleEpsilon for float32, DefaultEpsilon for float64.
package matrix

// ---------- Defaults ----------

// Numeric policy.
const (
	// DefaultEpsilon defines the near-zero tolerance of double-precision matrices.
	DefaultEpsilon = 1e-9

	// DefaultSingleEpsilon defines the near-zero tolerance of single-precision matrices.
	// float32 keeps about 7 significant digits and elimination spends some of
	// them on round-off, so the threshold sits well above the unit round-off;
	// entries that small relative to the largest magnitude read as zero.
	DefaultSingleEpsilon = 1e-4

	// DefaultValidateNaNInf toggles strict finite-value validation on construction and Set.
	DefaultValidateNaNInf = true
)

// ---------- Panic messages ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// ---------- Option type ----------

// Option adjusts the numeric policy of a matrix under construction.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	eps            float64 // >= 0; meaningful only when epsSet
	epsSet         bool    // false ⇒ precision default of the element type
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Setters ----------

// WithEpsilon sets the near-zero tolerance eps used by elimination and equality.
// Implementation:
//   - Stage 1: reject NaN, ±Inf and negative eps with a panic.
//   - Stage 2: the returned setter records eps and marks it explicit.
//
// Behavior highlights:
//   - The panic fires when WithEpsilon is called, not when the option is applied.
//   - eps == 0 turns every comparison into an exact one.
//
// Inputs:
//   - eps: tolerance, finite and >= 0.
//
// Returns:
//   - Option: setter for New, FromRows and the other constructors.
//
// Complexity:
//   - O(1).
//
// Notes:
//   - The value is converted to the element type of the matrix being built;
//     float32 matrices therefore round eps to single precision.
//
// AI-Hints:
//   - Raise eps for ill-conditioned inputs whose round-off would otherwise
//     leave phantom pivots after elimination.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) {
		o.eps = eps
		o.epsSet = true
	}
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, construction, Set and elementwise operations reject NaN/±Inf
// with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets NaN and ±Inf through construction and kernels.
// Implementation:
//   - Stage 1: clear the validation flag.
//
// Behavior highlights:
//   - Allows ±Inf/NaN to pass through, e.g. Reciprocal of a matrix with zeros.
//
// Notes:
//   - This flag propagates only on creation and to derived matrices.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts on top of the defaults.
// Useful for inspecting the effective configuration in tests.
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Epsilon returns the configured tolerance and whether it was set explicitly.
func (o Options) Epsilon() (float64, bool) { return o.eps, o.epsSet }

// ValidateNaNInf reports whether finite-value validation is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// Setters apply in order (last-writer-wins).
// Complexity: O(k) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		set(&o) // later setters override earlier ones
	}

	return o
}

// epsilonFor resolves the tolerance for element type T.
func epsilonFor[T Float](o Options) T {
	if o.epsSet {
		return T(o.eps)
	}

	return T(PrecisionOf[T]().Epsilon)
}
