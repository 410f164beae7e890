// SPDX-License-Identifier: MIT

package matrix

// Convert returns m with every entry converted to U.
// The NaN/Inf policy is kept. The epsilon becomes the default of U unless m
// was built with WithEpsilon, in which case that value is converted as is.
// Converting float64 → float32 rounds to nearest single.
func Convert[U, T Float](m *Dense[T]) *Dense[U] {
	eps := U(PrecisionOf[U]().Epsilon)
	if m.epsSet {
		eps = U(m.eps)
	}
	out := &Dense[U]{
		r:              m.r,
		c:              m.c,
		data:           make([]U, len(m.data)),
		eps:            eps,
		epsSet:         m.epsSet,
		validateNaNInf: m.validateNaNInf,
	}
	for i, v := range m.data {
		out.data[i] = U(v)
	}

	return out
}
