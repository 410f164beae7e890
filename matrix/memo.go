// SPDX-License-Identifier: MIT

package matrix

import "sync"

// memo is a single-assignment cell for a derived property of an immutable
// value. The first get computes and stores; concurrent callers block until
// the value is published and all observe the same result.
//
// A memo must not be copied after first use.
type memo[V any] struct {
	once sync.Once
	v    V
}

// get returns the cached value, computing it with f on first access.
func (m *memo[V]) get(f func() V) V {
	m.once.Do(func() { m.v = f() })

	return m.v
}
