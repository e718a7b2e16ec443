// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks; each facade delegates to the
//     canonical constructor or kernel and never duplicates loops.
//   - Keep function names explicit and intention-revealing to improve discoverability.

package matrix

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity[T Element](n int, opts ...Option[T]) (*Dense[T], error) {
	I, err := NewZeros(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1
	}

	return I, nil
}

// NewFilled returns a rows×cols matrix with every element set to v.
// Handy as the all-ones operand of a Hadamard identity.
func NewFilled[T Element](rows, cols int, v T, opts ...Option[T]) (*Dense[T], error) {
	m, err := NewZeros(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return m, nil
}

// ZerosLike returns a zero matrix with m's shape and engine.
func ZerosLike[T Element](m *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf("ZerosLike", err)
	}

	return newDense(m.r, m.c, m.eng), nil
}

// Product is an alias for Dot: matrix product l × r.
func Product[T Element](l, r *Dense[T]) (*Dense[T], error) { return Dot(l, r) }

// T is an alias for Transpose.
func T[E Element](m *Dense[E]) (*Dense[E], error) { return Transpose(m) }
