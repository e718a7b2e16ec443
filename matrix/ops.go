// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic surface of Dense: in-place element-wise
// updates (AddAssign, SubAssign, MulAssign), transposition and matrix
// multiplication. All functions validate operands first and return clear
// errors on shape mismatches; a failed call never mutates its operands.
//
// Notes:
//   - Kernels run on the engine bound to the (left) operand.
//   - Zero-area work is short-circuited here; engines never see empty shapes.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd       = "AddAssign"
	opSub       = "SubAssign"
	opMul       = "MulAssign"
	opTranspose = "Transpose"
	opDot       = "Dot"
	opScale     = "Scale"
	opClip      = "Clip"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// engineErrorf tags an engine failure with the operation and engine name and
// makes it match both ErrEngine and the engine's own error.
func engineErrorf[T Element](tag string, e Engine[T], err error) error {
	return fmt.Errorf("%s: engine %q: %w: %w", tag, e.Name(), ErrEngine, err)
}

// elementwiseKernel selects one in-place kernel of an Engine.
type elementwiseKernel[T Element] func(e Engine[T], dst, b []T) error

// assign runs an in-place element-wise kernel m ⊕= b.
// Implementation:
//   - Stage 1: validate non-nil operands and identical shapes.
//   - Stage 2: CPU engine runs directly on m's storage (cannot fail).
//   - Stage 3: other engines write into a staged copy committed only on success.
//
// Behavior highlights:
//   - Strong guarantee: on error m keeps its pre-call values.
//   - b is never modified; b == m is legal.
//
// Complexity:
//   - Time O(r*c); Space O(1) on CPU, O(r*c) staging otherwise.
func (m *Dense[T]) assign(op string, b *Dense[T], kernel elementwiseKernel[T]) (*Dense[T], error) {
	if err := validateNotNil(m, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := validateSameShape(m, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if len(m.data) == 0 {
		return m, nil
	}
	if isCPU(m.eng) {
		_ = kernel(m.eng, m.data, b.data)

		return m, nil
	}

	stage := make([]T, len(m.data))
	copy(stage, m.data)
	if err := kernel(m.eng, stage, b.data); err != nil {
		return nil, engineErrorf(op, m.eng, err)
	}
	m.data = stage

	return m, nil
}

// AddAssign performs m[r,c] += b[r,c] and returns m.
// Errors: ErrNilMatrix, ErrShape (shape mismatch), ErrEngine.
func (m *Dense[T]) AddAssign(b *Dense[T]) (*Dense[T], error) {
	return m.assign(opAdd, b, func(e Engine[T], dst, src []T) error { return e.Add(dst, src) })
}

// SubAssign performs m[r,c] -= b[r,c] and returns m.
// Errors: ErrNilMatrix, ErrShape (shape mismatch), ErrEngine.
func (m *Dense[T]) SubAssign(b *Dense[T]) (*Dense[T], error) {
	return m.assign(opSub, b, func(e Engine[T], dst, src []T) error { return e.Sub(dst, src) })
}

// MulAssign performs the Hadamard update m[r,c] *= b[r,c] and returns m.
// Errors: ErrNilMatrix, ErrShape (shape mismatch), ErrEngine.
func (m *Dense[T]) MulAssign(b *Dense[T]) (*Dense[T], error) {
	return m.assign(opMul, b, func(e Engine[T], dst, src []T) error { return e.Mul(dst, src) })
}

// Transpose returns a new matrix t with t[c,r] = s[r,c]; s is never mutated.
// The result inherits s's engine.
//
// Errors:
//   - ErrNilMatrix, ErrEngine.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Element](s *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(s); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res := newDense(s.c, s.r, s.eng)
	if len(s.data) == 0 {
		return res, nil
	}
	if err := s.eng.Transpose(res.data, s.data, s.r, s.c); err != nil {
		return nil, engineErrorf(opTranspose, s.eng, err)
	}

	return res, nil
}

// Dot performs standard matrix multiplication P = L × R.
// Implementation:
//   - Stage 1: validate non-nil operands and l.Cols == r.Rows.
//   - Stage 2: allocate P (l.Rows × r.Cols), engine of l.
//   - Stage 3: empty result or empty inner dimension ⇒ zero matrix; else engine Dot.
//
// Behavior highlights:
//   - P[i,j] = Σ_k L[i,k]·R[k,j], accumulated from zero with k ascending
//     on the CPU engine.
//   - Operands are never mutated; l == r is legal for square inputs.
//
// Errors:
//   - ErrNilMatrix, ErrShape (inner mismatch), ErrEngine.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Dot[T Element](l, r *Dense[T]) (*Dense[T], error) {
	if err := validateNotNil(l, r); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	if err := validateDotCompatible(l, r); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	res := newDense(l.r, r.c, l.eng)
	if len(res.data) == 0 || l.c == 0 {
		return res, nil
	}
	if err := l.eng.Dot(res.data, l.data, r.data, l.r, l.c, r.c); err != nil {
		return nil, engineErrorf(opDot, l.eng, err)
	}

	return res, nil
}

// Scale returns a new matrix with every element multiplied by alpha.
// alpha = 0 yields an explicit zero matrix of the same shape.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Scale[T Element](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newDense(m.r, m.c, m.eng)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Clip returns a copy of m with each element clamped into [lo, hi].
// Bounds given in the wrong order are swapped.
func Clip[T Element](m *Dense[T], lo, hi T) (*Dense[T], error) {
	if err := validateNotNil(m); err != nil {
		return nil, matrixErrorf(opClip, err)
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	res := newDense(m.r, m.c, m.eng)
	for idx, v := range m.data {
		switch {
		case v < lo:
			v = lo
		case v > hi:
			v = hi
		}
		res.data[idx] = v
	}

	return res, nil
}
