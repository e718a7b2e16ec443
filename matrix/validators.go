// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for operand checks.
//  - Return plain sentinel errors (lightly tagged) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, O(1) and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures every operand is non-nil.
func validateNotNil[T Element](ms ...*Dense[T]) error {
	for _, m := range ms {
		if m == nil {
			return validatorErrorf("validateNotNil", ErrNilMatrix)
		}
	}

	return nil
}

// validateSameShape ensures a and b have equal dimensions (element-wise ops).
// Assumes both operands are non-nil.
func validateSameShape[T Element](a, b *Dense[T]) error {
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(
			fmt.Sprintf("validateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c),
			ErrShape,
		)
	}

	return nil
}

// validateDotCompatible ensures l.Cols == r.Rows.
// Assumes both operands are non-nil.
func validateDotCompatible[T Element](l, r *Dense[T]) error {
	if l.c != r.r {
		return validatorErrorf(
			fmt.Sprintf("validateDotCompatible: %dx%d · %dx%d", l.r, l.c, r.r, r.c),
			ErrShape,
		)
	}

	return nil
}
