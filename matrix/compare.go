// SPDX-License-Identifier: MIT

// Package matrix - comparisons.
//
// Equal is exact (==) and suits integer element types or bit-reproducible
// pipelines. AllClose applies |a-b| <= atol + rtol*|b| in float64 and is the
// tool for comparing results across engines.
package matrix

import "math"

const opAllClose = "AllClose"

// Equal reports whether a and b have the same shape and identical elements.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r*c).
func Equal[T Element](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN tolerances never match.
//
// Errors:
//   - ErrNilMatrix, ErrShape.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose[T Element](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if err := validateNotNil(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := validateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	var av, bv float64
	for idx := range a.data {
		av, bv = float64(a.data[idx]), float64(b.data[idx])
		if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
			return false, nil // early exit on first violation (NaN included)
		}
	}

	return true, nil
}
