// SPDX-License-Identifier: MIT

// Package matrix: element type set shared by Dense, engines and kernels.
package matrix

// Element is the set of scalar types a Dense may hold.
// Every member supports +, -, *, has a zero value, and converts to and from
// float64 (random fill and formatted output go through float64).
//
// Complex types are excluded: they do not convert from float64.
type Element interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}
