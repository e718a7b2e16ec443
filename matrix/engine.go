// SPDX-License-Identifier: MIT

// Package matrix - compute engines.
//
// Purpose:
//   - Separate the heavy kernels (Dot, Transpose, element-wise) from storage so an
//     accelerator-backed implementation can be substituted per matrix via
//     WithEngine without touching callers.
//   - Provide the reference CPU engine: pure generic Go, fixed loop orders.
//
// Contract for every Engine:
//   - Inputs are flat row-major slices; shapes are validated by the caller.
//   - Kernels are never invoked with a zero-length dimension.
//   - dst never aliases an input slice (the CPU engine alone may run in place).
//   - A non-nil error means dst content is unspecified; the core discards it.
package matrix

// Engine computes matrix kernels over flat row-major buffers.
type Engine[T Element] interface {
	// Name identifies the engine in error messages.
	Name() string

	// Dot writes the m×n product of l (m×k) and r (k×n) into dst (len m*n).
	Dot(dst, l, r []T, m, k, n int) error

	// Transpose writes the cols×rows transpose of src (rows×cols) into dst.
	Transpose(dst, src []T, rows, cols int) error

	// Add performs dst[i] += b[i].
	Add(dst, b []T) error

	// Sub performs dst[i] -= b[i].
	Sub(dst, b []T) error

	// Mul performs dst[i] *= b[i] (Hadamard).
	Mul(dst, b []T) error
}

const cpuEngineName = "cpu"

// cpuEngine is the reference Engine: plain loops, no allocations, no errors.
type cpuEngine[T Element] struct{}

var _ Engine[float64] = cpuEngine[float64]{}

// CPU returns the reference pure-Go engine, the default for every Dense.
func CPU[T Element]() Engine[T] { return cpuEngine[T]{} }

func (cpuEngine[T]) Name() string { return cpuEngineName }

// Dot accumulates each output cell from the zero value over k left-to-right.
// Loop order is i→j→k so the summation order matches the mathematical
// definition exactly for every element type.
// Complexity: O(m*k*n).
func (cpuEngine[T]) Dot(dst, l, r []T, m, k, n int) error {
	var (
		i, j, p    int
		rowL, rowD int
		sum, zero  T
	)
	for i = 0; i < m; i++ {
		rowL = i * k
		rowD = i * n
		for j = 0; j < n; j++ {
			sum = zero
			for p = 0; p < k; p++ {
				sum += l[rowL+p] * r[p*n+j]
			}
			dst[rowD+j] = sum
		}
	}

	return nil
}

// Transpose maps src[i*cols+j] to dst[j*rows+i].
func (cpuEngine[T]) Transpose(dst, src []T, rows, cols int) error {
	var i, j, base int
	for i = 0; i < rows; i++ {
		base = i * cols
		for j = 0; j < cols; j++ {
			dst[j*rows+i] = src[base+j]
		}
	}

	return nil
}

func (cpuEngine[T]) Add(dst, b []T) error {
	for idx := range dst {
		dst[idx] += b[idx]
	}

	return nil
}

func (cpuEngine[T]) Sub(dst, b []T) error {
	for idx := range dst {
		dst[idx] -= b[idx]
	}

	return nil
}

func (cpuEngine[T]) Mul(dst, b []T) error {
	for idx := range dst {
		dst[idx] *= b[idx]
	}

	return nil
}

// isCPU reports whether e is the reference engine, whose kernels cannot fail
// and may therefore run directly on the destination storage.
func isCPU[T Element](e Engine[T]) bool {
	_, ok := e.(cpuEngine[T])

	return ok
}
