// Package lvnet is the numerical core of a small neural-network library:
// a generic dense matrix with pluggable compute engines.
//
// 🚀 What is inside?
//
//	• matrix/             — Dense[T]: construction, access, element-wise
//	                        updates, Transpose, Dot, formatted output
//	• engine/blasengine/  — gonum BLAS engine for float64
//	• engine/tensorengine/ — gorgonia tensor engine for float32/float64,
//	                        with a backend hook for device engines
//	• examples/           — runnable programs
//
// ✨ Why lvnet?
//
//   - Safe by default – bounds-checked access, wrapped sentinel errors,
//     failed operations never mutate their operands
//   - Reproducible – seeded random fills with no global RNG state
//   - Swappable kernels – the same calling code runs on CPU, BLAS or tensor
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2, 3}, {4, 5, 6}})
//	b, _ := matrix.Transpose(a)
//	p, _ := matrix.Dot(a, b) // 2×2
//	_ = p.Print(3)
//
//	go get github.com/katalvlaran/lvnet/matrix
package lvnet
