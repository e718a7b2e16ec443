// SPDX-License-Identifier: MIT

// Package blasengine runs matrix kernels on gonum: Dot through BLAS Gemm,
// Transpose through mat.Dense, element-wise updates through floats.
//
// It implements matrix.Engine[float64] and is selected per matrix:
//
//	m, err := matrix.NewZeros(64, 64, matrix.WithEngine[float64](blasengine.New()))
//
// Shapes are validated by the matrix package before any kernel runs; the
// kernels re-check buffer lengths and turn gonum panics into errors.
package blasengine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Name is reported by Engine.Name.
const Name = "gonum-blas"

// ErrBufferLength indicates a buffer whose length disagrees with its shape.
var ErrBufferLength = errors.New("blasengine: buffer length mismatch")

// Engine is a gonum-backed matrix.Engine[float64]. The zero value is ready to use.
type Engine struct{}

var _ matrix.Engine[float64] = Engine{}

// New returns the gonum engine.
func New() Engine { return Engine{} }

// Name implements matrix.Engine.
func (Engine) Name() string { return Name }

// Dot computes dst = l·r with a single Gemm call (alpha=1, beta=0).
func (Engine) Dot(dst, l, r []float64, m, k, n int) (err error) {
	if len(l) != m*k || len(r) != k*n || len(dst) != m*n {
		return fmt.Errorf("Dot(%d,%d,%d): %w", m, k, n, ErrBufferLength)
	}
	defer recoverInto(&err)

	a := blas64.General{Rows: m, Cols: k, Stride: k, Data: l}
	b := blas64.General{Rows: k, Cols: n, Stride: n, Data: r}
	c := blas64.General{Rows: m, Cols: n, Stride: n, Data: dst}
	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1, a, b, 0, c)

	return nil
}

// Transpose materializes srcᵀ with mat.Dense.CloneFrom and copies it row by row.
func (Engine) Transpose(dst, src []float64, rows, cols int) (err error) {
	if len(src) != rows*cols || len(dst) != rows*cols {
		return fmt.Errorf("Transpose(%d,%d): %w", rows, cols, ErrBufferLength)
	}
	defer recoverInto(&err)

	var t mat.Dense
	t.CloneFrom(mat.NewDense(rows, cols, src).T())
	raw := t.RawMatrix() // cols×rows
	for i := 0; i < raw.Rows; i++ {
		copy(dst[i*rows:(i+1)*rows], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
	}

	return nil
}

// Add performs dst += b.
func (Engine) Add(dst, b []float64) (err error) {
	return elementwise("Add", dst, b, floats.Add)
}

// Sub performs dst -= b.
func (Engine) Sub(dst, b []float64) (err error) {
	return elementwise("Sub", dst, b, floats.Sub)
}

// Mul performs dst *= b element-wise.
func (Engine) Mul(dst, b []float64) (err error) {
	return elementwise("Mul", dst, b, floats.Mul)
}

func elementwise(op string, dst, b []float64, f func(dst, s []float64)) (err error) {
	if len(dst) != len(b) {
		return fmt.Errorf("%s(%d,%d): %w", op, len(dst), len(b), ErrBufferLength)
	}
	defer recoverInto(&err)
	f(dst, b)

	return nil
}

// recoverInto converts a gonum panic (bad dimensions) into an error.
func recoverInto(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("blasengine: gonum panic: %v", r)
	}
}
