// SPDX-License-Identifier: MIT

// Package tensorengine runs matrix kernels on gorgonia.org/tensor.
//
// Buffers are wrapped as *tensor.Dense without copying and the operation is
// dispatched to a tensor.Engine: tensor.StdEng by default, or any engine given
// to WithBackend (an MPS/CUDA engine embedding StdEng plugs in here the same
// way gorgonia's device engines do).
//
//	eng := tensorengine.New[float32]()
//	w, err := matrix.NewRandom(128, 64, 7, matrix.WithEngine[float32](eng))
package tensorengine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnet/matrix"
	"gorgonia.org/tensor"
)

// Name is reported by Engine.Name for the default backend.
const Name = "gorgonia-tensor"

// ErrBufferLength indicates a buffer whose length disagrees with its shape.
var ErrBufferLength = errors.New("tensorengine: buffer length mismatch")

// ErrUnexpectedData indicates that a tensor operation returned a backing
// slice of another element type.
var ErrUnexpectedData = errors.New("tensorengine: unexpected result data")

// Float is the element set gorgonia's BLAS-backed kernels support.
type Float interface {
	float32 | float64
}

// Engine is a gorgonia-backed matrix.Engine[T].
type Engine[T Float] struct {
	backend tensor.Engine
	name    string
}

var (
	_ matrix.Engine[float32] = (*Engine[float32])(nil)
	_ matrix.Engine[float64] = (*Engine[float64])(nil)
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	backend tensor.Engine
	name    string
}

// WithBackend routes every operation through e instead of tensor.StdEng.
// A nil e is ignored.
func WithBackend(e tensor.Engine, name string) Option {
	return func(c *config) {
		if e == nil {
			return
		}
		c.backend = e
		if name != "" {
			c.name = name
		}
	}
}

// New returns an engine backed by tensor.StdEng unless WithBackend says otherwise.
func New[T Float](opts ...Option) *Engine[T] {
	c := config{backend: tensor.StdEng{}, name: Name}
	for _, o := range opts {
		o(&c)
	}

	return &Engine[T]{backend: c.backend, name: c.name}
}

// Name implements matrix.Engine.
func (e *Engine[T]) Name() string { return e.name }

// wrap views buf as a rows×cols tensor sharing its storage.
func (e *Engine[T]) wrap(buf []T, rows, cols int) *tensor.Dense {
	return tensor.New(
		tensor.WithShape(rows, cols),
		tensor.WithBacking(buf),
		tensor.WithEngine(e.backend),
	)
}

// Dot computes dst = l·r via tensor.MatMul.
func (e *Engine[T]) Dot(dst, l, r []T, m, k, n int) error {
	if len(l) != m*k || len(r) != k*n || len(dst) != m*n {
		return fmt.Errorf("Dot(%d,%d,%d): %w", m, k, n, ErrBufferLength)
	}
	out, err := tensor.MatMul(e.wrap(l, m, k), e.wrap(r, k, n))
	if err != nil {
		return fmt.Errorf("Dot: %w", err)
	}

	return commit(dst, out)
}

// Transpose copies src into dst, then transposes dst's tensor view in place
// (T marks the axes, Transpose moves the data).
func (e *Engine[T]) Transpose(dst, src []T, rows, cols int) error {
	if len(src) != rows*cols || len(dst) != rows*cols {
		return fmt.Errorf("Transpose(%d,%d): %w", rows, cols, ErrBufferLength)
	}
	copy(dst, src)
	t := e.wrap(dst, rows, cols)
	if err := t.T(); err != nil {
		return fmt.Errorf("Transpose: %w", err)
	}
	if err := t.Transpose(); err != nil {
		return fmt.Errorf("Transpose: %w", err)
	}

	return commit(dst, t)
}

// Add performs dst += b via tensor.Add.
func (e *Engine[T]) Add(dst, b []T) error {
	return e.elementwise("Add", dst, b, tensor.Add)
}

// Sub performs dst -= b via tensor.Sub.
func (e *Engine[T]) Sub(dst, b []T) error {
	return e.elementwise("Sub", dst, b, tensor.Sub)
}

// Mul performs dst *= b via tensor.Mul.
func (e *Engine[T]) Mul(dst, b []T) error {
	return e.elementwise("Mul", dst, b, tensor.Mul)
}

type binaryOp func(a, b interface{}, opts ...tensor.FuncOpt) (tensor.Tensor, error)

func (e *Engine[T]) elementwise(op string, dst, b []T, f binaryOp) error {
	if len(dst) != len(b) {
		return fmt.Errorf("%s(%d,%d): %w", op, len(dst), len(b), ErrBufferLength)
	}
	n := len(dst)
	out, err := f(e.wrap(dst, 1, n), e.wrap(b, 1, n))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return commit(dst, out)
}

// commit copies the result data into dst.
func commit[T Float](dst []T, out tensor.Tensor) error {
	data, ok := out.Data().([]T)
	if !ok || len(data) != len(dst) {
		return fmt.Errorf("commit: got %T: %w", out.Data(), ErrUnexpectedData)
	}
	copy(dst, data)

	return nil
}
