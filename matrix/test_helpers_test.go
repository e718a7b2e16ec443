// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities shared by the tests.
//   • Provide engines that force the staged (non-CPU) path and engine failures.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
)

// Tolerances for float comparisons across kernels.
const (
	RtolTiny = 1e-12
	AtolTiny = 1e-12
)

// MustZeros ALLOCATES an r×c zero matrix or fails the test.
func MustZeros[T matrix.Element](t testing.TB, r, c int, opts ...matrix.Option[T]) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewZeros[T](r, c, opts...)
	require.NoError(t, err, "NewZeros(%d,%d)", r, c)

	return m
}

// MustFromRows BUILDS a matrix from a rectangular literal or fails the test.
func MustFromRows[T matrix.Element](t testing.TB, rows [][]T, opts ...matrix.Option[T]) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err, "FromRows")

	return m
}

// MustRandom ALLOCATES a seeded random matrix or fails the test.
func MustRandom[T matrix.Element](t testing.TB, r, c int, seed int64, opts ...matrix.Option[T]) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewRandom[T](r, c, seed, opts...)
	require.NoError(t, err, "NewRandom(%d,%d,%d)", r, c, seed)

	return m
}

// MustAt READS m[i,j] or fails the test.
func MustAt[T matrix.Element](t testing.TB, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// MustSet WRITES v to m[i,j] or fails the test.
func MustSet[T matrix.Element](t testing.TB, m *matrix.Dense[T], i, j int, v T) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d,%v)", i, j, v)
}

// CompareExact ASSERTS shape and strict element equality against a 2D literal.
func CompareExact[T matrix.Element](t testing.TB, want [][]T, m *matrix.Dense[T]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "Rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "Cols of row %d", i)
		for j := range want[i] {
			require.Equal(t, want[i][j], MustAt(t, m, i, j), "m[%d,%d]", i, j)
		}
	}
}

// CompareClose ASSERTS AllClose(got, want) under (rtol, atol).
func CompareClose[T matrix.Element](t testing.TB, want, got *matrix.Dense[T], rtol, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, rtol, atol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\nwant\n%sgot\n%s", want, got)
}

// stagedEngine forwards to the CPU kernels under a different dynamic type,
// so the core treats it as a foreign engine and stages in-place updates.
type stagedEngine[T matrix.Element] struct{ matrix.Engine[T] }

func newStagedEngine[T matrix.Element]() stagedEngine[T] {
	return stagedEngine[T]{matrix.CPU[T]()}
}

func (stagedEngine[T]) Name() string { return "staged" }

// errKernel is returned by failingEngine.
var errKernel = errors.New("kernel exploded")

// failingEngine scribbles over dst and then fails every kernel.
type failingEngine[T matrix.Element] struct{}

func (failingEngine[T]) Name() string { return "failing" }

func (failingEngine[T]) Dot(dst, _, _ []T, _, _, _ int) error {
	scribble(dst)
	return errKernel
}

func (failingEngine[T]) Transpose(dst, _ []T, _, _ int) error {
	scribble(dst)
	return errKernel
}

func (failingEngine[T]) Add(dst, _ []T) error {
	scribble(dst)
	return errKernel
}

func (failingEngine[T]) Sub(dst, _ []T) error {
	scribble(dst)
	return errKernel
}

func (failingEngine[T]) Mul(dst, _ []T) error {
	scribble(dst)
	return errKernel
}

func scribble[T matrix.Element](dst []T) {
	for i := range dst {
		dst[i] = 42
	}
}
