// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Own storage exclusively: every constructor, Clone and CopyFrom allocate or
//     reuse a buffer that is never shared with another Dense.
//
// Complexity quicksheet:
//   - NewEmpty: O(1); NewZeros/NewRandom/FromRows: O(r*c); At/Set: O(1);
//     Clone/CopyFrom: O(r*c).
package matrix

import "fmt"

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxNewZeros = "NewZeros" // ctor tag
	ctxNewRand  = "NewRandom"
	ctxFromRows = "FromRows"
	ctxCopyFrom = "CopyFrom"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (height, width); both >= 0 and fixed for the
//     lifetime of the instance except across CopyFrom.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j);
//     nil for an empty matrix.
//   - eng runs Transpose/Dot/element-wise kernels for this instance.
//
// A Dense is not safe for concurrent mutation; concurrent reads are fine.
type Dense[T Element] struct {
	r, c int
	data []T
	eng  Engine[T]
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[float64])(nil)

// NewEmpty returns a 0×0 matrix that holds no storage.
// Complexity: O(1).
func NewEmpty[T Element](opts ...Option[T]) *Dense[T] {
	o := gatherOptions(opts...)

	return &Dense[T]{eng: o.engine}
}

// NewZeros creates a rows×cols matrix with every element set to the zero value of T.
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate a zero-filled buffer (nil when the area is zero).
//
// Zero-area shapes (0×k, k×0) are legal and hold no storage.
//
// Errors:
//   - ErrInvalidDimensions (negative dimension).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewZeros[T Element](rows, cols int, opts ...Option[T]) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewZeros, rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return newDense(rows, cols, o.engine), nil
}

// NewRandom creates a rows×cols matrix filled, row-major, with independent
// uniform samples from [DefaultRandomMin, DefaultRandomMax) (or the interval
// given by WithRandomRange), drawn from a generator seeded with seed.
// Implementation:
//   - Stage 1: validate shape and seed (seed == 0 is rejected).
//   - Stage 2: allocate and fill through a per-call source; no global state.
//
// Behavior highlights:
//   - Same (rows, cols, seed, range) ⇒ identical contents on every run.
//   - Integer element types receive the truncated sample (mostly zero).
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidSeed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewRandom[T Element](rows, cols int, seed int64, opts ...Option[T]) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewRand, rows, cols, ErrInvalidDimensions)
	}
	if seed == 0 {
		return nil, fmt.Errorf("%s(%d,%d): %w", ctxNewRand, rows, cols, ErrInvalidSeed)
	}
	o := gatherOptions(opts...)
	m := newDense(rows, cols, o.engine)
	fillUniform(m.data, seed, o.randMin, o.randMax)

	return m, nil
}

// FromRows builds a matrix from a rectangular 2D slice, copying every value.
// Implementation:
//   - Stage 1: H = len(rows), W = len(rows[0]) (0 for empty input).
//   - Stage 2: verify every row has length W before allocating.
//   - Stage 3: copy rows into the flat buffer.
//
// Errors:
//   - ErrShape when any row length differs from len(rows[0]).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Element](rows [][]T, opts ...Option[T]) (*Dense[T], error) {
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	for i := 1; i < h; i++ {
		if len(rows[i]) != w {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFromRows, i, len(rows[i]), w, ErrShape)
		}
	}
	o := gatherOptions(opts...)
	m := newDense(h, w, o.engine)
	for i := 0; i < h; i++ {
		copy(m.data[i*w:(i+1)*w], rows[i])
	}

	return m, nil
}

// newDense allocates without validation; callers guarantee rows, cols >= 0.
func newDense[T Element](rows, cols int, eng Engine[T]) *Dense[T] {
	m := &Dense[T]{r: rows, c: cols, eng: eng}
	if n := rows * cols; n > 0 {
		m.data = make([]T, n)
	}

	return m
}

// Rows returns the row count (H). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count (W). No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Height is an alias for Rows.
func (m *Dense[T]) Height() int { return m.r }

// Width is an alias for Cols.
func (m *Dense[T]) Width() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Engine returns the compute engine bound to m.
func (m *Dense[T]) Engine() Engine[T] { return m.eng }

// indexOf computes the row-major offset or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; the zero value is returned with the error.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// ToRows returns the contents as a freshly allocated [][]T; the inverse of FromRows.
func (m *Dense[T]) ToRows() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy: same shape, values and engine, new buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := newDense(m.r, m.c, m.eng)
	copy(cp.data, m.data)

	return cp
}

// CopyFrom replaces m's shape, values and engine with an independent copy of src.
// Implementation:
//   - Stage 1: reject nil operands; return early on self-assignment.
//   - Stage 2: reuse m's buffer when its capacity suffices, else allocate.
//   - Stage 3: copy values and adopt src's shape and engine.
//
// Behavior highlights:
//   - m.CopyFrom(m) is a no-op.
//   - Storage is never shared with src afterwards.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) when reallocating.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if m == nil || src == nil {
		return fmt.Errorf("Dense.%s: %w", ctxCopyFrom, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	n := src.r * src.c
	switch {
	case n == 0:
		m.data = nil
	case cap(m.data) >= n:
		m.data = m.data[:n]
	default:
		m.data = make([]T, n)
	}
	copy(m.data, src.data)
	m.r, m.c, m.eng = src.r, src.c, src.eng

	return nil
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in place, row-major.
// Used by activation layers; f must be pure.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}
