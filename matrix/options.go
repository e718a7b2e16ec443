// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense construction.
// This file defines:
//   - Option / options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective settings.
//
// Design goals:
//   - Deterministic behavior: no global state; randomness only through an
//     explicit, per-call seed.
//   - No dead switches: each option impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPrecision is the number of decimals used by String and by
	// Fprint/Print when a negative precision is requested.
	DefaultPrecision = 3

	// DefaultRandomMin is the inclusive lower bound of NewRandom samples.
	DefaultRandomMin = -1.0

	// DefaultRandomMax is the exclusive upper bound of NewRandom samples.
	DefaultRandomMax = 1.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilEngine          = "matrix: WithEngine: engine must be non-nil"
	panicRandomRangeInvalid = "matrix: WithRandomRange: bounds must be finite with lo < hi"
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option[T Element] func(*options[T])

// options stores the effective configuration after applying Option setters.
type options[T Element] struct {
	engine  Engine[T] // compute engine; CPU[T]() by default
	randMin float64   // DefaultRandomMin
	randMax float64   // DefaultRandomMax
}

// WithEngine selects the compute engine used by Transpose, Dot and the
// in-place element-wise operations of the constructed matrix.
// Results of Dot and Transpose inherit the engine of their (left) operand.
//
// Panics when e is nil.
func WithEngine[T Element](e Engine[T]) Option[T] {
	if e == nil {
		panic(panicNilEngine)
	}

	return func(o *options[T]) { o.engine = e }
}

// WithRandomRange sets the half-open interval [lo, hi) NewRandom samples from.
// Implementation:
//   - Stage 1: validate lo, hi are finite and lo < hi.
//   - Stage 2: return a setter writing both bounds.
//
// Panics with a stable message when the interval is invalid.
func WithRandomRange[T Element](lo, hi float64) Option[T] {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicRandomRangeInvalid)
	}

	return func(o *options[T]) {
		o.randMin = lo
		o.randMax = hi
	}
}

// gatherOptions applies user setters over the defaults in order.
func gatherOptions[T Element](user ...Option[T]) options[T] {
	o := options[T]{
		engine:  CPU[T](),
		randMin: DefaultRandomMin,
		randMax: DefaultRandomMax,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // last-writer-wins
		}
	}

	return o
}
