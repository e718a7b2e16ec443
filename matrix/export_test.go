// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers and the options snapshot.
//
// Compiled only with the package tests, so the production API stays unchanged.

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicNilEngine_TestOnly          = panicNilEngine
	PanicRandomRangeInvalid_TestOnly = panicRandomRangeInvalid
)

// IsCPU_TestOnly forwards to isCPU.
func IsCPU_TestOnly[T Element](e Engine[T]) bool { return isCPU(e) }

// OptionsSnapshot is a stable, test-facing copy of internal options fields.
type OptionsSnapshot struct {
	EngineName string
	RandMin    float64
	RandMax    float64
}

// GatherOptionsSnapshot_TestOnly resolves opts and returns a snapshot.
func GatherOptionsSnapshot_TestOnly[T Element](opts ...Option[T]) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		EngineName: o.engine.Name(),
		RandMin:    o.randMin,
		RandMax:    o.randMax,
	}
}

// Data_TestOnly exposes the backing slice to check storage ownership.
func Data_TestOnly[T Element](m *Dense[T]) []T { return m.data }

// ValidateSameShape_TestOnly forwards to validateSameShape.
func ValidateSameShape_TestOnly[T Element](a, b *Dense[T]) error { return validateSameShape(a, b) }

// ValidateDotCompatible_TestOnly forwards to validateDotCompatible.
func ValidateDotCompatible_TestOnly[T Element](l, r *Dense[T]) error {
	return validateDotCompatible(l, r)
}

// ValidateNotNil_TestOnly forwards to validateNotNil.
func ValidateNotNil_TestOnly[T Element](ms ...*Dense[T]) error { return validateNotNil(ms...) }
