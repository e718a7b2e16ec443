// Package matrix_test contains unit tests for the operand validators.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		ar, ac  int
		br, bc  int
		wantErr error
	}{
		{"equal 2x3", 2, 3, 2, 3, nil},
		{"equal 0x0", 0, 0, 0, 0, nil},
		{"row mismatch", 2, 3, 3, 3, matrix.ErrShape},
		{"col mismatch", 2, 3, 2, 4, matrix.ErrShape},
		{"zero area differs", 0, 3, 3, 0, matrix.ErrShape},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := MustZeros[float64](t, tc.ar, tc.ac)
			b := MustZeros[float64](t, tc.br, tc.bc)
			err := matrix.ValidateSameShape_TestOnly(a, b)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// TestValidateDotCompatible checks the inner-dimension rule.
func TestValidateDotCompatible(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.ValidateDotCompatible_TestOnly(MustZeros[int](t, 2, 3), MustZeros[int](t, 3, 5)))
	require.NoError(t, matrix.ValidateDotCompatible_TestOnly(MustZeros[int](t, 2, 0), MustZeros[int](t, 0, 5)))

	err := matrix.ValidateDotCompatible_TestOnly(MustZeros[int](t, 2, 3), MustZeros[int](t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrShape)
	require.Contains(t, err.Error(), "2x3 · 2x3")
}

// TestValidateNotNil reports the first nil operand.
func TestValidateNotNil(t *testing.T) {
	t.Parallel()

	a := MustZeros[float32](t, 1, 1)
	require.NoError(t, matrix.ValidateNotNil_TestOnly(a, a))
	require.NoError(t, matrix.ValidateNotNil_TestOnly[float32]())
	require.ErrorIs(t, matrix.ValidateNotNil_TestOnly(a, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateNotNil_TestOnly[float32](nil), matrix.ErrNilMatrix)
}
