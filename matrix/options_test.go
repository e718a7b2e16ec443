// SPDX-License-Identifier: MIT
// Package matrix_test: tests for functional options.
//
// Purpose:
//   - Verify documented defaults.
//   - Verify last-writer-wins semantics.
//   - Verify panics on nonsensical option values.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnet/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	s := matrix.GatherOptionsSnapshot_TestOnly[float64]()
	require.Equal(t, "cpu", s.EngineName)
	require.Equal(t, matrix.DefaultRandomMin, s.RandMin)
	require.Equal(t, matrix.DefaultRandomMax, s.RandMax)
}

func TestOptions_LastWriterWins(t *testing.T) {
	s := matrix.GatherOptionsSnapshot_TestOnly(
		matrix.WithRandomRange[float64](-5, 5),
		matrix.WithEngine[float64](newStagedEngine[float64]()),
		matrix.WithRandomRange[float64](0, 2),
		nil, // ignored
	)
	require.Equal(t, "staged", s.EngineName)
	require.Equal(t, 0.0, s.RandMin)
	require.Equal(t, 2.0, s.RandMax)
}

func TestOptions_Panics(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicNilEngine_TestOnly, func() {
		matrix.WithEngine[float64](nil)
	})

	for name, bounds := range map[string][2]float64{
		"equal":    {1, 1},
		"reversed": {2, -2},
		"nan":      {math.NaN(), 1},
		"inf":      {-1, math.Inf(1)},
	} {
		t.Run(name, func(t *testing.T) {
			require.PanicsWithValue(t, matrix.PanicRandomRangeInvalid_TestOnly, func() {
				matrix.WithRandomRange[float64](bounds[0], bounds[1])
			})
		})
	}
}
