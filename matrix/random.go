// SPDX-License-Identifier: MIT

package matrix

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// fillUniform writes row-major samples of U[lo, hi) into dst.
// The source is created per call from seed, so concurrent NewRandom calls never
// share generator state and equal seeds reproduce equal buffers.
func fillUniform[T Element](dst []T, seed int64, lo, hi float64) {
	u := distuv.Uniform{
		Min: lo,
		Max: hi,
		Src: rand.NewSource(uint64(seed)),
	}
	for idx := range dst {
		dst[idx] = T(u.Rand())
	}
}
