// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a [-1, 1] sample to 16-bit PCM, rounding to the
// nearest step. It is the exact inverse of dividing an int16 by 32768; the
// top of the range saturates at math.MaxInt16.
func Float32ToInt16(x float32) int16 {
	v := math.Round(float64(x) * 32768)
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

// Clamp limits x to [-1, 1].
func Clamp(x float32) float32 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
