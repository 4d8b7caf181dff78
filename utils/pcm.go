// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a sample in [-1,1] to 16-bit PCM, rounding to the
// nearest step. Values outside the range are clamped; NaN becomes 0.
func Float32ToInt16(x float32) int16 {
	switch {
	case x != x:
		return 0
	case x >= 1:
		return 32767
	case x <= -1:
		return -32768
	case x < 0:
		return int16(math.Round(float64(x) * 32768))
	default:
		return int16(math.Round(float64(x) * 32767))
	}
}

// InterleaveInt16 writes frames of left/right as interleaved 16-bit stereo
// PCM into dst, which must hold 2*frames values. A nil right channel repeats
// the left one.
func InterleaveInt16(dst []int16, left, right []float32, frames int) {
	if right == nil {
		right = left
	}
	for f := range frames {
		dst[2*f] = Float32ToInt16(left[f])
		dst[2*f+1] = Float32ToInt16(right[f])
	}
}

// IntToFloat32 scales an integer PCM sample of the given bit depth to [-1,1].
// Unknown depths are treated as 16-bit.
func IntToFloat32(v, bitDepth int) float32 {
	var scale float32
	switch bitDepth {
	case 8:
		scale = 1 << 7
	case 24:
		scale = 1 << 23
	case 32:
		scale = 1 << 31
	default:
		scale = 1 << 15
	}

	return float32(v) / scale
}
