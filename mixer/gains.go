// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"math"
	"time"
)

const twoPi = 2 * math.Pi

// DefaultOrbitStep is the orbit phase increment per rendered block, in radians.
const DefaultOrbitStep = 0.02

// EqualPowerGains returns the crossfade gains for position x in [0,1]:
// cos(x·π/2) for bus A and sin(x·π/2) for bus B. The squares always sum to 1.
func EqualPowerGains(x float64) (gainA, gainB float64) {
	angle := x * 0.5 * math.Pi
	return math.Cos(angle), math.Sin(angle)
}

// OrbitGains returns the left/right spatialization gains for an oscillator
// phase. The pan position sin(phase) in [-1,1] is mapped onto an equal-power
// pan law, so a full sweep keeps loudness constant.
func OrbitGains(phase float64) (left, right float64) {
	pan := math.Sin(phase)
	x := (pan + 1) / 2
	angle := x * math.Pi / 2

	return math.Cos(angle), math.Sin(angle)
}

// advancePhase adds step to phase and wraps the result into [0, 2π).
func advancePhase(phase, step float64) float64 {
	phase += step
	if phase >= twoPi || phase < 0 {
		phase = math.Mod(phase, twoPi)
		if phase < 0 {
			phase += twoPi
		}
		// rounding of a tiny negative remainder
		if phase >= twoPi {
			phase = 0
		}
	}

	return phase
}

// OrbitStepForPeriod returns the per-block phase increment that sweeps one
// full orbit in period at the given sample rate and block size. Hosts that
// want the same sweep speed on every device pass the result to WithOrbitStep.
func OrbitStepForPeriod(period time.Duration, sampleRate float64, blockSize int) float64 {
	if period <= 0 || sampleRate <= 0 || blockSize <= 0 {
		return DefaultOrbitStep
	}

	blocks := period.Seconds() * sampleRate / float64(blockSize)

	return twoPi / blocks
}
