// SPDX-License-Identifier: EPL-2.0

package zenith

import "time"

// Transition is the window in which the mix moves from track A to track B.
type Transition struct {
	Start    time.Duration
	Duration time.Duration
}

// At returns the crossfade position for frame at sampleRate: 0 before Start,
// 1 after Start+Duration, a linear ramp between. A zero Duration is a cut.
func (t Transition) At(frame int, sampleRate float64) float32 {
	if sampleRate <= 0 {
		return 0
	}

	pos := float64(frame) / sampleRate
	start := t.Start.Seconds()
	if pos < start {
		return 0
	}
	if t.Duration <= 0 || pos >= start+t.Duration.Seconds() {
		return 1
	}

	return float32((pos - start) / t.Duration.Seconds())
}

// End returns the moment the mix is fully on track B.
func (t Transition) End() time.Duration {
	return t.Start + max(t.Duration, 0)
}
