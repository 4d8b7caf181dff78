// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// Fast-path tolerances.
const (
	unityTolerance float32 = 0.001
	extremeLow     float32 = 0.001
	extremeHigh    float32 = 0.999
)

// Engine mixes two buses into one output, block by block.
//
// The zero value is ready to use with the default orbit step. An Engine holds
// state across blocks (orbit phase, crossfade gain cache) and must not be
// shared between goroutines.
type Engine struct {
	orbitStep  float64
	stepSet    bool
	orbitPhase float64

	cached        bool
	lastCrossfade float32
	lastGainA     float32
	lastGainB     float32
}

// Option configures an Engine.
type Option func(*Engine)

// WithOrbitStep sets the orbit phase increment per block, in radians.
// Non-finite or negative steps are ignored.
func WithOrbitStep(step float64) Option {
	return func(e *Engine) {
		if step >= 0 && !math.IsInf(step, 1) {
			e.orbitStep = step
			e.stepSet = true
		}
	}
}

// NewEngine returns an Engine with the given options applied.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		if opt != nil {
			opt(e)
		}
	}

	return e
}

// OrbitPhase returns the current orbit oscillator phase in [0, 2π).
func (e *Engine) OrbitPhase() float64 { return e.orbitPhase }

// Reset clears the orbit phase and the gain cache, e.g. after a seek.
func (e *Engine) Reset() {
	e.orbitPhase = 0
	e.cached = false
	e.lastCrossfade, e.lastGainA, e.lastGainB = 0, 0, 0
}

// Process renders one block from raw host automation. See Render.
func (e *Engine) Process(a, b, out *Bus, p Params) bool {
	return e.Render(a, b, out, TakeSnapshot(p))
}

// Render mixes buses a and b into out using the resolved parameters.
//
// The block size is len(out.Left); out is stereo when its right channel has
// the same length. Absent buses or channels are silence. Every written sample
// is finite. Render never allocates and always returns true, meaning the host
// should keep the node alive.
func (e *Engine) Render(a, b, out *Bus, s Snapshot) bool {
	if out == nil || len(out.Left) == 0 {
		return true
	}

	n := len(out.Left)
	outL := out.Left
	outR := out.Right
	stereo := len(outR) == n
	if !stereo && len(outR) > 0 {
		clear(outR)
	}

	aL, aR := a.channels()
	bL, bR := b.channels()

	if !s.Orbit && s.Volume.Near(1, unityTolerance) {
		switch {
		case s.Crossfade <= extremeLow:
			passthrough(outL, aL)
			if stereo {
				passthrough(outR, aR)
			}
			return true
		case s.Crossfade >= extremeHigh:
			passthrough(outL, bL)
			if stereo {
				passthrough(outR, bR)
			}
			return true
		}
	}

	gainA, gainB := e.crossfadeGains(s.Crossfade)

	orbitL, orbitR := float32(1), float32(1)
	if s.Orbit {
		e.orbitPhase = advancePhase(e.orbitPhase, e.step())
		l, r := OrbitGains(e.orbitPhase)
		orbitL, orbitR = float32(l), float32(r)
	}

	for i := range n {
		vol := s.Volume.ValueAt(i)

		saL := sampleAt(aL, i)
		saR := sampleAt(aR, i)
		sbL := sampleAt(bL, i)
		sbR := sampleAt(bR, i)

		l := saL*gainA + sbL*gainB
		r := saR*gainA + sbR*gainB

		if s.Orbit {
			l *= orbitL
			r *= orbitR
		}

		outL[i] = finiteOrZero(l * vol)
		if stereo {
			outR[i] = finiteOrZero(r * vol)
		}
	}

	return true
}

func (e *Engine) step() float64 {
	if !e.stepSet {
		return DefaultOrbitStep
	}

	return e.orbitStep
}

// crossfadeGains returns the cached gain pair, recomputing it only when the
// crossfade position changed since the previous generic block.
func (e *Engine) crossfadeGains(x float32) (float32, float32) {
	if !e.cached || x != e.lastCrossfade {
		ga, gb := EqualPowerGains(float64(x))
		e.lastGainA, e.lastGainB = float32(ga), float32(gb)
		e.lastCrossfade = x
		e.cached = true
	}

	return e.lastGainA, e.lastGainB
}

// passthrough copies src into dst when the lengths match and writes silence
// otherwise. Non-finite samples are zeroed during the copy.
func passthrough(dst, src []float32) {
	if len(src) != len(dst) {
		clear(dst)
		return
	}
	for i, v := range src {
		dst[i] = finiteOrZero(v)
	}
}

// sampleAt reads ch[i], treating absent channels and short buffers as silence.
func sampleAt(ch []float32, i int) float32 {
	if i < len(ch) {
		return ch[i]
	}

	return 0
}

// finiteOrZero returns v, or 0 when v is NaN or ±Inf.
func finiteOrZero(v float32) float32 {
	if v-v != 0 {
		return 0
	}

	return v
}
