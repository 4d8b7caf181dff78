// SPDX-License-Identifier: EPL-2.0

package meter

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/cwbudde/algo-dsp/measure/loudness"
	timestats "github.com/cwbudde/algo-dsp/stats/time"
	"github.com/cwbudde/algo-vecmath"
)

// Levels summarizes everything written to a Meter.
type Levels struct {
	Frames int

	PeakDB  float64 // sample peak over both channels, dBFS
	RMSDB   float64 // RMS over both channels, dBFS
	CrestDB float64 // peak to RMS ratio; 0 for silence

	// Correlation is the normalized L/R cross-product in [-1, 1]: 1 for a
	// centred mono image, -1 for inverted channels, 0 when either channel
	// is silent.
	Correlation float64

	// LoudnessLUFS is the gated integrated loudness.
	LoudnessLUFS float64
}

// Meter accumulates level statistics over stereo blocks. It is not safe for
// concurrent use.
type Meter struct {
	left, right *timestats.StreamingStats
	loud        *loudness.Meter

	crossSum float64

	l64, r64, prod, frame []float64
}

// New returns a meter for stereo audio at sampleRate.
func New(sampleRate float64) *Meter {
	loud := loudness.NewMeter(loudness.WithSampleRate(sampleRate), loudness.WithChannels(2))
	loud.StartIntegration()

	return &Meter{
		left:  timestats.NewStreamingStats(),
		right: timestats.NewStreamingStats(),
		loud:  loud,
		frame: make([]float64, 2),
	}
}

// Write adds one block. A nil right channel repeats the left one; otherwise
// only the frames both channels hold are used.
func (m *Meter) Write(left, right []float32) {
	if right == nil {
		right = left
	}
	n := min(len(left), len(right))
	if n == 0 {
		return
	}

	m.l64 = widen(m.l64, left[:n])
	m.r64 = widen(m.r64, right[:n])
	if cap(m.prod) < n {
		m.prod = make([]float64, n)
	}
	m.prod = m.prod[:n]

	m.left.Update(m.l64)
	m.right.Update(m.r64)

	vecmath.MulBlock(m.prod, m.l64, m.r64)
	for _, v := range m.prod {
		m.crossSum += v
	}

	for i := range n {
		m.frame[0], m.frame[1] = m.l64[i], m.r64[i]
		m.loud.ProcessSample(m.frame)
	}
}

// Levels reports the statistics of everything written since New or Reset.
func (m *Meter) Levels() Levels {
	l, r := m.left.Result(), m.right.Result()
	if l.Length == 0 {
		return Levels{
			PeakDB:       math.Inf(-1),
			RMSDB:        math.Inf(-1),
			LoudnessLUFS: math.Inf(-1),
		}
	}

	peak := max(l.Peak, r.Peak)
	rms := math.Sqrt((l.Energy + r.Energy) / float64(l.Length+r.Length))

	lv := Levels{
		Frames:       l.Length,
		PeakDB:       core.LinearToDB(peak),
		RMSDB:        core.LinearToDB(rms),
		LoudnessLUFS: m.loud.Integrated(),
	}
	if rms > 0 {
		lv.CrestDB = core.LinearToDB(peak / rms)
	}
	if denom := math.Sqrt(l.Energy * r.Energy); denom > 0 {
		lv.Correlation = core.Clamp(m.crossSum/denom, -1, 1)
	}

	return lv
}

// Reset discards all accumulated data.
func (m *Meter) Reset() {
	m.left.Reset()
	m.right.Reset()
	m.loud.Reset()
	m.loud.StartIntegration()
	m.crossSum = 0
}

// Peak returns the largest absolute sample value.
func Peak(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	return timestats.Peak(widen(nil, samples))
}

// RMS returns the root mean square of samples.
func RMS(samples []float32) float64 {
	if len(samples) == 0 {
		return 0
	}
	return timestats.RMS(widen(nil, samples))
}

// Measure computes Levels for a whole stereo buffer in one pass.
func Measure(sampleRate float64, left, right []float32) Levels {
	m := New(sampleRate)
	m.Write(left, right)

	return m.Levels()
}

func widen(dst []float64, src []float32) []float64 {
	if cap(dst) < len(src) {
		dst = make([]float64, len(src))
	}
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = float64(v)
	}

	return dst
}
