// SPDX-License-Identifier: EPL-2.0

package zenith

import (
	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/ik5/zenith/mixer"
)

// RenderConfig controls RenderCrossfade. SampleRate is the output rate; both
// tracks are resampled to it. BlockSize is the mixer block length in frames.
type RenderConfig struct {
	core.ProcessorConfig

	// Volume is the master gain, held constant for the whole render.
	Volume float32
	// Orbit turns the auto-pan oscillator on.
	Orbit bool
	// OrbitStep is the phase increment per block in radians. Zero means
	// mixer.DefaultOrbitStep.
	OrbitStep float64

	// Dither quantizes with TPDF dither and noise shaping instead of
	// rounding to the nearest step.
	Dither bool
	// DitherSeed fixes the dither noise sequence when non-zero.
	DitherSeed uint64

	// Tap, when set, sees every rendered block before quantization.
	Tap func(left, right []float32)
}

// RenderOption mutates a RenderConfig.
type RenderOption func(*RenderConfig)

// DefaultRenderConfig returns the core processor defaults at unity volume.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ProcessorConfig: core.DefaultProcessorConfig(),
		Volume:          mixer.DefaultVolume,
	}
}

// WithProcessorOptions applies core options such as core.WithSampleRate and
// core.WithBlockSize.
func WithProcessorOptions(opts ...core.ProcessorOption) RenderOption {
	return func(cfg *RenderConfig) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.ProcessorConfig)
			}
		}
	}
}

// WithVolume sets the master gain.
func WithVolume(v float32) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Volume = v
	}
}

// WithOrbit enables the auto-pan with the given per-block step; zero keeps
// the default step.
func WithOrbit(step float64) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Orbit = true
		if step > 0 {
			cfg.OrbitStep = step
		}
	}
}

// WithDither enables dithered quantization. A zero seed draws a random one.
func WithDither(seed uint64) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Dither = true
		cfg.DitherSeed = seed
	}
}

// WithTap installs a block observer, e.g. a level meter.
func WithTap(tap func(left, right []float32)) RenderOption {
	return func(cfg *RenderConfig) {
		cfg.Tap = tap
	}
}

// ApplyRenderOptions applies zero or more options to the default config.
func ApplyRenderOptions(opts ...RenderOption) RenderConfig {
	cfg := DefaultRenderConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

func (cfg RenderConfig) engineOptions() []mixer.Option {
	if cfg.OrbitStep > 0 {
		return []mixer.Option{mixer.WithOrbitStep(cfg.OrbitStep)}
	}
	return nil
}

func (cfg RenderConfig) orbitFlag() float32 {
	if cfg.Orbit {
		return 1
	}
	return 0
}
