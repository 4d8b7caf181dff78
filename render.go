// SPDX-License-Identifier: EPL-2.0

package zenith

import (
	"context"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/cwbudde/algo-dsp/dsp/core"
	"github.com/ik5/zenith/audio"
	"github.com/ik5/zenith/mixer"
)

// RenderCrossfade mixes track a into track b following tr and returns the
// result as interleaved 16-bit stereo PCM at cfg.SampleRate.
//
// Both tracks are resampled to the render rate and mixed block by block with
// the crossfade held constant over each block. The render runs until both
// tracks are exhausted; the shorter one contributes silence after its end.
// ctx is checked between blocks. The sources are not closed.
func RenderCrossfade(ctx context.Context, a, b audio.Source, tr Transition, cfg RenderConfig) ([]int16, int, error) {
	if a == nil || b == nil {
		return nil, 0, ErrNilSource
	}

	if a.Channels() < 1 {
		return nil, 0, fmt.Errorf("track A: %w", audio.ErrNoChannels)
	}
	if b.Channels() < 1 {
		return nil, 0, fmt.Errorf("track B: %w", audio.ErrNoChannels)
	}
	if a.SampleRate() < 1 {
		return nil, 0, fmt.Errorf("track A: %w", ErrInvalidSampleRate)
	}
	if b.SampleRate() < 1 {
		return nil, 0, fmt.Errorf("track B: %w", ErrInvalidSampleRate)
	}

	rate := int(math.Round(cfg.SampleRate))
	if rate < 1 {
		return nil, 0, ErrInvalidSampleRate
	}

	block := cfg.BlockSize
	if block <= 0 {
		block = core.DefaultProcessorConfig().BlockSize
	}

	trackA, err := audio.NewBusReader(audio.NewResampler(a, rate), block)
	if err != nil {
		return nil, rate, fmt.Errorf("track A: %w", err)
	}
	trackB, err := audio.NewBusReader(audio.NewResampler(b, rate), block)
	if err != nil {
		return nil, rate, fmt.Errorf("track B: %w", err)
	}

	q, err := newQuantizer(cfg, rate)
	if err != nil {
		return nil, rate, err
	}

	engine := mixer.NewEngine(cfg.engineOptions()...)
	out := mixer.NewBus(block, 2)
	params := mixer.Params{
		Volume:       []float32{cfg.Volume},
		Crossfade:    []float32{0},
		OrbitEnabled: []float32{cfg.orbitFlag()},
	}

	pcm := make([]int16, 0, 2*rate)
	frame := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, rate, err
		}

		nA, doneA, err := pull(trackA)
		if err != nil {
			return nil, rate, fmt.Errorf("track A: %w", err)
		}
		nB, doneB, err := pull(trackB)
		if err != nil {
			return nil, rate, fmt.Errorf("track B: %w", err)
		}

		n := max(nA, nB)
		if n > 0 {
			params.Crossfade[0] = tr.At(frame, float64(rate))
			engine.Process(trackA.Bus(), trackB.Bus(), out, params)

			if cfg.Tap != nil {
				cfg.Tap(out.Left[:n], out.Right[:n])
			}

			start := len(pcm)
			pcm = slices.Grow(pcm, 2*n)[:start+2*n]
			q.quantize(pcm[start:], out.Left, out.Right, n)
			frame += n
		}

		if doneA && doneB {
			return pcm, rate, nil
		}
	}
}

// pull reads the next block and folds io.EOF into the done flag.
func pull(r *audio.BusReader) (int, bool, error) {
	n, err := r.Next()
	switch {
	case err == io.EOF:
		return n, true, nil
	case err != nil:
		return 0, false, err
	}

	return n, false, nil
}
