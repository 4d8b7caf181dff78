// SPDX-License-Identifier: EPL-2.0

package zenith

import (
	"fmt"
	"math/rand/v2"

	"github.com/cwbudde/algo-dsp/dsp/dither"
	"github.com/ik5/zenith/utils"
)

const outputBitDepth = 16

// quantizer writes frames of a planar stereo block as interleaved int16.
type quantizer interface {
	quantize(dst []int16, left, right []float32, frames int)
}

func newQuantizer(cfg RenderConfig, rate int) (quantizer, error) {
	if !cfg.Dither {
		return roundQuantizer{}, nil
	}

	left, err := newChannelQuantizer(rate, cfg.DitherSeed, 0)
	if err != nil {
		return nil, fmt.Errorf("dither: %w", err)
	}
	right, err := newChannelQuantizer(rate, cfg.DitherSeed, 1)
	if err != nil {
		return nil, fmt.Errorf("dither: %w", err)
	}

	return &ditherQuantizer{left: left, right: right}, nil
}

func newChannelQuantizer(rate int, seed, stream uint64) (*dither.Quantizer, error) {
	opts := []dither.Option{
		dither.WithBitDepth(outputBitDepth),
		dither.WithDitherType(dither.DitherTriangular),
	}
	if seed != 0 {
		opts = append(opts, dither.WithRNG(rand.New(rand.NewPCG(seed, stream))))
	}

	return dither.NewQuantizer(float64(rate), opts...)
}

type roundQuantizer struct{}

func (roundQuantizer) quantize(dst []int16, left, right []float32, frames int) {
	utils.InterleaveInt16(dst, left, right, frames)
}

// ditherQuantizer keeps one noise shaper per channel so error feedback never
// crosses channels.
type ditherQuantizer struct {
	left, right *dither.Quantizer
}

func (d *ditherQuantizer) quantize(dst []int16, left, right []float32, frames int) {
	if right == nil {
		right = left
	}
	for f := range frames {
		dst[2*f] = int16(d.left.ProcessInteger(float64(left[f])))
		dst[2*f+1] = int16(d.right.ProcessInteger(float64(right[f])))
	}
}
