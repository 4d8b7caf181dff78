// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/zenith/utils"
)

const (
	resampleChunkFrames = 1024
	maxEmptyReads       = 8
)

// Resampler streams from src to target sample rate using cubic interpolation.
// Works on interleaved samples; preserves channel count.
// A one-pole low-pass is applied to the source when downsampling.
type Resampler struct {
	src      Source
	dstRate  int
	step     float64 // source frames per output frame
	channels int

	// hist holds four consecutive source frames t-1, t0, t+1, t+2.
	// valid marks frames that came from the source rather than edge padding.
	hist   []float32
	valid  [4]bool
	primed bool
	frac   float64

	in    []float32
	inPos int
	inLen int
	eof   bool

	lowpass  bool
	lpState  []float32
	lpPrimed bool
}

const lowpassAlpha = 0.5

func NewResampler(src Source, dstRate int) *Resampler {
	channels := max(src.Channels(), 1)

	r := &Resampler{
		src:      src,
		dstRate:  dstRate,
		step:     float64(src.SampleRate()) / float64(dstRate),
		channels: channels,
		hist:     make([]float32, 4*channels),
		in:       make([]float32, resampleChunkFrames*channels),
		lpState:  make([]float32, channels),
	}
	r.lowpass = r.step > 1

	return r
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }
func (r *Resampler) BufSize() int    { return r.src.BufSize() }

func (r *Resampler) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (r *Resampler) frame(k int) []float32 {
	return r.hist[k*r.channels : (k+1)*r.channels]
}

// pull copies the next source frame into dst. It reports false once the
// source is exhausted.
func (r *Resampler) pull(dst []float32) (bool, error) {
	empty := 0
	for r.inPos >= r.inLen {
		if r.eof {
			return false, nil
		}

		n, err := r.src.ReadSamples(r.in)
		r.inPos, r.inLen = 0, n/r.channels

		switch {
		case err == io.EOF:
			r.eof = true
		case err != nil:
			return false, fmt.Errorf("resampler source: %w", err)
		case r.inLen == 0:
			empty++
			if empty >= maxEmptyReads {
				return false, io.ErrNoProgress
			}
		}
	}

	off := r.inPos * r.channels
	copy(dst, r.in[off:off+r.channels])
	r.inPos++

	if r.lowpass {
		if !r.lpPrimed {
			copy(r.lpState, dst)
			r.lpPrimed = true
		}
		for c := range dst {
			dst[c] = lowpassAlpha*dst[c] + (1-lowpassAlpha)*r.lpState[c]
			r.lpState[c] = dst[c]
		}
	}

	return true, nil
}

func (r *Resampler) prime() error {
	first := r.frame(1)
	ok, err := r.pull(first)
	if err != nil {
		return err
	}
	if !ok {
		return io.EOF
	}

	// t-1 mirrors the first frame
	copy(r.frame(0), first)
	r.valid[1] = true

	for k := 2; k < 4; k++ {
		ok, err := r.pull(r.frame(k))
		if err != nil {
			return err
		}
		r.valid[k] = ok
		if !ok {
			copy(r.frame(k), r.frame(k-1))
		}
	}
	r.primed = true

	return nil
}

func (r *Resampler) shift() error {
	copy(r.hist, r.hist[r.channels:])
	r.valid[0], r.valid[1], r.valid[2] = r.valid[1], r.valid[2], r.valid[3]

	last := r.frame(3)
	ok, err := r.pull(last)
	if err != nil {
		return err
	}
	r.valid[3] = ok
	if !ok {
		copy(last, r.frame(2))
	}

	return nil
}

// ReadSamples produces dst samples at the destination rate.
// dst length should be a multiple of r.channels.
func (r *Resampler) ReadSamples(dst []float32) (int, error) {
	if len(dst)%r.channels != 0 {
		return 0, ErrInvalidDstSize
	}
	if !(r.step > 0) || math.IsInf(r.step, 0) {
		return 0, fmt.Errorf("%w: %d Hz to %d Hz", ErrInvalidRate, r.src.SampleRate(), r.dstRate)
	}
	if r.step == 1 {
		return r.src.ReadSamples(dst)
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			return 0, err
		}
	}

	frames := len(dst) / r.channels
	written := 0

	for written < frames {
		for r.frac >= 1 {
			r.frac--
			if err := r.shift(); err != nil {
				return written * r.channels, err
			}
		}

		if !r.valid[1] {
			return written * r.channels, io.EOF
		}

		out := dst[written*r.channels : (written+1)*r.channels]
		y0, y1, y2, y3 := r.frame(0), r.frame(1), r.frame(2), r.frame(3)
		if r.valid[2] {
			x := float32(r.frac)
			for c := range out {
				out[c] = utils.CubicInterpolate(y0[c], y1[c], y2[c], y3[c], x)
			}
		} else {
			// The last source frame is held until the next one is due.
			copy(out, y1)
		}

		written++
		r.frac += r.step
	}

	return written * r.channels, nil
}
