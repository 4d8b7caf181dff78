// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/zenith/mixer"
)

// BusReader pulls interleaved samples from a Source and splits them into a
// planar mixer.Bus of a fixed block size.
//
// Mono sources fill only the left channel, so the mixer duplicates it. Sources
// with more than two channels keep the first two. The bus is allocated once;
// Next reuses it for every block.
type BusReader struct {
	src       Source
	channels  int
	blockSize int

	buf  []float32
	bus  *mixer.Bus
	done bool
}

func NewBusReader(src Source, blockSize int) (*BusReader, error) {
	if blockSize <= 0 {
		return nil, ErrInvalidBlockSize
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	return &BusReader{
		src:       src,
		channels:  channels,
		blockSize: blockSize,
		buf:       make([]float32, blockSize*channels),
		bus:       mixer.NewBus(blockSize, min(channels, 2)),
	}, nil
}

func (r *BusReader) SampleRate() int { return r.src.SampleRate() }
func (r *BusReader) BlockSize() int  { return r.blockSize }

// Bus returns the block filled by the last call to Next.
func (r *BusReader) Bus() *mixer.Bus { return r.bus }

// Done reports whether the source is exhausted.
func (r *BusReader) Done() bool { return r.done }

func (r *BusReader) Close() error {
	if err := r.src.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// Next fills the bus with the next block and returns the number of frames
// taken from the source. Frames past that count are silence. Once the source
// is exhausted Next returns io.EOF, together with the final partial block if
// there is one.
func (r *BusReader) Next() (int, error) {
	if r.done {
		r.bus.Clear()
		return 0, io.EOF
	}

	filled := 0
	empty := 0
	for filled < len(r.buf) {
		n, err := r.src.ReadSamples(r.buf[filled:])
		filled += n

		if err == io.EOF {
			r.done = true
			break
		}
		if err != nil {
			r.bus.Clear()
			return 0, fmt.Errorf("bus reader: %w", err)
		}
		if n == 0 {
			empty++
			if empty >= maxEmptyReads {
				return 0, io.ErrNoProgress
			}
		}
	}

	frames := filled / r.channels
	r.deinterleave(frames)

	if r.done {
		return frames, io.EOF
	}

	return frames, nil
}

func (r *BusReader) deinterleave(frames int) {
	left, right := r.bus.Left, r.bus.Right

	switch r.channels {
	case 1:
		copy(left, r.buf[:frames])
	case 2:
		for f := range frames {
			left[f] = r.buf[2*f]
			right[f] = r.buf[2*f+1]
		}
	default:
		for f := range frames {
			base := f * r.channels
			left[f] = r.buf[base]
			right[f] = r.buf[base+1]
		}
	}

	clear(left[frames:])
	if right != nil {
		clear(right[frames:])
	}
}
