// SPDX-License-Identifier: EPL-2.0

// Package pcmstream adapts the integer PCM readers of the go-audio codecs
// (wav, aiff) to audio.Source.
package pcmstream

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/zenith/audio"
	"github.com/ik5/zenith/utils"
)

// DefaultBufSize is the read size reported before the first ReadSamples call.
const DefaultBufSize = 4096

// IntReader is the part of a go-audio decoder a Source reads from.
type IntReader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source turns integer PCM from an IntReader into float32 samples.
type Source struct {
	dec      IntReader
	format   goaudio.Format
	bitDepth int
	buf      goaudio.IntBuffer
	done     bool

	// Bias is subtracted from every raw sample before scaling. Unsigned
	// 8-bit WAV data needs 128.
	Bias int
}

// New returns a Source reading dec. bitDepth selects the integer scale.
func New(dec IntReader, format goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:      dec,
		format:   format,
		bitDepth: bitDepth,
	}
}

func (s *Source) SampleRate() int { return s.format.SampleRate }
func (s *Source) Channels() int   { return s.format.NumChannels }
func (s *Source) BitDepth() int   { return s.bitDepth }
func (s *Source) Close() error    { return nil }

func (s *Source) BufSize() int {
	if c := cap(s.buf.Data); c > 0 {
		return c
	}
	return DefaultBufSize
}

func (s *Source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}
	if ch := s.format.NumChannels; ch > 0 && len(dst)%ch != 0 {
		return 0, audio.ErrInvalidDstSize
	}

	if cap(s.buf.Data) < len(dst) {
		s.buf.Data = make([]int, len(dst))
	}
	s.buf.Data = s.buf.Data[:len(dst)]
	s.buf.Format = &s.format

	n, err := s.dec.PCMBuffer(&s.buf)
	n = min(n, len(dst))
	for i := range n {
		dst[i] = utils.IntToFloat32(s.buf.Data[i]-s.Bias, s.bitDepth)
	}

	switch {
	case err == nil && n < len(dst):
		// The go-audio readers stop short at the end of the data chunk.
		s.done = true
		return n, io.EOF
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return n, io.EOF
	case err != nil:
		return n, fmt.Errorf("pcm read: %w", err)
	}

	return n, nil
}

// Seekable returns r as an io.ReadSeeker, buffering it in memory when it
// cannot seek.
func Seekable(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}
