// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/zenith/audio"
	"github.com/jfreymuth/oggvorbis"
)

// maxEmptyReads bounds consecutive reads that return neither data nor error.
const maxEmptyReads = 16

// floatReader is the part of oggvorbis.Reader a source reads from. Read
// returns a count of interleaved values, always whole frames.
type floatReader interface {
	SampleRate() int
	Channels() int
	Read(p []float32) (int, error)
}

type source struct {
	dec      floatReader
	channels int
	lastRead int
	done     bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) BufSize() int {
	if s.lastRead > 0 {
		return s.lastRead
	}
	return 4096
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.done {
		return 0, io.EOF
	}
	if len(dst)%s.channels != 0 {
		return 0, audio.ErrInvalidDstSize
	}
	if len(dst) == 0 {
		return 0, nil
	}
	s.lastRead = len(dst)

	for range maxEmptyReads {
		n, err := s.dec.Read(dst)
		switch {
		case err == io.EOF:
			s.done = true
			return n, io.EOF
		case err != nil:
			return n, fmt.Errorf("vorbis decode: %w", err)
		case n > 0:
			return n, nil
		}
	}

	return 0, io.ErrNoProgress
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNotVorbisFile, err)
	}
	if dec.Channels() < 1 {
		return nil, audio.ErrNoChannels
	}

	return &source{dec: dec, channels: dec.Channels()}, nil
}
