// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ik5/zenith/audio"
)

const bitDepth16 = 16

// Encoder streams interleaved 16-bit PCM into a WAV file.
type Encoder struct {
	enc      *wav.Encoder
	buf      goaudio.IntBuffer
	channels int
}

func NewEncoder(w io.WriteSeeker, sampleRate, channels int) (*Encoder, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if sampleRate < 1 {
		return nil, ErrInvalidSampleRate
	}

	return &Encoder{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth16, channels, formatPCM),
		channels: channels,
		buf: goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
			SourceBitDepth: bitDepth16,
		},
	}, nil
}

// Write appends whole frames of interleaved samples.
func (e *Encoder) Write(samples []int16) error {
	if len(samples)%e.channels != 0 {
		return audio.ErrInvalidDstSize
	}
	if len(samples) == 0 {
		return nil
	}

	if cap(e.buf.Data) < len(samples) {
		e.buf.Data = make([]int, len(samples))
	}
	e.buf.Data = e.buf.Data[:len(samples)]
	for i, v := range samples {
		e.buf.Data[i] = int(v)
	}

	if err := e.enc.Write(&e.buf); err != nil {
		return fmt.Errorf("writing wav frames: %w", err)
	}
	return nil
}

// Close finalizes the header. It does not close the underlying writer.
func (e *Encoder) Close() error {
	if err := e.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav header: %w", err)
	}
	return nil
}

// WriteWAV16 writes a complete 16-bit WAV file holding samples.
func WriteWAV16(w io.WriteSeeker, sampleRate, channels int, samples []int16) error {
	enc, err := NewEncoder(w, sampleRate, channels)
	if err != nil {
		return err
	}
	if err := enc.Write(samples); err != nil {
		return err
	}
	return enc.Close()
}
