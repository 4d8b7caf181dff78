// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/zenith/audio"
)

// mockPCM stands in for gomp3.Decoder: it serves little-endian int16 bytes
// in chunks of at most chunk bytes.
type mockPCM struct {
	rate  int
	data  []byte
	chunk int
	err   error
}

func newMockPCM(rate, chunk int, samples ...int16) *mockPCM {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, samples)
	return &mockPCM{rate: rate, data: buf.Bytes(), chunk: chunk}
}

func (m *mockPCM) SampleRate() int { return m.rate }

func (m *mockPCM) Read(p []byte) (int, error) {
	if len(m.data) == 0 {
		if m.err != nil {
			return 0, m.err
		}
		return 0, io.EOF
	}
	if m.chunk > 0 && len(p) > m.chunk {
		p = p[:m.chunk]
	}
	n := copy(p, m.data)
	m.data = m.data[n:]
	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	for name, data := range map[string][]byte{
		"empty": nil,
		"text":  []byte("this is certainly not an mp3 frame"),
	} {
		if _, err := (Decoder{}).Decode(bytes.NewReader(data)); !errors.Is(err, ErrNotMP3File) {
			t.Errorf("%s: Decode() error = %v, want ErrNotMP3File", name, err)
		}
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	s := newSource(newMockPCM(44100, 0))
	if s.SampleRate() != 44100 || s.Channels() != 2 {
		t.Errorf("metadata = %d Hz %d ch, want 44100 Hz 2 ch", s.SampleRate(), s.Channels())
	}
	if s.BufSize() != defaultBufSize {
		t.Errorf("BufSize() = %d, want %d", s.BufSize(), defaultBufSize)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chunk int
	}{
		{"whole reads", 0},
		{"odd byte chunks", 3},
		{"single bytes", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newSource(newMockPCM(48000, tt.chunk, 16384, -16384, 32767, -32768, 0, 8192))
			dst := make([]float32, 4)

			n, err := s.ReadSamples(dst)
			if n != 4 || err != nil {
				t.Fatalf("ReadSamples() = %d, %v; want 4, nil", n, err)
			}
			want := []float32{0.5, -0.5, 32767.0 / 32768, -1}
			for i := range want {
				if dst[i] != want[i] {
					t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
				}
			}

			n, err = s.ReadSamples(dst)
			if n != 2 || err != io.EOF {
				t.Fatalf("final ReadSamples() = %d, %v; want 2, io.EOF", n, err)
			}
			if dst[1] != 0.25 {
				t.Errorf("dst[1] = %v, want 0.25", dst[1])
			}

			if n, err = s.ReadSamples(dst); n != 0 || err != io.EOF {
				t.Errorf("ReadSamples() after EOF = %d, %v; want 0, io.EOF", n, err)
			}
		})
	}
}

func TestSource_DropsPartialFrame(t *testing.T) {
	t.Parallel()

	m := newMockPCM(44100, 0, 1000, 2000)
	m.data = append(m.data, 0x01, 0x02) // half a frame
	s := newSource(m)

	n, err := s.ReadSamples(make([]float32, 8))
	if n != 2 || err != io.EOF {
		t.Errorf("ReadSamples() = %d, %v; want 2, io.EOF", n, err)
	}
}

func TestSource_Errors(t *testing.T) {
	t.Parallel()

	s := newSource(newMockPCM(44100, 0, 1, 2))
	if _, err := s.ReadSamples(make([]float32, 3)); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("odd dst error = %v, want ErrInvalidDstSize", err)
	}
	if n, err := s.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("empty dst = %d, %v; want 0, nil", n, err)
	}

	boom := errors.New("corrupt frame")
	m := newMockPCM(44100, 0, 1, 2)
	m.err = boom
	s = newSource(m)
	n, err := s.ReadSamples(make([]float32, 8))
	if !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want wrapped %v", err, boom)
	}
	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want the 2 samples before the failure", n)
	}
}

func TestSource_BufferGrows(t *testing.T) {
	t.Parallel()

	s := newSource(newMockPCM(44100, 0, make([]int16, 3*defaultBufSize)...))
	dst := make([]float32, 2*defaultBufSize)
	if _, err := s.ReadSamples(dst); err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if s.BufSize() != len(dst) {
		t.Errorf("BufSize() = %d, want %d", s.BufSize(), len(dst))
	}
}

func BenchmarkSource_ReadSamples(b *testing.B) {
	samples := make([]int16, 1<<16)
	for i := range samples {
		samples[i] = int16(i)
	}
	dst := make([]float32, 1024)

	b.ReportAllocs()
	for b.Loop() {
		s := newSource(newMockPCM(44100, 0, samples...))
		for {
			if _, err := s.ReadSamples(dst); err != nil {
				break
			}
		}
	}
}
