// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ik5/zenith/audio"
)

func TestWriteWAV16_RoundTrip(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 0, 16384, -16384, 32767, -32768, -1, 1}
	path := filepath.Join(t.TempDir(), "mix.wav")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := WriteWAV16(f, 48000, 2, samples); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	in, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer in.Close()

	got, rate, ch := decodeAll(t, in)
	if rate != 48000 || ch != 2 {
		t.Errorf("format = %d Hz %d ch, want 48000 Hz 2 ch", rate, ch)
	}
	if len(got) != len(samples) {
		t.Fatalf("decoded %d samples, want %d", len(got), len(samples))
	}
	for i, s := range samples {
		if want := float32(s) / 32768; got[i] != want {
			t.Errorf("sample %d = %v, want %v", i, got[i], want)
		}
	}
}

func TestEncoder_MultipleWrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "chunks.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	enc, err := NewEncoder(f, 8000, 1)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	for range 3 {
		if err := enc.Write([]int16{1000, 2000, 3000}); err != nil {
			t.Fatalf("Write() error = %v", err)
		}
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := f.Seek(0, 0); err != nil {
		t.Fatal(err)
	}
	got, _, _ := decodeAll(t, f)
	if len(got) != 9 {
		t.Fatalf("decoded %d samples, want 9", len(got))
	}
	if got[8] != 3000.0/32768 {
		t.Errorf("last sample = %v, want %v", got[8], 3000.0/32768)
	}
}

func TestEncoder_Validation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := NewEncoder(f, 48000, 0); !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("NewEncoder(0 channels) error = %v, want ErrInvalidChannels", err)
	}
	if _, err := NewEncoder(f, 0, 2); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("NewEncoder(rate 0) error = %v, want ErrInvalidSampleRate", err)
	}

	enc, err := NewEncoder(f, 48000, 2)
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	if err := enc.Write([]int16{1, 2, 3}); !errors.Is(err, audio.ErrInvalidDstSize) {
		t.Errorf("Write(partial frame) error = %v, want ErrInvalidDstSize", err)
	}
}
