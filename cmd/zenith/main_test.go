// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ik5/zenith/formats/wav"
	"github.com/ik5/zenith/internal/config"
)

func writeTone(t *testing.T, path string, rate, channels, frames int, value int16) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	pcm := make([]int16, frames*channels)
	for i := range pcm {
		pcm[i] = value
	}
	if err := wav.WriteWAV16(f, rate, channels, pcm); err != nil {
		t.Fatalf("WriteWAV16() error = %v", err)
	}
}

func readWAV(t *testing.T, path string) ([]float32, int, int) {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := wav.Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	var all []float32
	buf := make([]float32, 512)
	for {
		n, err := src.ReadSamples(buf)
		all = append(all, buf[:n]...)
		if err == io.EOF {
			return all, src.SampleRate(), src.Channels()
		}
		if err != nil {
			t.Fatalf("ReadSamples() error = %v", err)
		}
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.wav")
	pathB := filepath.Join(dir, "b.WAV")
	out := filepath.Join(dir, "mix.wav")

	writeTone(t, pathA, 8000, 2, 8000, 8192)
	writeTone(t, pathB, 16000, 1, 16000, -8192)

	cfg := config.Config{
		BlockSize:         128,
		Volume:            1,
		CrossfadeStart:    250 * time.Millisecond,
		CrossfadeDuration: 250 * time.Millisecond,
	}
	if err := run(context.Background(), cfg, pathA, pathB, out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	got, rate, ch := readWAV(t, out)
	if rate != 8000 || ch != 2 {
		t.Fatalf("output = %d Hz %d ch, want 8000 Hz 2 ch", rate, ch)
	}
	if frames := len(got) / 2; frames < 7990 || frames > 8010 {
		t.Fatalf("output holds %d frames, want ≈8000", frames)
	}

	if got[0] < 0.24 || got[0] > 0.26 {
		t.Errorf("first sample = %v, want track A at 0.25", got[0])
	}
	// Well past the fade only track B remains.
	if late := got[2*7000]; late > -0.24 || late < -0.26 {
		t.Errorf("sample at 875 ms = %v, want track B at -0.25", late)
	}
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.wav")
	writeTone(t, good, 8000, 1, 100, 0)

	garbage := filepath.Join(dir, "bad.wav")
	if err := os.WriteFile(garbage, []byte("definitely not a wav file"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.Config{BlockSize: 64, Volume: 1}
	out := filepath.Join(dir, "out.wav")

	tests := []struct {
		name    string
		a, b    string
		wantErr string
	}{
		{"unknown extension", filepath.Join(dir, "a.flac"), good, "unsupported format"},
		{"missing file", filepath.Join(dir, "missing.wav"), good, "missing.wav"},
		{"undecodable", good, garbage, "decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), cfg, tt.a, tt.b, out)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("run() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}
