// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"slices"
	"testing"

	"github.com/ik5/zenith/formats/aiff"
	"github.com/ik5/zenith/formats/mp3"
	"github.com/ik5/zenith/formats/vorbis"
	"github.com/ik5/zenith/formats/wav"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	r := Registry()

	want := []string{"aif", "aiff", "mp3", "oga", "ogg", "wav"}
	if got := r.Formats(); !slices.Equal(got, want) {
		t.Errorf("Formats() = %v, want %v", got, want)
	}

	tests := []struct {
		path string
		want any
	}{
		{"a.wav", wav.Decoder{}},
		{"dir/B.MP3", mp3.Decoder{}},
		{"c.ogg", vorbis.Decoder{}},
		{"d.oga", vorbis.Decoder{}},
		{"e.aif", aiff.Decoder{}},
		{"f.AIFF", aiff.Decoder{}},
	}
	for _, tt := range tests {
		d, ok := r.ForPath(tt.path)
		if !ok {
			t.Errorf("ForPath(%q) not found", tt.path)
			continue
		}
		if d != tt.want {
			t.Errorf("ForPath(%q) = %T, want %T", tt.path, d, tt.want)
		}
	}

	if _, ok := r.ForPath("g.flac"); ok {
		t.Error("ForPath(flac) found a decoder")
	}
}
