// SPDX-License-Identifier: EPL-2.0

package formats

import (
	"github.com/ik5/zenith/audio"
	"github.com/ik5/zenith/formats/aiff"
	"github.com/ik5/zenith/formats/mp3"
	"github.com/ik5/zenith/formats/vorbis"
	"github.com/ik5/zenith/formats/wav"
)

// Registry returns a registry keyed by file extension with every bundled
// decoder: wav, mp3, ogg, oga, aif and aiff.
func Registry() *audio.Registry {
	r := audio.NewRegistry()
	r.Register("wav", wav.Decoder{})
	r.Register("mp3", mp3.Decoder{})
	r.Register("ogg", vorbis.Decoder{})
	r.Register("oga", vorbis.Decoder{})
	r.Register("aif", aiff.Decoder{})
	r.Register("aiff", aiff.Decoder{})

	return r
}
