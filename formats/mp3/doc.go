// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG-1/2 Layer III audio through
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always produces 16-bit little-endian stereo, so every Source from
// this package reports two channels at the stream's own sample rate. Mono
// files come out with both channels equal.
//
//	f, _ := os.Open("track.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//		return err
//	}
//	matched := audio.NewResampler(src, 48000)
//
// Reads always deliver whole frames. A trailing partial frame at the end of
// the stream is dropped.
package mp3
