// SPDX-License-Identifier: EPL-2.0

// Package zenith renders a DJ-style crossfade between two decoded tracks.
//
// The heavy lifting lives in subpackages:
//   - mixer: the block mixing engine (equal-power crossfade, volume, orbit pan)
//   - audio: streaming sources, resampling and block feeding
//   - formats: WAV, MP3, Ogg Vorbis and AIFF codecs
//   - meter: peak, RMS, correlation and loudness of rendered output
//
// This package ties them together for offline use. RenderCrossfade resamples
// both tracks to one rate, cuts them into blocks, drives a mixer.Engine with a
// crossfade that follows a Transition, and returns interleaved 16-bit stereo:
//
//	reg := formats.Registry()
//	dec, _ := reg.ForPath("a.mp3")
//	a, _ := dec.Decode(fileA)
//	...
//	cfg := zenith.ApplyRenderOptions(
//		zenith.WithProcessorOptions(core.WithSampleRate(44100)),
//		zenith.WithOrbit(0),
//	)
//	tr := zenith.Transition{Start: 20 * time.Second, Duration: 8 * time.Second}
//	pcm, rate, err := zenith.RenderCrossfade(ctx, a, b, tr, cfg)
//
// Deciding when a transition happens is up to the caller.
package zenith
