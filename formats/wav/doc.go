// SPDX-License-Identifier: EPL-2.0

// Package wav reads and writes RIFF/WAVE files through go-audio/wav.
//
// The Decoder accepts integer PCM at 8, 16, 24 and 32 bits with any channel
// count and yields float32 samples in [-1,1]. Input that cannot seek is
// buffered in memory first.
//
// The Encoder writes interleaved 16-bit PCM and patches the RIFF sizes on
// Close, so it needs an io.WriteSeeker such as *os.File:
//
//	f, _ := os.Create("mix.wav")
//	defer f.Close()
//	if err := wav.WriteWAV16(f, 48000, 2, pcm); err != nil {
//		return err
//	}
package wav
