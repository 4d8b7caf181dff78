// SPDX-License-Identifier: EPL-2.0

// Package audio provides the streaming side of the mixing pipeline.
//
// This package contains the building blocks that turn decoded tracks into
// the planar blocks the mixer consumes:
//   - Source interface for audio input
//   - Resampler for sample rate conversion
//   - BusReader for splitting interleaved audio into mixer buses
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of audio processing:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    ReadSamples(dst []float32) (int, error)
//	    BufSize() int
//	    Close() error
//	}
//
// All decoders and processors implement this interface, allowing them to be
// chained together.
//
// # Resampling
//
// Two tracks rarely share a sample rate. The Resampler converts one to the
// rate of the other using cubic interpolation:
//
//	matched := audio.NewResampler(trackB, trackA.SampleRate())
//
// # Feeding the Mixer
//
// BusReader reads one render block at a time into a reusable mixer.Bus:
//
//	reader, err := audio.NewBusReader(source, 128)
//	if err != nil {
//	    return err
//	}
//	for {
//	    n, err := reader.Next()
//	    // reader.Bus() holds n frames, the rest is silence
//	    if err == io.EOF {
//	        break
//	    }
//	}
//
// # Format Registry
//
// The registry maps format keys and file extensions to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, ok := registry.ForPath("track.WAV")
//
// # Sample Format
//
// Audio samples are float32 in the range [-1.0, 1.0], with 0.0 as silence.
//
// # Error Handling
//
// Streams report io.EOF when no more data is available. Other errors are
// wrapped with context and can be matched with errors.Is.
package audio
