// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	// ErrNotWavFile indicates the input has no usable RIFF/WAVE header.
	ErrNotWavFile = errors.New("not a WAV file")

	// ErrUnsupportedEncoding is returned for anything but integer PCM.
	ErrUnsupportedEncoding = errors.New("only integer PCM WAV is supported")

	// ErrUnsupportedBitDepth is returned for depths other than 8, 16, 24, 32.
	ErrUnsupportedBitDepth = errors.New("unsupported WAV bit depth")

	// ErrInvalidChannels is returned by the encoder for a channel count below 1.
	ErrInvalidChannels = errors.New("channel count must be positive")

	// ErrInvalidSampleRate is returned for a header or encoder rate below 1 Hz.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
)
