// SPDX-License-Identifier: EPL-2.0

package aiff

import "errors"

var (
	// ErrNotAiffFile indicates the input has no usable FORM/AIFF header.
	ErrNotAiffFile = errors.New("not an AIFF file")

	// ErrUnsupportedBitDepth is returned for depths other than 8, 16, 24, 32.
	ErrUnsupportedBitDepth = errors.New("unsupported AIFF bit depth")

	// ErrInvalidSampleRate is returned when the header rate is below 1 Hz.
	ErrInvalidSampleRate = errors.New("AIFF sample rate must be positive")
)
