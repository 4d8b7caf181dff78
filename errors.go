// SPDX-License-Identifier: EPL-2.0

package zenith

import "errors"

var (
	// ErrNilSource is returned when either track is missing.
	ErrNilSource = errors.New("source is nil")

	// ErrInvalidSampleRate is returned when the render rate rounds below 1 Hz
	// or a track reports a rate below 1 Hz.
	ErrInvalidSampleRate = errors.New("sample rate must be at least 1 Hz")
)
