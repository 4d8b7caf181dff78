// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize   = errors.New("dst size must be multiple of channels")
	ErrInvalidBlockSize = errors.New("block size must be positive")
	ErrNoChannels       = errors.New("source has no channels")
	ErrInvalidRate      = errors.New("sample rates must be at least 1 Hz")
)
