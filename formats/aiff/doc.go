// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed AIFF through github.com/go-audio/aiff.
//
// Signed integer PCM at 8, 16, 24 and 32 bits is accepted with any channel
// count. Non-seekable input is buffered in memory because the go-audio
// parser walks chunks by offset.
package aiff
