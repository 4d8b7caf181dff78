// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams with
// github.com/jfreymuth/oggvorbis.
//
// The decoder produces float32 directly, so samples pass through without
// integer conversion. Channel count and rate come from the identification
// header.
package vorbis
