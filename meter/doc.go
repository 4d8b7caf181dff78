// SPDX-License-Identifier: EPL-2.0

// Package meter measures rendered stereo output: sample peak, RMS, crest
// factor, inter-channel correlation and EBU R128 integrated loudness.
//
// Peak and RMS work on a single buffer. Meter accumulates block by block and
// fits the Tap hook of zenith.RenderConfig:
//
//	m := meter.New(48000)
//	cfg := zenith.ApplyRenderOptions(zenith.WithTap(m.Write))
//	...
//	lv := m.Levels()
//	log.Printf("peak %.1f dBFS, %.1f LUFS", lv.PeakDB, lv.LoudnessLUFS)
package meter
