// SPDX-License-Identifier: EPL-2.0

// Package mixer implements the real-time two-bus mixing engine.
//
// The Engine blends two input buses (A and B) into one output bus, one render
// block at a time. It is meant to be called from a real-time audio callback:
// the render call never blocks, never allocates and never fails.
//
// # Render Stages
//
// Every call to Engine.Process runs the same four stages:
//
//  1. Parameter snapshot: host automation arrays are resolved into a Snapshot,
//     with defaults substituted for missing arrays.
//  2. Fast-path classification: steady-state playback of a single bus at full
//     volume is produced by a plain copy.
//  3. Gain computation: equal-power crossfade gains (cached across blocks) and,
//     when orbit is enabled, equal-power spatialization gains.
//  4. Mixing loop: per-sample blend, orbit, volume and a finite guard.
//
// # Usage
//
//	var eng mixer.Engine
//
//	a := &mixer.Bus{Left: trackAL, Right: trackAR}
//	b := &mixer.Bus{Left: trackBL} // mono, duplicated to right
//	out := &mixer.Bus{Left: make([]float32, 128), Right: make([]float32, 128)}
//
//	eng.Process(a, b, out, mixer.Params{
//	    Volume:    []float32{0.8},
//	    Crossfade: []float32{0.5},
//	})
//
// # Automation
//
// Each parameter is supplied either as a single value for the block (k-rate)
// or as one value per sample (a-rate). Only volume honors a-rate automation;
// crossfade and orbitEnabled are always read once per block.
//
// # Concurrency
//
// An Engine must only be used from one goroutine at a time. Its state forms a
// sequential chain across blocks, so blocks must be rendered in order.
package mixer
