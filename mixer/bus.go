// SPDX-License-Identifier: EPL-2.0

package mixer

// Bus is a planar block of audio: a left channel and an optional right
// channel. A bus with only a left channel is mono. Empty slices count as
// absent channels.
type Bus struct {
	Left  []float32
	Right []float32
}

// NewBus allocates a bus of blockSize frames with the given channel count
// (1 or 2). Counts above two are treated as stereo.
func NewBus(blockSize, channels int) *Bus {
	if blockSize < 0 {
		blockSize = 0
	}

	b := &Bus{Left: make([]float32, blockSize)}
	if channels > 1 {
		b.Right = make([]float32, blockSize)
	}

	return b
}

// Channels returns 0 for an absent bus, 1 for mono and 2 for stereo.
func (b *Bus) Channels() int {
	switch {
	case b == nil || len(b.Left) == 0:
		return 0
	case len(b.Right) == 0:
		return 1
	default:
		return 2
	}
}

// Clear writes silence to every present channel.
func (b *Bus) Clear() {
	if b == nil {
		return
	}
	clear(b.Left)
	clear(b.Right)
}

// channels resolves the bus into the left and right slices read by the
// engine. An absent bus yields nil, nil; a mono bus yields its left channel
// twice.
func (b *Bus) channels() (left, right []float32) {
	if b == nil || len(b.Left) == 0 {
		return nil, nil
	}
	if len(b.Right) == 0 {
		return b.Left, b.Left
	}

	return b.Left, b.Right
}
