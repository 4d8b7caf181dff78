// SPDX-License-Identifier: EPL-2.0

package mixer

import "math"

// Parameter names as declared to the host scheduler.
const (
	ParamVolume       = "volume"
	ParamCrossfade    = "crossfade"
	ParamOrbitEnabled = "orbitEnabled"
)

// Defaults substituted when the host supplies no automation.
const (
	DefaultVolume       float32 = 1.0
	DefaultCrossfade    float32 = 0.0
	DefaultOrbitEnabled float32 = 0.0

	// orbitThreshold turns the float orbitEnabled parameter into a boolean.
	orbitThreshold float32 = 0.5
)

// ParamDescriptor describes one automatable parameter to the host.
type ParamDescriptor struct {
	Name    string
	Default float32
	Min     float32
	Max     float32
	// Bounded is false when the host should not clamp the value.
	Bounded bool
}

var descriptors = [...]ParamDescriptor{
	{Name: ParamVolume, Default: DefaultVolume, Min: 0, Max: 1, Bounded: true},
	{Name: ParamCrossfade, Default: DefaultCrossfade, Min: 0, Max: 1, Bounded: true},
	{Name: ParamOrbitEnabled, Default: DefaultOrbitEnabled, Min: -math.MaxFloat32, Max: math.MaxFloat32},
}

// Descriptors returns the parameter table, queried once when the host builds
// its graph. The returned slice is a copy.
func Descriptors() []ParamDescriptor {
	out := make([]ParamDescriptor, len(descriptors))
	copy(out, descriptors[:])

	return out
}

// Descriptor looks up a parameter by name.
func Descriptor(name string) (ParamDescriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}

	return ParamDescriptor{}, false
}

// Params holds the raw host automation arrays for one block. Each array is
// either empty (use the default), one value (k-rate) or one value per sample
// (a-rate). The engine never retains or mutates them.
type Params struct {
	Volume       []float32
	Crossfade    []float32
	OrbitEnabled []float32
}

// Snapshot is the resolved parameter set for one block.
type Snapshot struct {
	Volume    Automation
	Crossfade float32
	Orbit     bool
}

// TakeSnapshot resolves host automation into concrete block values.
// Values are trusted to be within the declared ranges; nothing is clamped.
func TakeSnapshot(p Params) Snapshot {
	s := Snapshot{
		Volume:    Scalar(DefaultVolume),
		Crossfade: DefaultCrossfade,
	}

	if len(p.Volume) > 0 {
		s.Volume = PerSample(p.Volume)
	}
	if len(p.Crossfade) > 0 {
		s.Crossfade = p.Crossfade[0]
	}
	if len(p.OrbitEnabled) > 0 {
		s.Orbit = p.OrbitEnabled[0] > orbitThreshold
	}

	return s
}
