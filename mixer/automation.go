// SPDX-License-Identifier: EPL-2.0

package mixer

// Automation is a parameter value for one block: either a single scalar
// (k-rate) or one value per sample (a-rate).
//
// The zero value is a scalar 0.
type Automation struct {
	scalar    float32
	perSample []float32
}

// Scalar returns a block-constant automation.
func Scalar(v float32) Automation {
	return Automation{scalar: v}
}

// PerSample returns a per-sample automation over values.
// The slice is not copied; it must stay unchanged while the block renders.
// Slices shorter than two values collapse into a scalar.
func PerSample(values []float32) Automation {
	switch len(values) {
	case 0:
		return Automation{}
	case 1:
		return Automation{scalar: values[0]}
	}

	return Automation{scalar: values[0], perSample: values}
}

// IsPerSample reports whether the automation carries one value per sample.
func (a Automation) IsPerSample() bool { return a.perSample != nil }

// Block returns the block-level value, the first value for a-rate automation.
func (a Automation) Block() float32 { return a.scalar }

// ValueAt returns the value for sample i.
// Reads past the end of an a-rate array return its last value.
func (a Automation) ValueAt(i int) float32 {
	if a.perSample == nil {
		return a.scalar
	}
	if i >= len(a.perSample) {
		return a.perSample[len(a.perSample)-1]
	}
	if i < 0 {
		return a.scalar
	}

	return a.perSample[i]
}

// Near reports whether every value of the automation lies in target±tol.
// NaN values are never near.
func (a Automation) Near(target, tol float32) bool {
	if a.perSample == nil {
		return within(a.scalar, target, tol)
	}
	for _, v := range a.perSample {
		if !within(v, target, tol) {
			return false
		}
	}

	return true
}

func within(v, target, tol float32) bool {
	d := v - target
	return d < tol && d > -tol
}
