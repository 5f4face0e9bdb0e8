package random

// Sampler draws variates from a distribution. Every call to Sample
// advances the uniform source it is bound to.
type Sampler interface {
	Sample() float64
}

// SamplerFunc adapts a function to the Sampler interface.
type SamplerFunc func() float64

func (f SamplerFunc) Sample() float64 {
	return f()
}

// Fill overwrites every element of dst with a fresh variate from s.
func Fill(s Sampler, dst []float64) {
	for i := range dst {
		dst[i] = s.Sample()
	}
}
