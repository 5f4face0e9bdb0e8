// Package summary computes descriptive statistics over a stream of
// variates without retaining them.
package summary

import (
	"fmt"
	"math"

	"github.com/caio/go-random/internal/tdigest"
)

// Quantiles reported by a Summary, in order.
var Quantiles = []float64{0.5, 0.9, 0.99}

type Summary struct {
	Count     uint64
	Min       float64
	Max       float64
	Mean      float64
	StdDev    float64
	Quantiles []float64
}

// Accumulator folds variates into a Summary. Mean and variance are
// exact (Welford's update); quantiles come from a t-digest.
type Accumulator struct {
	digest *tdigest.TDigest
	mean   float64
	m2     float64
}

func New() (*Accumulator, error) {
	digest, err := tdigest.New()
	if err != nil {
		return nil, err
	}
	return &Accumulator{digest: digest}, nil
}

// Add registers x. NaN and infinite values are rejected.
func (a *Accumulator) Add(x float64) error {
	if err := a.digest.Add(x); err != nil {
		return err
	}
	delta := x - a.mean
	a.mean += delta / float64(a.digest.Count())
	a.m2 += delta * (x - a.mean)
	return nil
}

func (a *Accumulator) Summary() Summary {
	n := a.digest.Count()
	s := Summary{
		Count:     n,
		Min:       a.digest.Min(),
		Max:       a.digest.Max(),
		Mean:      math.NaN(),
		StdDev:    math.NaN(),
		Quantiles: make([]float64, len(Quantiles)),
	}

	switch {
	case n == 1:
		s.Mean, s.StdDev = a.mean, 0
	case n > 1:
		s.Mean, s.StdDev = a.mean, math.Sqrt(a.m2/float64(n-1))
	}

	for i, p := range Quantiles {
		s.Quantiles[i] = a.digest.Quantile(p)
	}

	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("Summary<count=%d, mean=%.6f, stddev=%.6f>", s.Count, s.Mean, s.StdDev)
}
