package random

import (
	"math"
	"sort"
	"testing"
)

const testSeed = "ZDJjM2IyNmFlNmVjNWQwMGZkMmY1Y2Nk"

// countingSource replays values in a loop and counts the draws.
type countingSource struct {
	values []float64
	draws  int
}

func (c *countingSource) Float64() float64 {
	v := c.values[c.draws%len(c.values)]
	c.draws++
	return v
}

func mustNew(t testing.TB, options ...Option) *Random {
	t.Helper()

	r, err := New(options...)
	if err != nil {
		t.Fatalf("New() should not fail here. Got %s", err)
	}
	return r
}

func draw(s Sampler, n int) []float64 {
	xs := make([]float64, n)
	Fill(s, xs)
	return xs
}

// ksDistance is the Kolmogorov-Smirnov statistic of xs against cdf.
func ksDistance(xs []float64, cdf func(float64) float64) float64 {
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	var d float64
	for i, x := range sorted {
		f := cdf(x)
		d = math.Max(d, math.Max(f-float64(i)/n, float64(i+1)/n-f))
	}
	return d
}
