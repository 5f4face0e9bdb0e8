// Package tdigest implements the t-digest sketch of Ted Dunning: an
// approximation of the distribution of a stream of values that keeps
// a bounded number of centroids and answers quantile queries.
package tdigest

import (
	"fmt"
	"math"

	random "github.com/caio/go-random"
)

// TDigest is a quantile approximation data structure.
type TDigest struct {
	summary     *summary
	compression float64
	count       uint64
	min, max    float64
	rng         random.UniformSource
}

// New creates a new digest.
//
// By default the digest is constructed with a compression of 100 and
// merges ties using a PCG source with a fixed seed, so digests fed
// the same values answer the same quantiles.
func New(options ...tdigestOption) (*TDigest, error) {
	t := &TDigest{
		compression: 100,
		min:         math.NaN(),
		max:         math.NaN(),
	}

	for _, option := range options {
		if err := option(t); err != nil {
			return nil, err
		}
	}

	if t.rng == nil {
		t.rng = random.NewPCGSource(0xDEADBEEF)
	}
	t.summary = newSummary(estimateCapacity(t.compression))
	return t, nil
}

func estimateCapacity(compression float64) int {
	return int(compression) * 10
}

// Count is the number of values added to the digest.
func (t *TDigest) Count() uint64 {
	return t.count
}

// Min and Max are the exact extremes of the added values. NaN when the
// digest is empty.
func (t *TDigest) Min() float64 {
	return t.min
}

func (t *TDigest) Max() float64 {
	return t.max
}

// Add registers a new sample in the digest.
func (t *TDigest) Add(value float64) error {
	return t.AddWeighted(value, 1)
}

// AddWeighted registers a new sample in the digest with the given
// weight.
func (t *TDigest) AddWeighted(value float64, count uint32) error {
	if count == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("Illegal datapoint <value: %.4f, count: %d>", value, count)
	}

	if t.count == 0 || value < t.min {
		t.min = value
	}
	if t.count == 0 || value > t.max {
		t.max = value
	}

	if t.summary.Len() == 0 {
		t.count = uint64(count)
		return t.summary.Add(value, count)
	}

	begin := t.summary.Floor(value)
	if begin == -1 {
		begin = 0
	}

	begin, end := t.findNeighbors(begin, value)

	closest := t.chooseMergeCandidate(begin, end, count)

	if closest == t.summary.Len() {
		if err := t.summary.Add(value, count); err != nil {
			return err
		}
	} else {
		c := float64(t.summary.Count(closest))
		newMean := t.summary.Mean(closest) + float64(count)*(value-t.summary.Mean(closest))/(c+float64(count))
		t.summary.setAt(closest, newMean, uint32(c)+count)
	}
	t.count += uint64(count)

	if float64(t.summary.Len()) > 20*t.compression {
		return t.Compress()
	}

	return nil
}

// findNeighbors returns the run [start, end) of centroids whose means
// are the closest to value.
func (t *TDigest) findNeighbors(start int, value float64) (int, int) {
	minDistance := math.MaxFloat64
	lastNeighbor := t.summary.Len()
	for neighbor := start; neighbor < t.summary.Len(); neighbor++ {
		z := math.Abs(t.summary.Mean(neighbor) - value)
		if z < minDistance {
			start = neighbor
			minDistance = z
		} else if z > minDistance {
			lastNeighbor = neighbor
			break
		}
	}
	return start, lastNeighbor
}

// chooseMergeCandidate picks, uniformly at random, one of the
// neighbors that can absorb count more values without exceeding the
// size bound at its quantile. Len() means none can.
func (t *TDigest) chooseMergeCandidate(begin, end int, count uint32) int {
	closest := t.summary.Len()
	sum := t.summary.HeadSum(begin)
	var n float64

	for neighbor := begin; neighbor != end; neighbor++ {
		c := float64(t.summary.Count(neighbor))
		var q float64
		if t.count == 1 {
			q = 0.5
		} else {
			q = (sum + (c-1)/2) / float64(t.count-1)
		}
		k := 4 * float64(t.count) * q * (1 - q) / t.compression

		if c+float64(count) <= k {
			n++
			if t.rng.Float64() < 1/n {
				closest = neighbor
			}
		}
		sum += c
	}
	return closest
}

// Quantile returns the (approximate) value at quantile q, clamped to
// the observed extremes. NaN for an empty digest or q outside [0, 1].
func (t *TDigest) Quantile(q float64) float64 {
	if q < 0 || q > 1 || t.summary.Len() == 0 {
		return math.NaN()
	}
	if t.summary.Len() == 1 {
		return t.summary.Mean(0)
	}

	return math.Min(t.max, math.Max(t.min, t.interpolate(q*float64(t.count-1))))
}

func (t *TDigest) interpolate(index float64) float64 {
	previousMean := math.NaN()
	previousIndex := float64(0)
	next, total := t.summary.FloorSum(index)

	if next > 0 {
		previousMean = t.summary.Mean(next - 1)
		previousIndex = total - float64(t.summary.Count(next-1)+1)/2
	}

	for {
		nextIndex := total + float64(t.summary.Count(next)-1)/2
		if nextIndex >= index {
			if math.IsNaN(previousMean) {
				// before the first centroid
				if nextIndex == previousIndex {
					return t.summary.Mean(next)
				}
				// assume linear growth
				nextIndex2 := total + float64(t.summary.Count(next)) + float64(t.summary.Count(next+1)-1)/2
				previousMean = (nextIndex2*t.summary.Mean(next) - nextIndex*t.summary.Mean(next+1)) / (nextIndex2 - nextIndex)
			}
			return interpolate(index, previousIndex, nextIndex, previousMean, t.summary.Mean(next))
		} else if next+1 == t.summary.Len() {
			// after the last centroid
			nextIndex2 := float64(t.count - 1)
			nextMean2 := (t.summary.Mean(next)*(nextIndex2-previousIndex) - previousMean*(nextIndex2-nextIndex)) / (nextIndex - previousIndex)
			return interpolate(index, nextIndex, nextIndex2, t.summary.Mean(next), nextMean2)
		}
		total += float64(t.summary.Count(next))
		previousMean = t.summary.Mean(next)
		previousIndex = nextIndex
		next++
	}
}

func interpolate(index, previousIndex, nextIndex, previousMean, nextMean float64) float64 {
	delta := nextIndex - previousIndex
	if delta == 0 {
		return nextMean
	}
	previousWeight := (nextIndex - index) / delta
	nextWeight := (index - previousIndex) / delta
	return previousMean*previousWeight + nextMean*nextWeight
}

// Compress rebuilds the digest by re-adding its centroids in random
// order. It is triggered automatically when the centroid count grows
// past 20 times the compression.
func (t *TDigest) Compress() error {
	if t.summary.Len() <= 1 {
		return nil
	}

	oldTree := t.summary
	t.summary = newSummary(estimateCapacity(t.compression))
	t.count = 0
	min, max := t.min, t.max

	nodes := make([]centroid, 0, oldTree.Len())
	oldTree.ForEach(func(mean float64, count uint32) bool {
		nodes = append(nodes, centroid{mean, count})
		return true
	})
	t.shuffle(nodes)

	for _, item := range nodes {
		if err := t.AddWeighted(item.mean, item.count); err != nil {
			return err
		}
	}
	t.min, t.max = min, max
	return nil
}

// Merge folds the centroids of other into t. other is not modified.
func (t *TDigest) Merge(other *TDigest) error {
	if other.summary.Len() == 0 {
		return nil
	}

	nodes := make([]centroid, 0, other.summary.Len())
	other.summary.ForEach(func(mean float64, count uint32) bool {
		nodes = append(nodes, centroid{mean, count})
		return true
	})
	t.shuffle(nodes)

	min, max := other.min, other.max
	for _, item := range nodes {
		if err := t.AddWeighted(item.mean, item.count); err != nil {
			return err
		}
	}
	t.min = math.Min(t.min, min)
	t.max = math.Max(t.max, max)
	return nil
}

type centroid struct {
	mean  float64
	count uint32
}

func (t *TDigest) shuffle(data []centroid) {
	for i := len(data) - 1; i > 0; i-- {
		other := int(t.rng.Float64() * float64(i+1))
		data[i], data[other] = data[other], data[i]
	}
}

func (t *TDigest) String() string {
	return fmt.Sprintf("TD<compression=%.2f, count=%d, centroids=%d>", t.compression, t.count, t.summary.Len())
}
