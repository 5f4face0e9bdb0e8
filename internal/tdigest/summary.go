package tdigest

import (
	"fmt"
	"math"
	"sort"

	"github.com/caio/go-random/internal/fenwick"
)

// summary keeps centroids sorted by mean. bitree caches prefix sums
// of the counts.
type summary struct {
	means  []float64
	counts []uint32
	bitree *fenwick.List
}

func newSummary(initialCapacity int) *summary {
	s := &summary{
		means:  make([]float64, 0, initialCapacity),
		counts: make([]uint32, 0, initialCapacity),
	}
	s.rebuildFenwickTree()
	return s
}

func (s *summary) Len() int {
	return len(s.means)
}

func (s *summary) Add(mean float64, count uint32) error {
	if math.IsNaN(mean) {
		return fmt.Errorf("Mean must not be NaN")
	}

	if count == 0 {
		return fmt.Errorf("Count must be >0")
	}

	idx := s.findInsertionIndex(mean)

	s.means = append(s.means, math.NaN())
	s.counts = append(s.counts, 0)

	copy(s.means[idx+1:], s.means[idx:])
	copy(s.counts[idx+1:], s.counts[idx:])

	s.means[idx] = mean
	s.counts[idx] = count

	if idx == len(s.means)-1 {
		s.bitree.Append(uint64(count))
	} else {
		s.rebuildFenwickTree()
	}

	return nil
}

func (s *summary) rebuildFenwickTree() {
	x := make([]uint64, s.Len())
	for i, c := range s.counts {
		x[i] = uint64(c)
	}
	s.bitree = fenwick.New(x...)
}

// Floor is the index of the last centroid with a mean below x, or -1.
func (s *summary) Floor(x float64) int {
	return sort.Search(len(s.means), func(i int) bool {
		return s.means[i] >= x
	}) - 1
}

// Always insert to the right
func (s *summary) findInsertionIndex(x float64) int {
	return sort.Search(len(s.means), func(i int) bool {
		return s.means[i] > x
	})
}

// HeadSum is the total count of the centroids before index.
func (s *summary) HeadSum(index int) float64 {
	return float64(s.bitree.Sum(index))
}

func (s *summary) Mean(uncheckedIndex int) float64 {
	return s.means[uncheckedIndex]
}

func (s *summary) Count(uncheckedIndex int) uint32 {
	return s.counts[uncheckedIndex]
}

// FloorSum returns the index of the last centroid whose preceding
// counts add up to at most sum, or -1, together with those counts.
func (s *summary) FloorSum(sum float64) (index int, cumSum float64) {
	index = -1
	for i := 0; i < s.Len(); i++ {
		if cumSum <= sum {
			index = i
		} else {
			break
		}
		cumSum += float64(s.counts[i])
	}
	if index != -1 {
		cumSum -= float64(s.counts[index])
	}
	return index, cumSum
}

func (s *summary) setAt(index int, mean float64, count uint32) {
	s.means[index] = mean
	s.counts[index] = count
	if s.adjustRight(index) || s.adjustLeft(index) {
		s.rebuildFenwickTree()
		return
	}
	s.bitree.Set(index, uint64(count))
}

func (s *summary) adjustRight(index int) (moved bool) {
	for i := index + 1; i < len(s.means) && s.means[i-1] > s.means[i]; i++ {
		s.means[i-1], s.means[i] = s.means[i], s.means[i-1]
		s.counts[i-1], s.counts[i] = s.counts[i], s.counts[i-1]
		moved = true
	}
	return moved
}

func (s *summary) adjustLeft(index int) (moved bool) {
	for i := index - 1; i >= 0 && s.means[i] > s.means[i+1]; i-- {
		s.means[i], s.means[i+1] = s.means[i+1], s.means[i]
		s.counts[i], s.counts[i+1] = s.counts[i+1], s.counts[i]
		moved = true
	}
	return moved
}

func (s *summary) ForEach(f func(float64, uint32) bool) {
	for i := 0; i < len(s.means); i++ {
		if !f(s.means[i], s.counts[i]) {
			break
		}
	}
}
