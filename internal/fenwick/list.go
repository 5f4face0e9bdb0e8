// Package fenwick provides a binary indexed tree of counts: a list
// whose prefix sums and point updates both take O(log n).
package fenwick

// List is a list of counts with fast prefix sums. The zero value is an
// empty list.
type List struct {
	// tree[i] holds the sum of the counts in (i&(i+1)) .. i, so the
	// prefix sum of the first k counts walks the 1 bits of k.
	tree []uint64
}

// New creates a list holding counts.
func New(counts ...uint64) *List {
	t := make([]uint64, len(counts))
	copy(t, counts)
	for i := range t {
		if j := i | (i + 1); j < len(t) {
			t[j] += t[i]
		}
	}
	return &List{tree: t}
}

func (l *List) Len() int {
	return len(l.tree)
}

// Get returns the count at index i.
func (l *List) Get(i int) uint64 {
	sum := l.tree[i]
	j := i + 1
	j -= j & -j
	for i > j {
		sum -= l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// Set replaces the count at index i with n.
func (l *List) Set(i int, n uint64) {
	// unsigned wraparound makes the delta work in both directions
	delta := n - l.Get(i)
	for ; i < len(l.tree); i |= i + 1 {
		l.tree[i] += delta
	}
}

// Sum returns the total of the counts before index i.
func (l *List) Sum(i int) uint64 {
	var sum uint64
	for i > 0 {
		sum += l.tree[i-1]
		i -= i & -i
	}
	return sum
}

// Append adds n at the end of the list.
func (l *List) Append(n uint64) {
	i := len(l.tree)
	l.tree = append(l.tree, 0)
	l.tree[i] = n - l.Get(i)
}
