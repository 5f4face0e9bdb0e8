package random

import (
	"fmt"

	"github.com/pkg/errors"
)

// DefaultIrwinHallN is the customary number of summed variates, for
// which Irwin-Hall reduces to the standard uniform distribution.
const DefaultIrwinHallN = 1

type irwinHall struct {
	src *uniform
	n   int
}

// IrwinHall returns a sampler for the distribution of the sum of n
// independent standard uniform variates. Its support is [0, n].
//
// n must be at least 1.
func (r *Random) IrwinHall(n int) (Sampler, error) {
	if n < 1 {
		return nil, errors.Wrapf(ErrInvalidParameter, "irwin-hall: n must be a positive integer, got %d", n)
	}
	return &irwinHall{src: r.src, n: n}, nil
}

// Sample consumes exactly n draws.
func (d *irwinHall) Sample() float64 {
	var sum float64
	for i := 0; i < d.n; i++ {
		sum += d.src.next()
	}
	return sum
}

func (d *irwinHall) String() string {
	return fmt.Sprintf("IrwinHall<n=%d>", d.n)
}
