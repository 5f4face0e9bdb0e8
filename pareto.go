package random

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// DefaultParetoAlpha is the customary shape of the standard Pareto
// distribution.
const DefaultParetoAlpha = 1.0

type pareto struct {
	src      *uniform
	alpha    float64
	exponent float64
}

// Pareto returns a sampler for the standard Pareto distribution with
// shape alpha, whose CDF is 1 - x^(-alpha) for x >= 1.
//
// alpha must be positive and finite: with an infinite alpha the
// exponent is zero and every variate is 1, a degenerate distribution.
func (r *Random) Pareto(alpha float64) (Sampler, error) {
	if !(alpha > 0) || math.IsInf(alpha, 1) {
		return nil, errors.Wrapf(ErrInvalidParameter, "pareto: alpha must be positive and finite, got %v", alpha)
	}
	return &pareto{src: r.src, alpha: alpha, exponent: -1 / alpha}, nil
}

// Sample uses inverse transform sampling on a single draw. 1-u lies in
// (0, 1] so a zero draw maps to the minimum of the support.
//
// For alpha below 53/1024 the largest variates overflow float64; they
// are clamped to math.MaxFloat64.
func (d *pareto) Sample() float64 {
	x := math.Pow(1-d.src.next(), d.exponent)
	if math.IsInf(x, 1) {
		return math.MaxFloat64
	}
	return x
}

func (d *pareto) String() string {
	return fmt.Sprintf("Pareto<alpha=%.4f>", d.alpha)
}
