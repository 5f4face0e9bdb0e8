// Package random provides seedable generators of samplers for
// probability distributions.
//
// A Random wraps one uniform source. Its factory methods validate the
// distribution parameters and return a Sampler bound to that source:
//
//	r, _ := random.New(random.SeedString("some seed"))
//	d, _ := r.Pareto(2)
//	x := d.Sample()
//
// A Random and the samplers it hands out share mutable state and are
// not safe for concurrent use. Give each goroutine its own Clone.
package random

import (
	"fmt"
)

// Random is a generator instance.
type Random struct {
	src     *uniform
	entropy func() (uint64, error)
}

// New creates a generator. Without a Seed, SeedString, KeyString or
// Source option the generator draws from a PCG source seeded by the
// entropy provider.
func New(options ...Option) (*Random, error) {
	return build(config{entropy: cryptoEntropy}, options)
}

// Clone creates a generator that shares no state with r. Options are
// applied as in New; a clone without a seed gets a fresh entropy
// seeded source from r's entropy provider.
func (r *Random) Clone(options ...Option) (*Random, error) {
	return build(config{entropy: r.entropy}, options)
}

func build(cfg config, options []Option) (*Random, error) {
	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	var (
		src UniformSource
		err error
	)
	if cfg.source == nil {
		src, err = defaultSource(cfg.entropy)
	} else {
		src, err = cfg.source()
	}
	if err != nil {
		return nil, err
	}

	return &Random{src: &uniform{src: src}, entropy: cfg.entropy}, nil
}

// Float64 returns the next variate of the underlying source, in [0, 1).
func (r *Random) Float64() float64 {
	return r.src.next()
}

func (r *Random) String() string {
	return fmt.Sprintf("Random<source=%T>", r.src.src)
}
