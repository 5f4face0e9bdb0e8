package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"

	random "github.com/caio/go-random"
	"github.com/caio/go-random/internal/summary"
)

func sampler(r *random.Random, cfg config) (random.Sampler, error) {
	switch cfg.Dist {
	case "irwin-hall", "irwinhall":
		return r.IrwinHall(cfg.N)
	case "pareto":
		return r.Pareto(cfg.Alpha)
	default:
		return nil, errors.Errorf("unknown distribution %q", cfg.Dist)
	}
}

func run(cfg config, w io.Writer) error {
	r, err := random.New(cfg.options()...)
	if err != nil {
		return errors.Wrap(err, "creating generator")
	}

	d, err := sampler(r, cfg)
	if err != nil {
		return err
	}
	log.Debugf("drawing %d variates from %v with %v", cfg.Count, d, r)

	out := bufio.NewWriter(w)
	if cfg.Summary {
		acc, err := summary.New()
		if err != nil {
			return err
		}
		for i := 0; i < cfg.Count; i++ {
			if err := acc.Add(d.Sample()); err != nil {
				return errors.Wrapf(err, "summarizing variate %d", i)
			}
		}
		writeSummary(out, acc.Summary())
	} else {
		for i := 0; i < cfg.Count; i++ {
			out.WriteString(strconv.FormatFloat(d.Sample(), 'g', -1, 64))
			out.WriteByte('\n')
		}
	}
	return out.Flush()
}

func writeSummary(w io.Writer, s summary.Summary) {
	fmt.Fprintf(w, "count\t%d\n", s.Count)
	fmt.Fprintf(w, "min\t%g\n", s.Min)
	fmt.Fprintf(w, "max\t%g\n", s.Max)
	fmt.Fprintf(w, "mean\t%g\n", s.Mean)
	fmt.Fprintf(w, "stddev\t%g\n", s.StdDev)
	for i, p := range summary.Quantiles {
		fmt.Fprintf(w, "p%g\t%g\n", p*100, s.Quantiles[i])
	}
}
