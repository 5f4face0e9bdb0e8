package random

import (
	"fmt"
	"testing"
)

func TestSeedDeterminism(t *testing.T) {
	t.Parallel()

	for _, options := range [][]Option{{Seed(0xDEADBEEF)}, {SeedString(testSeed)}, {KeyString(testSeed)}} {
		a, _ := mustNew(t, options...).IrwinHall(3)
		b, _ := mustNew(t, options...).IrwinHall(3)

		for i := 0; i < 1000; i++ {
			if x, y := a.Sample(), b.Sample(); x != y {
				t.Fatalf("Same seed produced different variates at %d: %f != %f", i, x, y)
			}
		}
	}
}

func TestCloneWithSeed(t *testing.T) {
	t.Parallel()

	parent := mustNew(t)
	for i := 0; i < 10; i++ {
		parent.Float64()
	}

	a, err := parent.Clone(SeedString(testSeed))
	if err != nil {
		t.Fatalf("Clone() failed: %s", err)
	}

	assertSameStream(t, "clone", a, mustNew(t, SeedString(testSeed)), 1000)
}

func TestCloneIndependence(t *testing.T) {
	t.Parallel()

	parent := mustNew(t, Seed(1))
	a, _ := parent.Clone(SeedString("seed A"))
	b, _ := parent.Clone(SeedString("seed B"))

	da, _ := a.Pareto(2)
	db, _ := b.Pareto(2)

	same := 0
	for i := 0; i < 100; i++ {
		if da.Sample() == db.Sample() {
			same++
		}
	}

	if same == 100 {
		t.Errorf("Clones with different seeds produced identical sequences")
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	t.Parallel()

	parent := mustNew(t, Seed(7))
	twin := mustNew(t, Seed(7))

	for _, options := range [][]Option{nil, {Seed(7)}} {
		clone, err := parent.Clone(options...)
		if err != nil {
			t.Fatalf("Clone() failed: %s", err)
		}

		if clone.src == parent.src {
			t.Fatalf("Clone shares its source with the parent")
		}

		for i := 0; i < 100; i++ {
			clone.Float64()
		}
	}

	assertSameStream(t, "parent", parent, twin, 100)
}

func TestUnseededClonesDiffer(t *testing.T) {
	t.Parallel()

	var next uint64
	counter := func() (uint64, error) {
		next++
		return next, nil
	}

	parent := mustNew(t, Entropy(counter))
	a, _ := parent.Clone()
	b, _ := parent.Clone()

	if a.Float64() == b.Float64() {
		t.Errorf("Unseeded clones should draw fresh seeds")
	}
}

func TestSamplersShareGeneratorSource(t *testing.T) {
	t.Parallel()

	r := mustNew(t, Seed(3))
	twin := mustNew(t, Seed(3))

	ih, _ := r.IrwinHall(1)
	p, _ := r.Pareto(1)

	ih.Sample()
	p.Sample()

	twin.Float64()
	twin.Float64()

	if r.Float64() != twin.Float64() {
		t.Errorf("Samplers should advance the generator's source")
	}
}

func TestSourcePanicPropagates(t *testing.T) {
	t.Parallel()

	r := mustNew(t, Source(panicSource{}))
	d, err := r.Pareto(1)
	if err != nil {
		t.Fatalf("Parameters are valid. Got %s", err)
	}

	defer func() {
		if v := recover(); v != errUpstream {
			t.Errorf("Expected the source's panic value to propagate. Got %v", v)
		}
	}()

	d.Sample()
	t.Errorf("Sample() should not return when the source fails")
}

var errUpstream = &upstreamError{}

type upstreamError struct{}

func (*upstreamError) Error() string { return "upstream failure" }

type panicSource struct{}

func (panicSource) Float64() float64 {
	panic(errUpstream)
}

func TestString(t *testing.T) {
	r := mustNew(t, Seed(1))
	if s := r.String(); s != "Random<source=*rand.Rand>" {
		t.Errorf("Unexpected String(): %s", s)
	}
}

func TestSamplerString(t *testing.T) {
	r := mustNew(t, Seed(1))

	ih, _ := r.IrwinHall(3)
	if s := fmt.Sprint(ih); s != "IrwinHall<n=3>" {
		t.Errorf("Unexpected IrwinHall String(): %s", s)
	}

	p, _ := r.Pareto(2)
	if s := fmt.Sprint(p); s != "Pareto<alpha=2.0000>" {
		t.Errorf("Unexpected Pareto String(): %s", s)
	}

	if s := fmt.Sprint(r); s != "Random<source=*rand.Rand>" {
		t.Errorf("Unexpected Random String(): %s", s)
	}
}
