package random

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestIrwinHallInvalid(t *testing.T) {
	t.Parallel()

	r := mustNew(t, Seed(1))

	for _, n := range []int{0, -1, math.MinInt32} {
		d, err := r.IrwinHall(n)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("IrwinHall(%d) should fail with ErrInvalidParameter. Got %v", n, err)
		}
		if d != nil {
			t.Errorf("IrwinHall(%d) should not return a sampler", n)
		}
	}
}

func TestIrwinHallProducesNumbers(t *testing.T) {
	t.Parallel()

	r, _ := mustNew(t).Clone(SeedString(testSeed))
	d, err := r.IrwinHall(DefaultIrwinHallN)
	if err != nil {
		t.Fatalf("IrwinHall(%d) failed: %s", DefaultIrwinHallN, err)
	}

	xs := draw(d, 10000)
	if len(xs) != 10000 {
		t.Fatalf("Expected 10000 variates. Got %d", len(xs))
	}

	for _, x := range xs {
		if !(x >= 0 && x < 1) {
			t.Fatalf("IrwinHall(1) produced %f, outside of [0, 1)", x)
		}
	}
}

func TestIrwinHallSupport(t *testing.T) {
	t.Parallel()

	r := mustNew(t, Seed(0xDEADBEEF))

	for n := 1; n <= 12; n++ {
		d, _ := r.IrwinHall(n)
		for i := 0; i < 10000; i++ {
			x := d.Sample()
			if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > float64(n) {
				t.Fatalf("IrwinHall(%d) produced %f, outside of [0, %d]", n, x, n)
			}
		}
	}
}

func TestIrwinHallConsumesN(t *testing.T) {
	t.Parallel()

	src := &countingSource{values: []float64{0.5, 0.25, 0.125}}
	r := mustNew(t, Source(src))

	d, _ := r.IrwinHall(3)

	if x := d.Sample(); x != 0.875 {
		t.Errorf("Expected the sum of the three draws (0.875). Got %f", x)
	}

	if src.draws != 3 {
		t.Errorf("Expected 3 draws per sample. Got %d", src.draws)
	}

	d.Sample()
	d.Sample()

	if src.draws != 9 {
		t.Errorf("Expected 9 draws after 3 samples. Got %d", src.draws)
	}
}

func TestIrwinHallOneIsTheSource(t *testing.T) {
	t.Parallel()

	d, _ := mustNew(t, SeedString(testSeed)).IrwinHall(1)
	direct := mustNew(t, SeedString(testSeed))

	xs := draw(d, 10000)
	for i, x := range xs {
		if u := direct.Float64(); x != u {
			t.Fatalf("IrwinHall(1) should return the raw draw. Got %f, wanted %f at %d", x, u, i)
		}
	}

	if mean := stat.Mean(xs, nil); math.Abs(mean-0.5) >= 0.01 {
		t.Errorf("IrwinHall(1) mean should be close to 0.5. Got %f", mean)
	}

	uniform := distuv.Uniform{Min: 0, Max: 1}
	if ks := ksDistance(xs, uniform.CDF); ks >= 0.025 {
		t.Errorf("IrwinHall(1) should follow U(0,1). KS distance %f", ks)
	}
}

func TestIrwinHallMoments(t *testing.T) {
	t.Parallel()

	if testing.Short() {
		t.Skipf("Skipping moment test. Short flag is on")
	}

	d, _ := mustNew(t, Seed(0xDEADBEEF)).IrwinHall(3)
	xs := draw(d, 100000)

	mean, variance := stat.MeanVariance(xs, nil)

	if math.Abs(mean-1.5)/1.5 >= 0.05 {
		t.Errorf("IrwinHall(3) mean should be within 5%% of 1.5. Got %f", mean)
	}

	if math.Abs(variance-0.25)/0.25 >= 0.05 {
		t.Errorf("IrwinHall(3) variance should be within 5%% of 0.25. Got %f", variance)
	}
}

func benchmarkIrwinHall(n int, b *testing.B) {
	d, _ := mustNew(b, Seed(0xDEADBEEF)).IrwinHall(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Sample()
	}
}

func BenchmarkIrwinHall1(b *testing.B) {
	benchmarkIrwinHall(1, b)
}

func BenchmarkIrwinHall12(b *testing.B) {
	benchmarkIrwinHall(12, b)
}
