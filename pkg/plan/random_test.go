package plan

import (
	"math"
	"math/rand"
	"testing"
)

func TestRandomDeterministic(t *testing.T) {
	a := Random(rand.New(rand.NewSource(42)), DefaultRandomOptions())
	b := Random(rand.New(rand.NewSource(42)), DefaultRandomOptions())
	if len(a.Cuts) != len(b.Cuts) {
		t.Fatalf("cut counts differ: %d vs %d", len(a.Cuts), len(b.Cuts))
	}
	for i := range a.Cuts {
		if a.Cuts[i] != b.Cuts[i] {
			t.Fatalf("cut %d differs", i)
		}
	}

	c := Random(rand.New(rand.NewSource(43)), DefaultRandomOptions())
	if len(c.Cuts) == len(a.Cuts) && c.Cuts[0] == a.Cuts[0] {
		t.Error("different seeds produced the same plan")
	}
}

func TestRandomShape(t *testing.T) {
	opts := DefaultRandomOptions()
	for seed := int64(0); seed < 20; seed++ {
		p := Random(rand.New(rand.NewSource(seed)), opts)
		if n := len(p.Cuts); n < opts.MinCuts || n >= opts.MaxCuts {
			t.Errorf("seed %d: %d cuts outside [%d, %d)", seed, n, opts.MinCuts, opts.MaxCuts)
		}
		if p.Stock.Size != DefaultStockSize {
			t.Errorf("seed %d: stock size %v", seed, p.Stock.Size)
		}
		for i, c := range p.Cuts {
			if math.Abs(c.Normal.Length()-1) > 1e-9 {
				t.Errorf("seed %d cut %d: normal not unit: %v", seed, i, c.Normal)
			}
			d := c.Point.Length()
			if d < 1-1e-9 || d >= 1.25 {
				t.Errorf("seed %d cut %d: depth %v outside [1, 1.25)", seed, i, d)
			}
			if c.Extent != DefaultExtent {
				t.Errorf("seed %d cut %d: extent %v", seed, i, c.Extent)
			}
		}
		if HasErrors(Validate(p)) {
			t.Errorf("seed %d: random plan fails validation: %v", seed, Validate(p))
		}
	}
}

func TestRandomFixedCount(t *testing.T) {
	p := Random(rand.New(rand.NewSource(1)), RandomOptions{MinCuts: 3})
	if len(p.Cuts) != 3 {
		t.Errorf("expected exactly 3 cuts, got %d", len(p.Cuts))
	}
}
