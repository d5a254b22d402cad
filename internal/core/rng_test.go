package core_test

import (
	"testing"

	"github.com/vovakirdan/pathgrid/internal/core"
)

func TestRNGDeterministic(t *testing.T) {
	a := core.NewRNG(42)
	b := core.NewRNG(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRNGIntnRange(t *testing.T) {
	rng := core.NewRNG(7)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := rng.Intn(5)
		if v < 0 || v >= 5 {
			t.Fatalf("Intn(5) returned %d", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected all 5 values, saw %d", len(seen))
	}
	if rng.Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestRNGZeroSeed(t *testing.T) {
	// Zero would leave xorshift stuck at zero forever
	rng := core.NewRNG(0)
	if rng.Next() == 0 {
		t.Error("zero seed should be replaced with a default")
	}
}
