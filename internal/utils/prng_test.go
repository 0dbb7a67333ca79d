package utils

import "testing"

func TestPRNGServiceIsReproducible(t *testing.T) {
	a := NewPRNGService(42)
	b := NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestZeroSeedUsesClock(t *testing.T) {
	if NewPRNGService(0).Seed() == 0 {
		t.Error("expected a non-zero seed to be chosen")
	}
}

func TestIntBetweenBounds(t *testing.T) {
	r := NewPRNGService(7)
	seenMin, seenMax := false, false
	for i := 0; i < 5000; i++ {
		v := r.IntBetween(100, 105)
		if v < 100 || v > 105 {
			t.Fatalf("IntBetween returned %d", v)
		}
		seenMin = seenMin || v == 100
		seenMax = seenMax || v == 105
	}
	if !seenMin || !seenMax {
		t.Errorf("bounds not inclusive: min=%v max=%v", seenMin, seenMax)
	}
	if got := r.IntBetween(5, 5); got != 5 {
		t.Errorf("IntBetween(5,5) = %d", got)
	}
}

func TestChanceExtremes(t *testing.T) {
	r := NewPRNGService(1)
	for i := 0; i < 100; i++ {
		if r.Chance(0) {
			t.Fatal("Chance(0) succeeded")
		}
		if !r.Chance(1) {
			t.Fatal("Chance(1) failed")
		}
	}
}
