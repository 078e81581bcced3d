package engine

import "testing"

func TestRNG_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)

	for i := 0; i < 50; i++ {
		a := rng1.Intn(100)
		b := rng2.Intn(100)
		if a != b {
			t.Fatalf("draw %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_Intn_Range(t *testing.T) {
	rng := NewRNG(99)

	for i := 0; i < 1000; i++ {
		v := rng.Intn(4)
		if v < 0 || v > 3 {
			t.Fatalf("Intn(4) out of range: got %d", v)
		}
	}
}

func TestRNG_ZeroSeed_Works(t *testing.T) {
	rng := NewRNG(0)

	for i := 0; i < 10; i++ {
		if v := rng.Intn(10); v < 0 || v > 9 {
			t.Fatalf("Intn(10) out of range: got %d", v)
		}
	}
}

func TestRNG_WeightedSelect_Deterministic(t *testing.T) {
	rng1 := NewRNG(42)
	rng2 := NewRNG(42)
	weights := []int{3, 1}

	for i := 0; i < 20; i++ {
		a := rng1.WeightedSelect(weights)
		b := rng2.WeightedSelect(weights)
		if a != b {
			t.Fatalf("selection %d: got %d and %d from same seed", i, a, b)
		}
	}
}

func TestRNG_WeightedSelect_Distribution(t *testing.T) {
	rng := NewRNG(12345)
	// The enemy draw: three attack tokens to one defense token.
	weights := []int{3, 1}
	counts := [2]int{}

	const trials = 4000
	for i := 0; i < trials; i++ {
		idx := rng.WeightedSelect(weights)
		if idx < 0 || idx > 1 {
			t.Fatalf("index out of range: %d", idx)
		}
		counts[idx]++
	}

	// With 4k trials, expect roughly 3000/1000 ± some margin.
	if counts[0] < 2800 || counts[0] > 3200 {
		t.Errorf("expected ~3000 for weight 3, got %d", counts[0])
	}
	if counts[1] < 800 || counts[1] > 1200 {
		t.Errorf("expected ~1000 for weight 1, got %d", counts[1])
	}
}

func TestRNG_WeightedSelect_SingleOption(t *testing.T) {
	rng := NewRNG(1)

	for i := 0; i < 10; i++ {
		if idx := rng.WeightedSelect([]int{100}); idx != 0 {
			t.Fatalf("single option should always be 0, got %d", idx)
		}
	}
}

func TestRNG_WeightedSelect_TokenBoundaries(t *testing.T) {
	// Raw draws 0..2 map to the first token, 3 to the second.
	src := &scriptSource{vals: []int{0, 1, 2, 3}}
	rng := NewRNGFromSource(src)

	want := []int{0, 0, 0, 1}
	for i, w := range want {
		if got := rng.WeightedSelect([]int{3, 1}); got != w {
			t.Errorf("draw %d: got index %d, want %d", i, got, w)
		}
	}
	if src.pos != 4 {
		t.Errorf("expected 4 underlying draws, got %d", src.pos)
	}
}

func TestRNG_Position_Tracks(t *testing.T) {
	rng := NewRNG(42)

	if rng.Position() != 0 {
		t.Fatalf("expected position 0, got %d", rng.Position())
	}

	rng.Intn(6)
	if rng.Position() != 1 {
		t.Fatalf("expected position 1, got %d", rng.Position())
	}

	rng.WeightedSelect([]int{3, 1})
	if rng.Position() != 2 {
		t.Fatalf("expected position 2, got %d", rng.Position())
	}
}

func TestRNG_DifferentSeeds_DifferentResults(t *testing.T) {
	rng1 := NewRNG(1)
	rng2 := NewRNG(2)

	differs := false
	for i := 0; i < 20; i++ {
		if rng1.Intn(100) != rng2.Intn(100) {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("expected different seeds to produce different results")
	}
}
