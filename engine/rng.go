package engine

import (
	"math/rand"
	"time"
)

// Source yields random integers. *rand.Rand satisfies it; tests inject
// scripted stubs to force specific draws.
type Source interface {
	Intn(n int) int
}

// RNG wraps a random Source with position tracking. Position increments
// with every draw, so two RNGs built from the same seed replay the same
// sequence.
type RNG struct {
	src Source
	pos int64
}

// NewRNG creates a deterministic RNG from a seed. A zero seed derives one
// from the clock.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RNG{src: rand.New(rand.NewSource(seed))}
}

// NewRNGFromSource wraps an arbitrary Source, typically a scripted stub.
func NewRNGFromSource(src Source) *RNG {
	return &RNG{src: src}
}

// Intn returns a random integer in [0, n).
func (r *RNG) Intn(n int) int {
	r.pos++
	return r.src.Intn(n)
}

// WeightedSelect returns an index chosen by weighted random selection
// over a single draw. weights must be non-empty with all positive values.
func (r *RNG) WeightedSelect(weights []int) int {
	total := 0
	for _, w := range weights {
		total += w
	}
	r.pos++
	roll := r.src.Intn(total)
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if roll < cumulative {
			return i
		}
	}
	return len(weights) - 1
}

// Position returns the number of draws made since creation.
func (r *RNG) Position() int64 {
	return r.pos
}
