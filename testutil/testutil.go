package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/shape"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Shape returns a zero-based shape of the given rank whose axes have
// lengths in [1, maxLen].
func (r *RNG) Shape(order position.Order, rank, maxLen int) *shape.Dense {
	r.mu.Lock()
	defer r.mu.Unlock()

	dims := make([]int, rank)
	for i := range dims {
		dims[i] = 1 + r.rand.Intn(maxLen)
	}
	return shape.New(order, dims...)
}

// Subset picks each position of s with probability p and returns the
// picks in random order.
func (r *RNG) Subset(s shape.Shape, p float64) []position.Position {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []position.Position
	for pos := range position.All(s.Positions()) {
		if r.rand.Float64() < p {
			out = append(out, pos)
		}
	}
	r.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Offsets returns n offsets in [0, size), duplicates allowed.
func (r *RNG) Offsets(n, size int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(size)
	}
	return out
}

// ExactInversion enumerates s in canonical order and drops every position
// equal to one of skips. It is quadratic and meant as ground truth only.
func ExactInversion(s shape.Shape, skips []position.Position) []position.Position {
	out := []position.Position{}
	for pos := range position.All(s.Positions()) {
		skipped := false
		for _, sk := range skips {
			if position.Equal(pos, sk) {
				skipped = true
				break
			}
		}
		if !skipped {
			out = append(out, pos)
		}
	}
	return out
}

// ExactLinearInversion is ExactInversion over the flattened traversal of s.
func ExactLinearInversion(s shape.Shape, offsets []int) []position.Position {
	skip := make(map[int]bool, len(offsets))
	for _, o := range offsets {
		skip[o] = true
	}
	lin := s.Linear()
	out := []position.Position{}
	for i := lin.Start; i < lin.Stop; i++ {
		if !skip[i] {
			out = append(out, position.Lin(i))
		}
	}
	return out
}
