package testutil

import (
	"testing"

	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/shape"
	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	rng := NewRNG(4711)

	s := rng.Shape(position.RowMajor, 3, 4)

	assert.Equal(t, 3, s.Rank())
	for _, d := range s.Dims() {
		assert.GreaterOrEqual(t, d, 1)
		assert.LessOrEqual(t, d, 4)
	}
}

func TestSubset(t *testing.T) {
	rng := NewRNG(4711)
	s := shape.New(position.RowMajor, 4, 4)

	assert.Empty(t, rng.Subset(s, 0))
	assert.Len(t, rng.Subset(s, 1), 16)

	for _, p := range rng.Subset(s, 0.5) {
		assert.True(t, s.InBounds(p))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Offsets(10, 100)
	rng.Reset()
	b := rng.Offsets(10, 100)
	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestExactInversion(t *testing.T) {
	s := shape.New(position.RowMajor, 2, 2)
	got := ExactInversion(s, []position.Position{position.Cart(1, 0), position.Cart(1, 0)})
	assert.Equal(t, []position.Position{position.Cart(0, 0), position.Cart(0, 1), position.Cart(1, 1)}, got)

	lin := ExactLinearInversion(shape.New(position.RowMajor, 5), []int{4, 0, 4})
	assert.Equal(t, []position.Position{position.Lin(1), position.Lin(2), position.Lin(3)}, lin)
}
