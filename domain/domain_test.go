package domain

import (
	"testing"

	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/shape"
	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	axes := []shape.Axis{{Start: 0, Stop: 3}, {Start: 0, Stop: 4}, {Start: 1, Stop: 3}}

	tests := []struct {
		name        string
		axes        []shape.Axis
		rank        int
		wantDims    []int
		wantRest    int
		synthesized int
	}{
		{"rank 0 consumes nothing", axes, 0, []int{}, 3, 0},
		{"rank 1 takes next axis", axes, 1, []int{3}, 2, 0},
		{"rank 2 takes two axes", axes, 2, []int{3, 4}, 1, 0},
		{"rank 3 takes all", axes, 3, []int{3, 4, 2}, 0, 0},
		{"rank beyond axes synthesizes", axes, 5, []int{3, 4, 2, 1, 1}, 0, 2},
		{"no axes left", nil, 1, []int{1}, 0, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, rest := Split(tc.axes, tc.rank, position.RowMajor)
			assert.Equal(t, tc.rank, d.Rank())
			assert.Equal(t, tc.wantDims, d.Dims())
			assert.Len(t, rest, tc.wantRest)
			assert.Equal(t, tc.synthesized, d.Synthesized())
		})
	}
}

func TestSplitDoesNotAliasInput(t *testing.T) {
	axes := []shape.Axis{{Start: 0, Stop: 3}, {Start: 0, Stop: 4}}
	_, rest := Split(axes, 1, position.RowMajor)
	rest[0] = shape.Unit
	assert.Equal(t, shape.Axis{Start: 0, Stop: 4}, axes[1])
}

func TestDomainEnumeration(t *testing.T) {
	t.Run("rank 1 yields linear positions", func(t *testing.T) {
		d := New(position.RowMajor, shape.Axis{Start: 2, Stop: 5})
		assert.Equal(t, []position.Position{position.Lin(2), position.Lin(3), position.Lin(4)}, position.Collect(d))
		assert.Equal(t, position.Lin(3), d.At(1))
		assert.True(t, d.Contains(position.Cart(4)))
		assert.False(t, d.Contains(position.Lin(5)))
	})

	t.Run("rank 0 holds one point", func(t *testing.T) {
		d, _ := Split(nil, 0, position.RowMajor)
		assert.Equal(t, 1, d.Len())
		assert.Equal(t, []position.Position{position.Cart()}, position.Collect(d))
		assert.True(t, d.Contains(position.Cart()))
	})

	t.Run("rank 2 follows order", func(t *testing.T) {
		d := New(position.ColumnMajor, shape.Axis{Start: 0, Stop: 2}, shape.Axis{Start: 0, Stop: 2})
		assert.Equal(t, []position.Position{
			position.Cart(0, 0), position.Cart(1, 0), position.Cart(0, 1), position.Cart(1, 1),
		}, position.Collect(d))
		assert.Equal(t, position.Cart(0, 1), d.At(2))
	})
}
