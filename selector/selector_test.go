package selector

import (
	"math"
	"testing"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/invert/domain"
	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		name string
		sel  Selector
		kind Kind
		rank int
	}{
		{"linear point", At(position.Lin(2)), Point, 1},
		{"cartesian point", At(position.Cart(1, 1)), Point, 2},
		{"rank-0 point", At(position.Cart()), Point, 0},
		{"offsets", Offsets(1, 3), LinearSet, 1},
		{"range", Range(0, 3), LinearSet, 1},
		{"bitmap", FromBitmap(roaring64.BitmapOf(1)), LinearSet, 1},
		{"rank-1 coords collapse to linear", Coords(position.Cart(2), position.Lin(0)), LinearSet, 1},
		{"empty coords", Coords(), LinearSet, 1},
		{"rank-2 coords", Coords(position.Cart(0, 1)), CoordinateSet, 2},
		{"vector mask", FromMask(Vector(true, false)), AxisMask, 1},
		{"lazy", FromSeq(position.NewSlice(3, nil)), Lazy, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, tc.sel.Kind())
			assert.Equal(t, tc.rank, tc.sel.Rank())
			assert.NoError(t, tc.sel.Err())
		})
	}
}

func TestCoordsMixedRank(t *testing.T) {
	sel := Coords(position.Cart(0, 1), position.Cart(1))
	require.ErrorIs(t, sel.Err(), ErrMixedRank)

	_, err := Normalize(sel, domain.New(position.RowMajor))
	assert.ErrorIs(t, err, ErrMixedRank)
}

func TestMask(t *testing.T) {
	m, err := NewMask([]int{2, 2}, []bool{true, false, false, true})
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rank())
	assert.Equal(t, []int{2, 2}, m.Dims())
	assert.Equal(t, 4, m.Cells())
	assert.Equal(t, 2, m.Count())
	assert.True(t, m.Test(3))

	_, err = NewMask([]int{2, 2}, []bool{true})
	assert.ErrorIs(t, err, ErrMaskSize)

	scalar, err := NewMask(nil, []bool{true})
	require.NoError(t, err)
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, 1, scalar.Count())
}

func TestNormalize(t *testing.T) {
	line := domain.New(position.RowMajor, shape.Axis{Start: 0, Stop: 10})
	grid := domain.New(position.RowMajor, shape.Axis{Start: 0, Stop: 3}, shape.Axis{Start: 0, Stop: 3})

	lin := func(offsets ...int) []position.Position {
		out := make([]position.Position, len(offsets))
		for i, o := range offsets {
			out[i] = position.Lin(o)
		}
		return out
	}

	t.Run("offsets sorted and deduplicated", func(t *testing.T) {
		s, err := Normalize(Offsets(7, 1, 3, 1), line)
		require.NoError(t, err)
		assert.Equal(t, lin(1, 3, 7), position.Collect(s))
		assert.Equal(t, 3, s.Len())
		ext, ok := s.Extent()
		require.True(t, ok)
		assert.Equal(t, Extent{Lo: 1, Hi: 7}, ext)
	})

	t.Run("negative offsets", func(t *testing.T) {
		s, err := Normalize(Offsets(2, -3, 2, -1), line)
		require.NoError(t, err)
		assert.Equal(t, lin(-3, -1, 2), position.Collect(s))
		ext, ok := s.Extent()
		require.True(t, ok)
		assert.Equal(t, Extent{Lo: -3, Hi: 2}, ext)
	})

	t.Run("empty", func(t *testing.T) {
		s, err := Normalize(Offsets(), line)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
		ext, ok := s.Extent()
		require.True(t, ok)
		assert.True(t, ext.Empty)
	})

	t.Run("range", func(t *testing.T) {
		s, err := Normalize(Range(2, 5), line)
		require.NoError(t, err)
		assert.Equal(t, lin(2, 3, 4), position.Collect(s))

		s, err = Normalize(Range(5, 2), line)
		require.NoError(t, err)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("coordinates follow domain order", func(t *testing.T) {
		sel := Coords(position.Cart(1, 0), position.Cart(0, 1), position.Cart(1, 0))

		s, err := Normalize(sel, grid)
		require.NoError(t, err)
		assert.Equal(t, []position.Position{position.Cart(0, 1), position.Cart(1, 0)}, position.Collect(s))

		colGrid := domain.New(position.ColumnMajor, shape.Axis{Start: 0, Stop: 3}, shape.Axis{Start: 0, Stop: 3})
		s, err = Normalize(sel, colGrid)
		require.NoError(t, err)
		assert.Equal(t, []position.Position{position.Cart(1, 0), position.Cart(0, 1)}, position.Collect(s))
	})

	t.Run("mask unravels through domain", func(t *testing.T) {
		m, err := NewMask([]int{3, 3}, []bool{
			false, true, false,
			false, false, false,
			false, false, true,
		})
		require.NoError(t, err)
		s, err := Normalize(FromMask(m), grid)
		require.NoError(t, err)
		assert.Same(t, m, s.Mask())
		assert.Equal(t, []position.Position{position.Cart(0, 1), position.Cart(2, 2)}, position.Collect(s))
	})

	t.Run("mask size mismatch", func(t *testing.T) {
		_, err := Normalize(FromMask(Vector(true, false)), line)
		assert.ErrorIs(t, err, ErrMaskMismatch)
	})

	t.Run("point unchanged", func(t *testing.T) {
		s, err := Normalize(At(position.Cart(1, 1)), grid)
		require.NoError(t, err)
		assert.Equal(t, []position.Position{position.Cart(1, 1)}, position.Collect(s))
	})

	t.Run("bitmap is not copied", func(t *testing.T) {
		s, err := Normalize(FromBitmap(roaring64.BitmapOf(4, 2)), line)
		require.NoError(t, err)
		assert.Equal(t, lin(2, 4), position.Collect(s))
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := Normalize(Offsets(5, 0, 5, 2), line)
		require.NoError(t, err)
		second, err := Normalize(FromSeq(first), line)
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, position.Collect(first), position.Collect(second))
	})

	t.Run("idempotent across equal domains", func(t *testing.T) {
		first, err := Normalize(FromMask(Vector(false, true, false)), domain.New(position.RowMajor, shape.Axis{Start: 0, Stop: 3}))
		require.NoError(t, err)
		second, err := Normalize(FromSeq(first), domain.New(position.RowMajor, shape.Axis{Start: 0, Stop: 3}))
		require.NoError(t, err)
		assert.Same(t, first, second)
	})

	t.Run("skips from another domain are rechecked", func(t *testing.T) {
		five := domain.New(position.RowMajor, shape.Axis{Start: 0, Stop: 5})
		first, err := Normalize(FromMask(Vector(false, false, false, false, true)), five)
		require.NoError(t, err)
		require.Equal(t, AxisMask, first.Kind())

		three := domain.New(position.RowMajor, shape.Axis{Start: 0, Stop: 3})
		second, err := Normalize(FromSeq(first), three)
		require.NoError(t, err)
		assert.NotSame(t, first, second)
		assert.Equal(t, Lazy, second.Kind())
		assert.Nil(t, second.Mask())
		assert.False(t, second.Trusted())
		assert.Equal(t, lin(4), position.Collect(second))
	})

	t.Run("bitmap offset beyond int", func(t *testing.T) {
		_, err := Normalize(FromBitmap(roaring64.BitmapOf(math.MaxUint64)), line)
		require.ErrorIs(t, err, ErrOffsetOverflow)
		assert.Contains(t, err.Error(), "18446744073709551615")
	})

	t.Run("lazy sequences are untrusted", func(t *testing.T) {
		s, err := Normalize(FromSeq(position.NewSlice(1, lin(1, 2))), line)
		require.NoError(t, err)
		assert.False(t, s.Trusted())
		assert.Equal(t, lin(1, 2), position.Collect(s))
	})
}
