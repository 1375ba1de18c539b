package iterator

import (
	"sync"
	"testing"

	"github.com/hupe1980/invert/position"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lin(offsets ...int) []position.Position {
	out := make([]position.Position, len(offsets))
	for i, o := range offsets {
		out[i] = position.Lin(o)
	}
	return out
}

func seq(rank int, ps []position.Position) position.Seq {
	return position.NewSlice(rank, ps)
}

func TestInverted(t *testing.T) {
	tests := []struct {
		name  string
		skips []position.Position
		picks []position.Position
		want  []position.Position
	}{
		{"skip interior", lin(1, 3), lin(0, 1, 2, 3, 4), lin(0, 2, 4)},
		{"skip nothing", nil, lin(0, 1, 2), lin(0, 1, 2)},
		{"skip everything", lin(0, 1, 2), lin(0, 1, 2), lin()},
		{"skip ends", lin(0, 4), lin(0, 1, 2, 3, 4), lin(1, 2, 3)},
		{"consecutive skips", lin(1, 2, 3), lin(0, 1, 2, 3, 4), lin(0, 4)},
		{"empty picks", nil, nil, lin()},
		{
			"rank-1 cartesian skips match linear picks",
			[]position.Position{position.Cart(2)},
			lin(0, 1, 2, 3),
			lin(0, 1, 3),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := New(seq(1, tc.skips), seq(1, tc.picks))
			got := position.Collect(it)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, len(tc.want), it.Len())
		})
	}
}

func TestInvertedCartesian(t *testing.T) {
	var picks []position.Position
	for i := range 3 {
		for j := range 3 {
			picks = append(picks, position.Cart(i, j))
		}
	}
	it := New(seq(2, []position.Position{position.Cart(1, 1)}), seq(2, picks))

	got := position.Collect(it)
	require.Len(t, got, 8)
	assert.Equal(t, 8, it.Len())
	for _, p := range got {
		assert.False(t, position.Equal(p, position.Cart(1, 1)))
	}
}

func TestInvertedRestartable(t *testing.T) {
	it := New(seq(1, lin(1)), seq(1, lin(0, 1, 2)))

	c1 := it.Cursor()
	p, ok := c1.Next()
	require.True(t, ok)
	assert.Equal(t, position.Lin(0), p)

	// A second cursor starts from scratch and does not disturb the first.
	assert.Equal(t, lin(0, 2), position.Collect(it))

	p, ok = c1.Next()
	require.True(t, ok)
	assert.Equal(t, position.Lin(2), p)
	_, ok = c1.Next()
	assert.False(t, ok)
	_, ok = c1.Next()
	assert.False(t, ok)
}

func TestInvertedAll(t *testing.T) {
	it := New(seq(1, lin(0)), seq(1, lin(0, 1, 2, 3)))

	var got []position.Position
	for p := range it.All() {
		got = append(got, p)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, lin(1, 2), got)
}

func TestInvertedConcurrentCursors(t *testing.T) {
	picks := make([]position.Position, 1000)
	for i := range picks {
		picks[i] = position.Lin(i)
	}
	var skips []position.Position
	for i := 0; i < 1000; i += 3 {
		skips = append(skips, position.Lin(i))
	}
	it := New(seq(1, skips), seq(1, picks))

	var wg sync.WaitGroup
	counts := make([]int, 8)
	for w := range counts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range it.All() {
				counts[w]++
			}
		}()
	}
	wg.Wait()

	for _, n := range counts {
		assert.Equal(t, it.Len(), n)
	}
}

func TestInvertedComposes(t *testing.T) {
	inner := New(seq(1, lin(1, 3)), seq(1, lin(0, 1, 2, 3, 4)))
	// Inverting the inverted sequence recovers the original skips.
	outer := New(inner, seq(1, lin(0, 1, 2, 3, 4)))
	assert.Equal(t, lin(1, 3), position.Collect(outer))
	assert.Equal(t, 2, outer.Len())
}
