// Package iterator implements the inverted iterator: a lazy, restartable
// walk over a pick domain that omits every position of a sorted skip set.
package iterator

import (
	"iter"

	"github.com/hupe1980/invert/position"
)

// Inverted yields the positions of a pick domain that are absent from a
// skip sequence. It owns no array data and never mutates its inputs, so
// independent cursors may traverse it concurrently.
//
// Both inputs must be sorted in the same traversal order and the skips must
// be a duplicate-free subset of the picks; the resolver validates this
// before constructing an Inverted.
type Inverted struct {
	skips position.Seq
	picks position.Seq
}

// compile-time check
var _ position.Seq = (*Inverted)(nil)

// New returns the inversion of skips over picks.
func New(skips, picks position.Seq) *Inverted {
	return &Inverted{skips: skips, picks: picks}
}

// Skips returns the normalized skip sequence.
func (it *Inverted) Skips() position.Seq { return it.skips }

// Picks returns the pick domain.
func (it *Inverted) Picks() position.Seq { return it.picks }

// Len implements position.Seq. It is exact for a validated subset.
func (it *Inverted) Len() int { return it.picks.Len() - it.skips.Len() }

// Rank implements position.Seq.
func (it *Inverted) Rank() int { return it.picks.Rank() }

// Cursor implements position.Seq. Every call starts a fresh traversal.
func (it *Inverted) Cursor() position.Cursor {
	c := &Cursor{
		skips: it.skips.Cursor(),
		picks: it.picks.Cursor(),
	}
	c.skip, c.hasSkip = c.skips.Next()
	return c
}

// All returns the remaining positions as a range-over-func iterator.
func (it *Inverted) All() iter.Seq[position.Position] {
	return position.All(it)
}

// Cursor is a single forward traversal of an Inverted. It is not safe for
// concurrent use.
type Cursor struct {
	skips, picks position.Cursor

	skip    position.Position
	hasSkip bool
}

// Next returns the next position not in the skip set.
//
// Each step advances the pick cursor exactly once, so a traversal ends
// after at most |picks| steps.
func (c *Cursor) Next() (position.Position, bool) {
	for {
		pick, ok := c.picks.Next()
		if !ok {
			return position.Position{}, false
		}
		if !c.hasSkip || !position.Equal(c.skip, pick) {
			return pick, true
		}
		c.skip, c.hasSkip = c.skips.Next()
	}
}
