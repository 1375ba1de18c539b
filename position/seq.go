package position

import "iter"

// Cursor walks an ordered sequence of positions forward. A Cursor is not
// safe for concurrent use.
type Cursor interface {
	// Next returns the next position, or false when the sequence is done.
	Next() (Position, bool)
}

// Seq is a finite, restartable sequence of positions. Every call to Cursor
// starts a fresh traversal; traversing never mutates the Seq, so distinct
// cursors may be used from different goroutines.
type Seq interface {
	Cursor() Cursor
	// Len returns the number of positions the sequence yields.
	Len() int
	// Rank returns the rank of every yielded position.
	Rank() int
}

// All adapts s to a range-over-func iterator.
func All(s Seq) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		c := s.Cursor()
		for {
			p, ok := c.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Collect materializes s.
func Collect(s Seq) []Position {
	out := make([]Position, 0, s.Len())
	for p := range All(s) {
		out = append(out, p)
	}
	return out
}

// Slice is a Seq over an in-memory list of positions.
type Slice struct {
	items []Position
	rank  int
}

// NewSlice returns a Seq over items. The slice is not copied; callers must
// not modify it afterwards.
func NewSlice(rank int, items []Position) *Slice {
	return &Slice{items: items, rank: rank}
}

// Cursor implements Seq.
func (s *Slice) Cursor() Cursor { return &sliceCursor{items: s.items} }

// Len implements Seq.
func (s *Slice) Len() int { return len(s.items) }

// Rank implements Seq.
func (s *Slice) Rank() int { return s.rank }

type sliceCursor struct {
	items []Position
	i     int
}

func (c *sliceCursor) Next() (Position, bool) {
	if c.i >= len(c.items) {
		return Position{}, false
	}
	p := c.items[c.i]
	c.i++
	return p, true
}
