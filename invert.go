package invert

import (
	"fmt"

	"github.com/hupe1980/invert/domain"
	"github.com/hupe1980/invert/iterator"
	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/selector"
	"github.com/hupe1980/invert/shape"
)

// Arg is one index argument. Apart from inverted indices, the resolver only
// needs to know how many array axes an argument spans.
type Arg interface {
	NumAxes() int
}

// Int selects a single index on one axis.
type Int int

// NumAxes implements Arg.
func (Int) NumAxes() int { return 1 }

// Colon selects a whole axis.
type Colon struct{}

// NumAxes implements Arg.
func (Colon) NumAxes() int { return 1 }

// Span selects the indices [Start, Stop) of one axis.
type Span struct {
	Start, Stop int
}

// NumAxes implements Arg.
func (Span) NumAxes() int { return 1 }

// Point selects a single position, spanning one axis per coordinate.
type Point struct {
	position.Position
}

// NumAxes implements Arg.
func (p Point) NumAxes() int { return p.Rank() }

// InvertedIndex selects everything except the positions of its skip
// selector. It is immutable and meant to be consumed by a single Resolve.
type InvertedIndex struct {
	sel selector.Selector
}

// Not returns the inverted index that skips sel.
func Not(sel selector.Selector) InvertedIndex {
	return InvertedIndex{sel: sel}
}

// NotOffsets skips the given linear offsets.
func NotOffsets(offsets ...int) InvertedIndex {
	return Not(selector.Offsets(offsets...))
}

// NotAt skips the single position p.
func NotAt(p position.Position) InvertedIndex {
	return Not(selector.At(p))
}

// Selector returns the skip selector.
func (i InvertedIndex) Selector() selector.Selector { return i.sel }

// NumAxes implements Arg.
func (i InvertedIndex) NumAxes() int { return i.sel.Rank() }

func (i InvertedIndex) String() string { return fmt.Sprintf("Not(%v)", i.sel) }

// Selection is a resolved inverted index: an iterator over the positions of
// its pick domain that are not skipped.
type Selection struct {
	*iterator.Inverted
	domain *domain.Domain
}

// Domain returns the pick domain.
func (s *Selection) Domain() *domain.Domain { return s.domain }

// NumAxes implements Arg.
func (s *Selection) NumAxes() int { return s.domain.Rank() }

// Resolved is the revised argument list produced by Resolve.
type Resolved struct {
	// Args holds the input arguments with every InvertedIndex replaced by
	// a *Selection.
	Args []Arg
	// Axes holds, per argument, the array axes it spans. Axes beyond the
	// array's rank are synthesized as shape.Unit.
	Axes [][]shape.Axis
	// Linear reports whether the arguments index the flattened traversal.
	Linear bool
}

// Selections returns the resolved inverted indices in argument order.
func (r *Resolved) Selections() []*Selection {
	var out []*Selection
	for _, a := range r.Args {
		if s, ok := a.(*Selection); ok {
			out = append(out, s)
		}
	}
	return out
}
