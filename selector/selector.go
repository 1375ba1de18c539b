package selector

import (
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/invert/internal/bitmap"
	"github.com/hupe1980/invert/position"
)

// ErrMixedRank is returned when a position collection mixes ranks.
var ErrMixedRank = errors.New("selector: positions of mixed rank")

// Kind tags the shape of a skip selector.
type Kind uint8

// Selector kinds.
const (
	Point Kind = iota
	LinearSet
	AxisMask
	CoordinateSet
	Lazy
)

func (k Kind) String() string {
	switch k {
	case Point:
		return "point"
	case LinearSet:
		return "linear-set"
	case AxisMask:
		return "axis-mask"
	case CoordinateSet:
		return "coordinate-set"
	case Lazy:
		return "lazy"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Selector is an immutable skip selector.
type Selector struct {
	kind Kind
	rank int
	err  error

	point   position.Position
	offsets []int
	span    *span
	bits    *bitmap.Offsets
	coords  []position.Position
	mask    *Mask
	seq     position.Seq
}

type span struct{ start, stop int }

// Kind returns the variant tag.
func (s Selector) Kind() Kind { return s.kind }

// Rank returns the number of axes the selector spans.
func (s Selector) Rank() int { return s.rank }

// Err returns the construction error, if any.
func (s Selector) Err() error { return s.err }

// Mask returns the mask of an AxisMask selector, or nil.
func (s Selector) Mask() *Mask { return s.mask }

// Len returns the number of entries the caller supplied, before
// deduplication. Masks report their set cell count.
func (s Selector) Len() int {
	switch s.kind {
	case Point:
		return 1
	case LinearSet:
		switch {
		case s.span != nil:
			return max(0, s.span.stop-s.span.start)
		case s.bits != nil:
			return s.bits.Len()
		default:
			return len(s.offsets)
		}
	case CoordinateSet:
		return len(s.coords)
	case AxisMask:
		return s.mask.Count()
	case Lazy:
		return s.seq.Len()
	}
	return 0
}

func (s Selector) String() string {
	return fmt.Sprintf("%s[rank=%d]", s.kind, s.rank)
}

// At selects the single position p.
func At(p position.Position) Selector {
	return Selector{kind: Point, rank: p.Rank(), point: p}
}

// Offsets selects linear offsets. Order and duplicates do not matter.
func Offsets(offsets ...int) Selector {
	o := make([]int, len(offsets))
	copy(o, offsets)
	return Selector{kind: LinearSet, rank: 1, offsets: o}
}

// Range selects the linear offsets [start, stop).
func Range(start, stop int) Selector {
	return Selector{kind: LinearSet, rank: 1, span: &span{start: start, stop: stop}}
}

// FromBitmap selects the offsets held in rb without copying them. The
// caller must not mutate rb while the selector is in use.
func FromBitmap(rb *roaring64.Bitmap) Selector {
	return Selector{kind: LinearSet, rank: 1, bits: bitmap.Wrap(rb)}
}

// Coords selects a collection of positions. Collections whose positions are
// all linear or rank 1, and the empty collection, become a LinearSet.
// Mixed ranks are reported by Err.
func Coords(ps ...position.Position) Selector {
	if len(ps) == 0 {
		return Selector{kind: LinearSet, rank: 1}
	}
	rank := ps[0].Rank()
	for _, p := range ps[1:] {
		if p.Rank() != rank {
			return Selector{kind: CoordinateSet, rank: rank, err: fmt.Errorf("%w: %v and %v", ErrMixedRank, ps[0], p)}
		}
	}
	if rank == 1 {
		offsets := make([]int, len(ps))
		for i, p := range ps {
			offsets[i], _ = p.Offset()
		}
		return Selector{kind: LinearSet, rank: 1, offsets: offsets}
	}
	c := make([]position.Position, len(ps))
	copy(c, ps)
	return Selector{kind: CoordinateSet, rank: rank, coords: c}
}

// FromMask selects the true cells of m.
func FromMask(m *Mask) Selector {
	return Selector{kind: AxisMask, rank: m.Rank(), mask: m}
}

// FromSeq selects the positions of seq, which must already be sorted and
// duplicate-free in the traversal order it will be merged against. The
// sequence is composed lazily, never materialized.
func FromSeq(seq position.Seq) Selector {
	return Selector{kind: Lazy, rank: seq.Rank(), seq: seq}
}
