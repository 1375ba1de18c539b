package selector

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/hupe1980/invert/internal/bitmap"
	"github.com/hupe1980/invert/position"
)

// ErrMaskMismatch is returned when a mask does not cover the pick domain
// cell for cell.
var ErrMaskMismatch = errors.New("selector: mask does not match pick domain")

// ErrOffsetOverflow is returned when a bitmap holds an offset that does not
// fit in an int.
var ErrOffsetOverflow = errors.New("selector: offset overflows int")

// Domain is the part of a pick domain normalization depends on.
type Domain interface {
	Order() position.Order
	Rank() int
	Len() int
	// At returns the position with the given ordinal in traversal order.
	At(ordinal int) position.Position
}

// Extent is the offset range covered by a linear skip set.
type Extent struct {
	Lo, Hi int
	Empty  bool
}

// Skips is a normalized skip selector: sorted in the pick domain's traversal
// order with duplicates removed.
type Skips struct {
	seq    position.Seq
	kind   Kind
	order  position.Order
	picks  Domain
	mask   *Mask
	extent *Extent
	// trusted is false for caller-supplied lazy sequences whose order has
	// not been checked.
	trusted bool
}

// compile-time check
var _ position.Seq = (*Skips)(nil)

// Cursor implements position.Seq.
func (s *Skips) Cursor() position.Cursor { return s.seq.Cursor() }

// Len implements position.Seq.
func (s *Skips) Len() int { return s.seq.Len() }

// Rank implements position.Seq.
func (s *Skips) Rank() int { return s.seq.Rank() }

// Kind returns the kind of the selector the skips came from.
func (s *Skips) Kind() Kind { return s.kind }

// Order returns the traversal order the skips are sorted in.
func (s *Skips) Order() position.Order { return s.order }

// Mask returns the source mask of AxisMask skips, or nil.
func (s *Skips) Mask() *Mask { return s.mask }

// Extent returns the offset range of linear skips when it is known without
// a scan.
func (s *Skips) Extent() (Extent, bool) {
	if s.extent == nil {
		return Extent{}, false
	}
	return *s.extent, true
}

// Trusted reports whether the skips are known to be sorted and unique.
// Lazy sequences supplied by callers are not.
func (s *Skips) Trusted() bool { return s.trusted }

// Normalize sorts sel into the traversal order of picks and removes
// duplicates. Points, ranges, masks and lazy sequences are already ordered
// and are returned without copying.
//
// Normalizing skips that were produced by Normalize against an equal pick
// domain is a no-op. Skips built for another domain are treated as an
// unchecked lazy sequence.
func Normalize(sel Selector, picks Domain) (*Skips, error) {
	if sel.err != nil {
		return nil, sel.err
	}
	order := picks.Order()
	out := &Skips{kind: sel.kind, order: order, picks: picks, trusted: true}

	switch sel.kind {
	case Point:
		out.seq = position.NewSlice(sel.rank, []position.Position{sel.point})
	case LinearSet:
		switch {
		case sel.span != nil:
			r := newRangeSeq(sel.span.start, sel.span.stop)
			out.seq = r
			if r.Len() > 0 {
				out.extent = &Extent{Lo: r.start, Hi: r.stop - 1}
			} else {
				out.extent = &Extent{Empty: true}
			}
		case sel.bits != nil:
			ext, err := bitsExtent(sel.bits)
			if err != nil {
				return nil, err
			}
			out.seq = sel.bits
			out.extent = ext
		default:
			if bits, ok := bitmap.NewOffsets(sel.offsets); ok {
				out.seq = bits
				out.extent, _ = bitsExtent(bits)
				break
			}
			offsets := slices.Clone(sel.offsets)
			slices.Sort(offsets)
			offsets = slices.Compact(offsets)
			items := make([]position.Position, len(offsets))
			for i, o := range offsets {
				items[i] = position.Lin(o)
			}
			out.seq = position.NewSlice(1, items)
			out.extent = &Extent{Lo: offsets[0], Hi: offsets[len(offsets)-1]}
		}
	case CoordinateSet:
		items := slices.Clone(sel.coords)
		slices.SortFunc(items, order.Comparator())
		items = slices.CompactFunc(items, position.Equal)
		out.seq = position.NewSlice(sel.rank, items)
	case AxisMask:
		if sel.mask.Rank() != picks.Rank() || sel.mask.Cells() != picks.Len() {
			return nil, fmt.Errorf("%w: mask dims %v against %d-d domain of %d positions",
				ErrMaskMismatch, sel.mask.dims, picks.Rank(), picks.Len())
		}
		out.mask = sel.mask
		out.seq = &maskSeq{mask: sel.mask, picks: picks}
	case Lazy:
		if prior, ok := sel.seq.(*Skips); ok && sameDomain(prior.picks, picks) {
			return prior, nil
		}
		out.seq = sel.seq
		out.trusted = false
	default:
		return nil, fmt.Errorf("selector: unknown kind %v", sel.kind)
	}
	return out, nil
}

func bitsExtent(b *bitmap.Offsets) (*Extent, error) {
	lo, hi, ok := b.Bounds()
	if !ok {
		return &Extent{Empty: true}, nil
	}
	if hi > math.MaxInt {
		return nil, fmt.Errorf("%w: %d", ErrOffsetOverflow, hi)
	}
	return &Extent{Lo: int(lo), Hi: int(hi)}, nil
}

// sameDomain reports whether a and b enumerate the same positions in the
// same order. Pick domains are products of contiguous axes, so the first and
// last position fix them.
func sameDomain(a, b Domain) bool {
	if a == nil || b == nil {
		return false
	}
	if a.Order() != b.Order() || a.Rank() != b.Rank() || a.Len() != b.Len() {
		return false
	}
	n := a.Len()
	if n == 0 {
		return true
	}
	return position.Equal(a.At(0), b.At(0)) && position.Equal(a.At(n-1), b.At(n-1))
}

// rangeSeq yields Lin(start) .. Lin(stop-1).
type rangeSeq struct{ start, stop int }

func newRangeSeq(start, stop int) *rangeSeq {
	if stop < start {
		stop = start
	}
	return &rangeSeq{start: start, stop: stop}
}

func (r *rangeSeq) Len() int  { return r.stop - r.start }
func (r *rangeSeq) Rank() int { return 1 }

func (r *rangeSeq) Cursor() position.Cursor {
	return &rangeCursor{next: r.start, stop: r.stop}
}

type rangeCursor struct{ next, stop int }

func (c *rangeCursor) Next() (position.Position, bool) {
	if c.next >= c.stop {
		return position.Position{}, false
	}
	p := position.Lin(c.next)
	c.next++
	return p, true
}

// maskSeq yields the pick domain positions whose mask cell is set. The set
// ordinals come out of the bitmap ascending, so the positions are in
// traversal order.
type maskSeq struct {
	mask  *Mask
	picks Domain
}

func (m *maskSeq) Len() int  { return m.mask.Count() }
func (m *maskSeq) Rank() int { return m.picks.Rank() }

func (m *maskSeq) Cursor() position.Cursor {
	return &maskCursor{next: m.mask.bits.Iterator(), picks: m.picks}
}

type maskCursor struct {
	next  func() (int, bool)
	picks Domain
}

func (c *maskCursor) Next() (position.Position, bool) {
	i, ok := c.next()
	if !ok {
		return position.Position{}, false
	}
	return c.picks.At(i), true
}
