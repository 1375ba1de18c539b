package bitmap

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/invert/position"
)

// Offsets is a set of non-negative linear offsets backed by a 64-bit
// Roaring bitmap. It yields position.Lin values in ascending order.
type Offsets struct {
	rb *roaring64.Bitmap
}

// compile-time check
var _ position.Seq = (*Offsets)(nil)

// NewOffsets builds a set from offsets. It reports false if any offset is
// negative, since Roaring cannot hold it.
func NewOffsets(offsets []int) (*Offsets, bool) {
	vals := make([]uint64, len(offsets))
	for i, o := range offsets {
		if o < 0 {
			return nil, false
		}
		vals[i] = uint64(o)
	}
	rb := roaring64.New()
	rb.AddMany(vals)
	return &Offsets{rb: rb}, true
}

// Wrap adopts an existing bitmap. The caller must not mutate rb afterwards.
func Wrap(rb *roaring64.Bitmap) *Offsets {
	if rb == nil {
		rb = roaring64.New()
	}
	return &Offsets{rb: rb}
}

// IsEmpty returns true if the set is empty.
func (o *Offsets) IsEmpty() bool { return o.rb.IsEmpty() }

// Bounds returns the smallest and largest offset. ok is false for an empty set.
func (o *Offsets) Bounds() (lo, hi uint64, ok bool) {
	if o.rb.IsEmpty() {
		return 0, 0, false
	}
	return o.rb.Minimum(), o.rb.Maximum(), true
}

// Len implements position.Seq.
func (o *Offsets) Len() int { return int(o.rb.GetCardinality()) }

// Rank implements position.Seq.
func (o *Offsets) Rank() int { return 1 }

// Cursor implements position.Seq.
func (o *Offsets) Cursor() position.Cursor {
	return &offsetsCursor{it: o.rb.Iterator()}
}

type offsetsCursor struct {
	it roaring64.IntPeekable64
}

func (c *offsetsCursor) Next() (position.Position, bool) {
	if !c.it.HasNext() {
		return position.Position{}, false
	}
	return position.Lin(int(c.it.Next())), true
}
