package bitmap

import (
	"errors"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// ErrTooLarge is returned when a mask has more cells than a 32-bit bitmap
// can address.
var ErrTooLarge = errors.New("bitmap: mask exceeds 2^32 cells")

// Ordinals records which cells of a mask are set, by ordinal.
type Ordinals struct {
	rb *roaring.Bitmap
	n  int
}

// NewOrdinals records the true entries of values.
func NewOrdinals(values []bool) (*Ordinals, error) {
	if uint64(len(values)) > math.MaxUint32 {
		return nil, ErrTooLarge
	}
	rb := roaring.New()
	for i, v := range values {
		if v {
			rb.Add(uint32(i))
		}
	}
	rb.RunOptimize()
	return &Ordinals{rb: rb, n: len(values)}, nil
}

// Size returns the number of cells, set or not.
func (o *Ordinals) Size() int { return o.n }

// Count returns the number of set cells.
func (o *Ordinals) Count() int { return int(o.rb.GetCardinality()) }

// Test reports whether cell i is set.
func (o *Ordinals) Test(i int) bool {
	if i < 0 || i >= o.n {
		return false
	}
	return o.rb.Contains(uint32(i))
}

// Iterator returns the set ordinals in ascending order.
func (o *Ordinals) Iterator() func() (int, bool) {
	it := o.rb.Iterator()
	return func() (int, bool) {
		if !it.HasNext() {
			return 0, false
		}
		return int(it.Next()), true
	}
}
