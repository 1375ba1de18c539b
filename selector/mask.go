package selector

import (
	"errors"
	"fmt"

	"github.com/hupe1980/invert/internal/bitmap"
)

// ErrMaskSize is returned when mask values do not fill its dimensions.
var ErrMaskSize = errors.New("selector: mask size does not match dimensions")

// Mask is an N-dimensional boolean mask. Values are laid out in the
// canonical enumeration order of the region the mask covers.
type Mask struct {
	dims []int
	bits *bitmap.Ordinals
}

// NewMask returns a mask with the given dimensions. A mask with no
// dimensions is a rank-0 mask holding one value.
func NewMask(dims []int, values []bool) (*Mask, error) {
	n := 1
	for i, d := range dims {
		if d < 0 {
			return nil, fmt.Errorf("%w: negative dimension %d on axis %d", ErrMaskSize, d, i)
		}
		n *= d
	}
	if n != len(values) {
		return nil, fmt.Errorf("%w: dims %v need %d values, got %d", ErrMaskSize, dims, n, len(values))
	}
	bits, err := bitmap.NewOrdinals(values)
	if err != nil {
		return nil, err
	}
	d := make([]int, len(dims))
	copy(d, dims)
	return &Mask{dims: d, bits: bits}, nil
}

// Vector returns a rank-1 mask.
func Vector(values ...bool) *Mask {
	m, err := NewMask([]int{len(values)}, values)
	if err != nil {
		panic(err)
	}
	return m
}

// Rank returns the number of mask dimensions.
func (m *Mask) Rank() int { return len(m.dims) }

// Dims returns a copy of the mask dimensions.
func (m *Mask) Dims() []int {
	d := make([]int, len(m.dims))
	copy(d, m.dims)
	return d
}

// Cells returns the number of values in the mask.
func (m *Mask) Cells() int { return m.bits.Size() }

// Count returns the number of true values.
func (m *Mask) Count() int { return m.bits.Count() }

// Test reports whether the value at ordinal i is true.
func (m *Mask) Test(i int) bool { return m.bits.Test(i) }
