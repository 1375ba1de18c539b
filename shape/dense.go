package shape

import (
	"fmt"

	"github.com/hupe1980/invert/position"
)

// Dense is a Shape with contiguous axes.
type Dense struct {
	axes  []Axis
	order position.Order
	n     int
}

// compile-time check
var _ Shape = (*Dense)(nil)

// New returns a zero-based shape with the given dimension lengths. It panics
// on a negative dimension or if the position count overflows int.
func New(order position.Order, dims ...int) *Dense {
	axes := make([]Axis, len(dims))
	for i, d := range dims {
		if d < 0 {
			panic(fmt.Sprintf("shape: negative dimension %d on axis %d", d, i))
		}
		axes[i] = Axis{Start: 0, Stop: d}
	}
	return newDense(order, axes)
}

// WithAxes returns a shape over explicit, possibly offset, axes. It panics
// if the position count overflows int.
func WithAxes(order position.Order, axes ...Axis) *Dense {
	a := make([]Axis, len(axes))
	copy(a, axes)
	return newDense(order, a)
}

func newDense(order position.Order, axes []Axis) *Dense {
	n, err := Count(axes)
	if err != nil {
		panic(err)
	}
	return &Dense{axes: axes, order: order, n: n}
}

// Rank implements Shape.
func (d *Dense) Rank() int { return len(d.axes) }

// Axes implements Shape. The returned slice is a copy.
func (d *Dense) Axes() []Axis {
	a := make([]Axis, len(d.axes))
	copy(a, d.axes)
	return a
}

// Dims returns the length of every axis.
func (d *Dense) Dims() []int {
	dims := make([]int, len(d.axes))
	for i, a := range d.axes {
		dims[i] = a.Len()
	}
	return dims
}

// Len implements Shape. A rank-0 shape has one position.
func (d *Dense) Len() int { return d.n }

// Order implements Shape.
func (d *Dense) Order() position.Order { return d.order }

// Linear implements Shape. A vector is traversed along its own axis; any
// other rank is flattened onto [0, Len).
func (d *Dense) Linear() Axis {
	if len(d.axes) == 1 {
		return d.axes[0]
	}
	return Axis{Start: 0, Stop: d.Len()}
}

// InBounds implements Shape.
//
// Linear positions are checked against Linear. Cartesian positions may carry
// trailing coordinates beyond the array rank as long as they are 0, the sole
// index of a synthesized unit axis.
func (d *Dense) InBounds(p position.Position) bool {
	if p.IsLinear() {
		return d.Linear().Contains(p.Coord(0))
	}
	rank := p.Rank()
	if rank < len(d.axes) {
		for _, a := range d.axes[rank:] {
			if a.Len() != 1 {
				return false
			}
		}
	}
	for i := range rank {
		c := p.Coord(i)
		if i >= len(d.axes) {
			if c != Unit.Start {
				return false
			}
			continue
		}
		if !d.axes[i].Contains(c) {
			return false
		}
	}
	return true
}

// Positions implements Shape.
func (d *Dense) Positions() position.Seq {
	return NewProduct(d.order, d.axes)
}

func (d *Dense) String() string {
	return fmt.Sprintf("%v(%s)", d.axes, d.order)
}
