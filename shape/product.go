package shape

import (
	"github.com/hupe1980/invert/position"
)

// Product is the cartesian product of axes, enumerated in a fixed order.
// A product of zero axes holds the single rank-0 point.
type Product struct {
	axes  []Axis
	order position.Order
	n     int
}

// NewProduct returns the product of axes traversed in order. The axes slice
// is copied. It panics if the position count overflows int.
func NewProduct(order position.Order, axes []Axis) *Product {
	a := make([]Axis, len(axes))
	copy(a, axes)
	n, err := Count(a)
	if err != nil {
		panic(err)
	}
	return &Product{axes: a, order: order, n: n}
}

// Axes returns a copy of the product's axes.
func (p *Product) Axes() []Axis {
	a := make([]Axis, len(p.axes))
	copy(a, p.axes)
	return a
}

// Order returns the traversal order.
func (p *Product) Order() position.Order { return p.order }

// Len implements position.Seq.
func (p *Product) Len() int { return p.n }

// Rank implements position.Seq.
func (p *Product) Rank() int { return len(p.axes) }

// Contains reports whether pos is a point of the product.
func (p *Product) Contains(pos position.Position) bool {
	if pos.Rank() != len(p.axes) {
		return false
	}
	for i, a := range p.axes {
		if !a.Contains(pos.Coord(i)) {
			return false
		}
	}
	return true
}

// At returns the position with the given ordinal in traversal order.
func (p *Product) At(ordinal int) position.Position {
	if ordinal < 0 || ordinal >= p.n {
		panic("shape: product ordinal out of range")
	}
	coords := make([]int, len(p.axes))
	if p.order == position.ColumnMajor {
		for i, a := range p.axes {
			coords[i] = a.Start + ordinal%a.Len()
			ordinal /= a.Len()
		}
	} else {
		for i := len(p.axes) - 1; i >= 0; i-- {
			a := p.axes[i]
			coords[i] = a.Start + ordinal%a.Len()
			ordinal /= a.Len()
		}
	}
	return position.Cart(coords...)
}

// Cursor implements position.Seq.
func (p *Product) Cursor() position.Cursor {
	return &productCursor{p: p}
}

// productCursor is an odometer over the product's axes.
type productCursor struct {
	p       *Product
	coords  []int
	started bool
	done    bool
}

func (c *productCursor) Next() (position.Position, bool) {
	if c.done || c.p.n == 0 {
		return position.Position{}, false
	}
	if !c.started {
		c.started = true
		c.coords = make([]int, len(c.p.axes))
		for i, a := range c.p.axes {
			c.coords[i] = a.Start
		}
		return position.Cart(c.coords...), true
	}
	if !c.advance() {
		c.done = true
		return position.Position{}, false
	}
	return position.Cart(c.coords...), true
}

// advance increments the odometer, carrying into the next slower axis.
func (c *productCursor) advance() bool {
	axes := c.p.axes
	step := func(i int) bool {
		c.coords[i]++
		if c.coords[i] < axes[i].Stop {
			return true
		}
		c.coords[i] = axes[i].Start
		return false
	}
	if c.p.order == position.ColumnMajor {
		for i := range axes {
			if step(i) {
				return true
			}
		}
		return false
	}
	for i := len(axes) - 1; i >= 0; i-- {
		if step(i) {
			return true
		}
	}
	return false
}
