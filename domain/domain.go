// Package domain builds pick domains: the uninverted candidate positions a
// skip selector of a given rank implies, taken from an array's remaining
// axes.
package domain

import (
	"fmt"

	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/shape"
)

// Domain is an ordered, finite pick domain.
//
// A rank-1 domain yields linear positions along its axis. Any other rank
// yields cartesian positions; rank 0 yields the single point Cart().
type Domain struct {
	prod        *shape.Product
	synthesized int
}

// compile-time check
var _ position.Seq = (*Domain)(nil)

// New returns the pick domain spanning axes in the given order.
func New(order position.Order, axes ...shape.Axis) *Domain {
	return &Domain{prod: shape.NewProduct(order, axes)}
}

// Split takes the axes a selector of the given rank consumes from the front
// of axes and returns the resulting domain plus the axes left over.
//
// Rank 0 consumes nothing. When fewer than rank axes remain, the missing
// ones are synthesized as shape.Unit.
func Split(axes []shape.Axis, rank int, order position.Order) (*Domain, []shape.Axis) {
	if rank < 0 {
		panic(fmt.Sprintf("domain: negative rank %d", rank))
	}
	take := min(rank, len(axes))
	spanned := make([]shape.Axis, rank)
	copy(spanned, axes[:take])
	for i := take; i < rank; i++ {
		spanned[i] = shape.Unit
	}
	d := &Domain{
		prod:        shape.NewProduct(order, spanned),
		synthesized: rank - take,
	}
	rest := make([]shape.Axis, len(axes)-take)
	copy(rest, axes[take:])
	return d, rest
}

// Rank implements position.Seq.
func (d *Domain) Rank() int { return d.prod.Rank() }

// Len implements position.Seq.
func (d *Domain) Len() int { return d.prod.Len() }

// Order returns the traversal order.
func (d *Domain) Order() position.Order { return d.prod.Order() }

// Axes returns a copy of the spanned axes, synthesized ones included.
func (d *Domain) Axes() []shape.Axis { return d.prod.Axes() }

// Dims returns the length of every spanned axis.
func (d *Domain) Dims() []int {
	axes := d.prod.Axes()
	dims := make([]int, len(axes))
	for i, a := range axes {
		dims[i] = a.Len()
	}
	return dims
}

// Synthesized returns how many trailing axes were synthesized by Split.
func (d *Domain) Synthesized() int { return d.synthesized }

// Contains reports whether p is a point of the domain.
func (d *Domain) Contains(p position.Position) bool {
	if d.Rank() == 1 {
		off, ok := p.Offset()
		return ok && d.prod.Axes()[0].Contains(off)
	}
	return d.prod.Contains(p)
}

// At returns the position with the given ordinal. It exists for mapping
// mask cells onto positions; inverted iterators do not expose it.
func (d *Domain) At(ordinal int) position.Position {
	p := d.prod.At(ordinal)
	if d.Rank() == 1 {
		return position.Lin(p.Coord(0))
	}
	return p
}

// Cursor implements position.Seq.
func (d *Domain) Cursor() position.Cursor {
	c := d.prod.Cursor()
	if d.Rank() == 1 {
		return linearCursor{c}
	}
	return c
}

func (d *Domain) String() string {
	return fmt.Sprintf("domain%v", d.prod.Axes())
}

type linearCursor struct{ c position.Cursor }

func (l linearCursor) Next() (position.Position, bool) {
	p, ok := l.c.Next()
	if !ok {
		return p, false
	}
	return position.Lin(p.Coord(0)), true
}
