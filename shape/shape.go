// Package shape describes the array shape contract the resolver consumes:
// per-axis index ranges, rank, a bounds predicate, and a canonical
// enumeration of positions.
package shape

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/invert/position"
)

// Axis is the half-open index range [Start, Stop) of one array dimension.
type Axis struct {
	Start int
	Stop  int
}

// Unit is the single-element axis synthesized for missing dimensions.
var Unit = Axis{Start: 0, Stop: 1}

// ErrTooLarge is returned when the number of positions of a set of axes
// does not fit in an int.
var ErrTooLarge = errors.New("shape: position count overflows int")

// Count returns the number of positions in the product of axes. A product
// of zero axes holds one position.
func Count(axes []Axis) (int, error) {
	n := 1
	for i, a := range axes {
		if a.Stop > a.Start && a.Stop-a.Start < 0 {
			return 0, fmt.Errorf("%w: axis %d spans %v", ErrTooLarge, i, a)
		}
		if a.Len() == 0 {
			return 0, nil
		}
	}
	for _, a := range axes {
		l := a.Len()
		if n > math.MaxInt/l {
			return 0, fmt.Errorf("%w: axes %v", ErrTooLarge, axes)
		}
		n *= l
	}
	return n, nil
}

// Len returns the number of indices on the axis.
func (a Axis) Len() int {
	if a.Stop <= a.Start {
		return 0
	}
	return a.Stop - a.Start
}

// Contains reports whether i lies on the axis.
func (a Axis) Contains(i int) bool {
	return i >= a.Start && i < a.Stop
}

// Equal reports whether a and b enumerate the same indices.
func (a Axis) Equal(b Axis) bool {
	if a.Len() == 0 && b.Len() == 0 {
		return true
	}
	return a == b
}

func (a Axis) String() string {
	return fmt.Sprintf("%d:%d", a.Start, a.Stop)
}

// Shape is the view of an array the inverted index needs.
type Shape interface {
	Rank() int
	Axes() []Axis
	// Len returns the number of positions in the array.
	Len() int
	Order() position.Order
	// Linear returns the axis of the flattened traversal.
	Linear() Axis
	InBounds(p position.Position) bool
	// Positions enumerates every cartesian position in canonical order.
	Positions() position.Seq
}
