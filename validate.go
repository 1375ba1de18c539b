package invert

import (
	"slices"

	"github.com/hupe1980/invert/domain"
	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/selector"
	"github.com/hupe1980/invert/shape"
)

// validator checks one inverted index against the array before its
// iterator is built. The merge in package iterator is only correct for
// skips that are a sorted, duplicate-free subset of the pick domain.
type validator struct {
	arg    int
	shape  shape.Shape
	linear bool
	// full is set when the pick domain is known to cover the whole array,
	// so skip positions are array positions too.
	full bool
}

// checkShape verifies that the selector fits the pick domain's layout.
func (v validator) checkShape(sel selector.Selector, picks *domain.Domain) error {
	if m := sel.Mask(); m != nil && !slices.Equal(m.Dims(), picks.Dims()) {
		return &ShapeMismatchError{
			Arg:      v.arg,
			Expected: picks.Dims(),
			Actual:   m.Dims(),
			Reason:   "mask dimensions",
		}
	}
	return nil
}

// checkCoverage verifies that a sole argument's pick domain enumerates the
// whole array: every axis it leaves unspanned must have length 1.
func (v validator) checkCoverage(picks *domain.Domain, rest []shape.Axis) error {
	if v.linear && picks.Rank() == 1 && picks.Len() != v.shape.Len() {
		return &ShapeMismatchError{
			Arg:      v.arg,
			Expected: []int{v.shape.Len()},
			Actual:   []int{picks.Len()},
			Reason:   "linear traversal length",
		}
	}
	for _, a := range rest {
		if a.Len() != 1 {
			return &ShapeMismatchError{
				Arg:      v.arg,
				Expected: axisDims(v.shape.Axes()),
				Actual:   picks.Dims(),
				Reason:   "selector does not span the array",
			}
		}
	}
	return nil
}

// checkBounds verifies every skip lies in the pick domain. Unchecked lazy
// sequences are also verified to be strictly increasing in traversal order.
func (v validator) checkBounds(skips *selector.Skips, picks *domain.Domain) error {
	if skips.Kind() == selector.AxisMask {
		// Mask cells map one to one onto picks.
		return nil
	}
	if ext, ok := skips.Extent(); ok && picks.Rank() == 1 {
		if ext.Empty {
			return nil
		}
		for _, off := range [2]int{ext.Lo, ext.Hi} {
			if p := position.Lin(off); !v.contains(picks, p) {
				return v.outOfBounds(p, picks)
			}
		}
		return nil
	}

	order := picks.Order()
	var prev position.Position
	first := true
	for p := range position.All(skips) {
		if p.Rank() != picks.Rank() {
			return &ShapeMismatchError{
				Arg:      v.arg,
				Expected: []int{picks.Rank()},
				Actual:   []int{p.Rank()},
				Reason:   "skip position rank",
			}
		}
		if !v.contains(picks, p) {
			return v.outOfBounds(p, picks)
		}
		if !skips.Trusted() && !first && position.Compare(order, prev, p) >= 0 {
			return &ShapeMismatchError{
				Arg:    v.arg,
				Reason: "skip sequence is not strictly increasing in " + order.String() + " order",
			}
		}
		prev, first = p, false
	}
	return nil
}

func (v validator) contains(picks *domain.Domain, p position.Position) bool {
	if !picks.Contains(p) {
		return false
	}
	if !v.full {
		return true
	}
	if off, ok := p.Offset(); ok && v.linear {
		// Rank-1 positions in a linear traversal are offsets.
		p = position.Lin(off)
	}
	return v.shape.InBounds(p)
}

func (v validator) outOfBounds(p position.Position, picks *domain.Domain) error {
	return &OutOfBoundsError{Arg: v.arg, Position: p, Axes: picks.Axes()}
}

func axisDims(axes []shape.Axis) []int {
	dims := make([]int, len(axes))
	for i, a := range axes {
		dims[i] = a.Len()
	}
	return dims
}
