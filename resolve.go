package invert

import (
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/invert/domain"
	"github.com/hupe1980/invert/iterator"
	"github.com/hupe1980/invert/selector"
	"github.com/hupe1980/invert/shape"
)

// Resolver turns index argument lists containing inverted indices into
// lists of lazy position iterators. A Resolver holds no per-call state and
// is safe for concurrent use.
type Resolver struct {
	opts options
}

// NewResolver creates a Resolver.
func NewResolver(optFns ...Option) *Resolver {
	return &Resolver{opts: applyOptions(optFns)}
}

var defaultResolver = NewResolver()

// Resolve resolves args against s with the default Resolver.
func Resolve(s shape.Shape, args ...Arg) (*Resolved, error) {
	return defaultResolver.Resolve(s, args...)
}

// Resolve resolves args against s.
//
// Every InvertedIndex in args is replaced by a *Selection whose pick domain
// is taken from the axes not yet spanned by the arguments before it. All
// validation happens here; a returned Selection never fails mid-traversal.
func (r *Resolver) Resolve(s shape.Shape, args ...Arg) (*Resolved, error) {
	start := time.Now()
	res, err := r.resolve(s, args)
	r.opts.metricsCollector.RecordResolve(len(args), time.Since(start), err)
	r.opts.logger.LogResolve(len(args), res != nil && res.Linear, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolver) resolve(s shape.Shape, args []Arg) (*Resolved, error) {
	res := &Resolved{
		Args: make([]Arg, len(args)),
		Axes: make([][]shape.Axis, len(args)),
	}
	if len(args) == 0 {
		return res, nil
	}

	// A sole argument spanning at most one axis indexes the flattened
	// traversal; anything wider is matched axis by axis.
	sole := len(args) == 1
	res.Linear = sole && args[0].NumAxes() <= 1

	var axes []shape.Axis
	if res.Linear {
		axes = []shape.Axis{s.Linear()}
	} else {
		axes = s.Axes()
	}

	for i, a := range args {
		inv, ok := a.(InvertedIndex)
		if !ok {
			picks, rest := domain.Split(axes, a.NumAxes(), s.Order())
			res.Args[i] = a
			res.Axes[i] = picks.Axes()
			axes = rest
			continue
		}

		sel, rest, err := r.resolveInverted(s, i, inv.sel, axes, sole, res.Linear)
		if err != nil {
			return nil, err
		}
		res.Args[i] = sel
		res.Axes[i] = sel.domain.Axes()
		axes = rest
	}
	return res, nil
}

// resolveInverted runs the pipeline for one inverted index: split off the
// pick domain, validate its shape, normalize the skips, bounds-check them,
// and wrap both in an iterator.
func (r *Resolver) resolveInverted(
	s shape.Shape, arg int, sel selector.Selector, axes []shape.Axis, sole, linear bool,
) (*Selection, []shape.Axis, error) {
	logger := r.opts.logger.WithArg(arg).WithSelector(sel)

	if err := sel.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: argument %d: %w", ErrAmbiguousSelector, arg, err)
	}

	picks, rest := domain.Split(axes, sel.Rank(), s.Order())

	v := validator{arg: arg, shape: s, linear: linear}
	if err := v.checkShape(sel, picks); err != nil {
		return nil, nil, err
	}
	if sole && r.opts.strictCoverage {
		if err := v.checkCoverage(picks, rest); err != nil {
			return nil, nil, err
		}
		v.full = true
	}

	skips, err := selector.Normalize(sel, picks)
	if errors.Is(err, selector.ErrOffsetOverflow) {
		return nil, nil, fmt.Errorf("%w: argument %d: %w", ErrOutOfBounds, arg, err)
	}
	if err != nil {
		return nil, nil, &ShapeMismatchError{Arg: arg, Reason: "normalize", cause: err}
	}
	if err := v.checkBounds(skips, picks); err != nil {
		return nil, nil, err
	}

	it := iterator.New(skips, picks)
	r.opts.metricsCollector.RecordSelection(picks.Len(), skips.Len())
	logger.LogSelection(picks.Len(), skips.Len(), it.Len())

	return &Selection{Inverted: it, domain: picks}, rest, nil
}
