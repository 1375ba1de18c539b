package invert

import (
	"errors"
	"fmt"

	"github.com/hupe1980/invert/position"
	"github.com/hupe1980/invert/shape"
)

var (
	// ErrOutOfBounds is returned when a skip position lies outside the array.
	ErrOutOfBounds = errors.New("position out of bounds")

	// ErrShapeMismatch is returned when a selector's pick domain cannot be
	// reconciled with the array's canonical enumeration.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrAmbiguousSelector is returned when a selector's rank cannot be
	// determined, e.g. a collection mixing positions of different rank.
	ErrAmbiguousSelector = errors.New("ambiguous selector kind")
)

// OutOfBoundsError reports a skip position outside the axes it indexes.
//
// errors.Is(err, ErrOutOfBounds) reports true for it.
type OutOfBoundsError struct {
	// Arg is the index of the offending argument.
	Arg      int
	Position position.Position
	Axes     []shape.Axis
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("argument %d: position %v out of bounds for axes %v", e.Arg, e.Position, e.Axes)
}

// Is implements errors.Is.
func (e *OutOfBoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// ShapeMismatchError reports a selector whose dimensionality or order does
// not match the array.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ShapeMismatchError struct {
	Arg      int
	Expected []int
	Actual   []int
	Reason   string
	cause    error
}

func (e *ShapeMismatchError) Error() string {
	if e.Expected != nil || e.Actual != nil {
		return fmt.Sprintf("argument %d: shape mismatch: %s: expected %v, got %v", e.Arg, e.Reason, e.Expected, e.Actual)
	}
	return fmt.Sprintf("argument %d: shape mismatch: %s", e.Arg, e.Reason)
}

// Is implements errors.Is.
func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

func (e *ShapeMismatchError) Unwrap() error { return e.cause }
