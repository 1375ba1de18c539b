// Package invert implements inverted indices for array indexing.
//
// An inverted index names the positions of an array that are NOT selected:
// given a skip selector, it lazily yields every remaining position of the
// index space the selector spans, in the array's canonical order.
//
// # Quick Start
//
//	s := shape.New(position.RowMajor, 5)
//	res, err := invert.Resolve(s, invert.NotOffsets(1, 3))
//	if err != nil {
//	    return err
//	}
//	for p := range res.Selections()[0].All() {
//	    fmt.Println(p) // 0, 2, 4
//	}
//
// # Argument Lists
//
// Resolve takes a full index argument list, as an array library would see it
// at its indexing entry point. Inverted indices are replaced by a Selection
// (an iterator over the remaining positions); every other argument passes
// through, and Resolved.Axes reports which array axes each argument spans.
//
// A sole argument whose selector has rank 1 or less indexes the flattened
// traversal of the array. A sole argument of higher rank indexes the array
// per axis.
//
// # Errors
//
// All validation is eager: Resolve returns an error before any position is
// produced. Use errors.Is with ErrOutOfBounds, ErrShapeMismatch or
// ErrAmbiguousSelector, or errors.As with the typed errors for details.
package invert
