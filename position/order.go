package position

import "cmp"

// Order is a canonical traversal order over cartesian positions.
type Order uint8

const (
	// RowMajor varies the last axis fastest.
	RowMajor Order = iota
	// ColumnMajor varies the first axis fastest.
	ColumnMajor
)

func (o Order) String() string {
	if o == ColumnMajor {
		return "column-major"
	}
	return "row-major"
}

// Compare orders a and b as they are visited by a traversal in order o.
// It returns -1, 0 or +1. Compare(o, a, b) == 0 exactly when Equal(a, b).
//
// Positions of different rank are ordered by rank first.
func Compare(o Order, a, b Position) int {
	ra, rb := a.Rank(), b.Rank()
	if ra != rb {
		return cmp.Compare(ra, rb)
	}
	if o == ColumnMajor {
		for i := ra - 1; i >= 0; i-- {
			if c := cmp.Compare(a.Coord(i), b.Coord(i)); c != 0 {
				return c
			}
		}
		return 0
	}
	for i := range ra {
		if c := cmp.Compare(a.Coord(i), b.Coord(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Comparator returns Compare bound to o, for use with slices.SortFunc.
func (o Order) Comparator() func(a, b Position) int {
	return func(a, b Position) int { return Compare(o, a, b) }
}
