// Package position defines the two ways a location in an array can be named:
// a linear offset into the flattened traversal, or a cartesian tuple of
// per-axis coordinates.
//
// A linear position and a rank-1 cartesian position naming the same offset
// are equal:
//
//	position.Equal(position.Lin(2), position.Cart(2)) // true
//
// Ordered sequences of positions are expressed through Seq, a restartable
// sequence that hands out independent cursors. Use All to range over one:
//
//	for p := range position.All(seq) {
//	    fmt.Println(p)
//	}
package position
