package position

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes the two position representations.
type Kind uint8

const (
	// Linear is a single offset into the flattened traversal.
	Linear Kind = iota
	// Cartesian is a tuple of per-axis coordinates.
	Cartesian
)

func (k Kind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Cartesian:
		return "cartesian"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Position is an immutable array location.
//
// The zero value is the linear position 0.
type Position struct {
	kind   Kind
	offset int
	coords []int
}

// Lin returns the linear position at offset i.
func Lin(i int) Position {
	return Position{kind: Linear, offset: i}
}

// Cart returns the cartesian position with the given coordinates.
// Cart() is the rank-0 point.
func Cart(coords ...int) Position {
	c := make([]int, len(coords))
	copy(c, coords)
	return Position{kind: Cartesian, coords: c}
}

// Kind returns the representation of p.
func (p Position) Kind() Kind { return p.kind }

// IsLinear reports whether p is a linear offset.
func (p Position) IsLinear() bool { return p.kind == Linear }

// Rank returns the number of axes p spans. Linear positions have rank 1.
func (p Position) Rank() int {
	if p.kind == Linear {
		return 1
	}
	return len(p.coords)
}

// Offset returns the linear offset of p. For a cartesian position it returns
// the sole coordinate of a rank-1 tuple and false for any other rank.
func (p Position) Offset() (int, bool) {
	if p.kind == Linear {
		return p.offset, true
	}
	if len(p.coords) == 1 {
		return p.coords[0], true
	}
	return 0, false
}

// Coord returns the coordinate on axis i. Linear positions expose their
// offset as axis 0.
func (p Position) Coord(i int) int {
	if p.kind == Linear {
		if i != 0 {
			panic(fmt.Sprintf("position: axis %d out of range for linear position", i))
		}
		return p.offset
	}
	return p.coords[i]
}

// Coords returns a copy of the per-axis coordinates of p.
func (p Position) Coords() []int {
	if p.kind == Linear {
		return []int{p.offset}
	}
	c := make([]int, len(p.coords))
	copy(c, p.coords)
	return c
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if p.kind == Linear {
		return strconv.Itoa(p.offset)
	}
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(c))
	}
	if len(p.coords) == 1 {
		sb.WriteByte(',')
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether a and b name the same location.
//
// A linear position equals a cartesian one only if the cartesian position
// has rank 1 and its coordinate equals the offset.
func Equal(a, b Position) bool {
	if a.kind == Linear && b.kind == Linear {
		return a.offset == b.offset
	}
	if a.Rank() != b.Rank() {
		return false
	}
	for i := range a.Rank() {
		if a.Coord(i) != b.Coord(i) {
			return false
		}
	}
	return true
}
