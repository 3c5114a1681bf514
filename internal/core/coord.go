package core

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// MaxDims is the largest coordinate arity supported by Coord.
const MaxDims = 6

// Coord is an immutable integer vector of fixed arity. It is comparable and
// can be used directly as a map key.
type Coord struct {
	n int
	v [MaxDims]int
}

// offsets[d] holds the 3^d-1 unit offsets of a d-dimensional Moore neighborhood.
var offsets [MaxDims + 1][]Coord

func init() {
	for d := 1; d <= MaxDims; d++ {
		offsets[d] = buildOffsets(d)
	}
}

func buildOffsets(d int) []Coord {
	total := 1
	for i := 0; i < d; i++ {
		total *= 3
	}
	out := make([]Coord, 0, total-1)
	for k := 0; k < total; k++ {
		c := Coord{n: d}
		rest := k
		zero := true
		for axis := 0; axis < d; axis++ {
			c.v[axis] = rest%3 - 1
			rest /= 3
			if c.v[axis] != 0 {
				zero = false
			}
		}
		if zero {
			continue
		}
		out = append(out, c)
	}
	return out
}

// New builds a coordinate from its components. It panics when called with no
// components or more than MaxDims.
func New(components ...int) Coord {
	if len(components) == 0 || len(components) > MaxDims {
		panic(fmt.Sprintf("core: coordinate arity %d out of range [1,%d]", len(components), MaxDims))
	}
	c := Coord{n: len(components)}
	copy(c.v[:], components)
	return c
}

// Zero returns the origin in d dimensions.
func Zero(d int) Coord {
	if d <= 0 || d > MaxDims {
		panic(fmt.Sprintf("core: coordinate arity %d out of range [1,%d]", d, MaxDims))
	}
	return Coord{n: d}
}

// Dims returns the arity.
func (c Coord) Dims() int { return c.n }

// At returns the component on the given axis.
func (c Coord) At(axis int) int { return c.v[axis] }

// With returns a copy of c whose component on axis is v.
func (c Coord) With(axis, v int) Coord {
	c.v[axis] = v
	return c
}

// Add returns the component-wise sum. Both operands must share an arity.
func (c Coord) Add(o Coord) Coord {
	for i := 0; i < c.n; i++ {
		c.v[i] += o.v[i]
	}
	return c
}

// Neighbors yields the 3^d-1 coordinates one step away on any combination of
// axes. The coordinate itself is never produced.
func (c Coord) Neighbors() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for _, off := range offsets[c.n] {
			if !yield(c.Add(off)) {
				return
			}
		}
	}
}

// Offsets returns the shared unit offsets of a d-dimensional Moore
// neighborhood. For d=2 these are the eight compass directions. The returned
// slice must not be modified.
func Offsets(d int) []Coord {
	if d <= 0 || d > MaxDims {
		return nil
	}
	return offsets[d]
}

func (c Coord) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < c.n; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(c.v[i]))
	}
	b.WriteByte(')')
	return b.String()
}
