package lattice

import (
	"iter"

	"cellgen/internal/core"
)

// Bounds is an axis-aligned box with inclusive Min and Max corners.
type Bounds struct {
	Min, Max core.Coord
}

// Dims returns the arity of the box.
func (b Bounds) Dims() int { return b.Min.Dims() }

// Expand grows the box by one unit at both ends of every axis. A cell outside
// the box is at least two steps from any active cell inside the previous box,
// so growing by the neighbor reach keeps every possible birth in view.
func (b Bounds) Expand() Bounds {
	lo, hi := b.Min, b.Max
	for axis := 0; axis < b.Dims(); axis++ {
		lo = lo.With(axis, lo.At(axis)-1)
		hi = hi.With(axis, hi.At(axis)+1)
	}
	return Bounds{Min: lo, Max: hi}
}

// Contains reports whether c lies inside the box.
func (b Bounds) Contains(c core.Coord) bool {
	if c.Dims() != b.Dims() {
		return false
	}
	for axis := 0; axis < b.Dims(); axis++ {
		if v := c.At(axis); v < b.Min.At(axis) || v > b.Max.At(axis) {
			return false
		}
	}
	return true
}

// Volume returns the number of coordinates inside the box.
func (b Bounds) Volume() int {
	v := 1
	for axis := 0; axis < b.Dims(); axis++ {
		span := b.Max.At(axis) - b.Min.At(axis) + 1
		if span <= 0 {
			return 0
		}
		v *= span
	}
	return v
}

// Each yields every coordinate inside the box, first axis varying fastest.
func (b Bounds) Each() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		if b.Volume() == 0 {
			return
		}
		d := b.Dims()
		c := b.Min
		for {
			if !yield(c) {
				return
			}
			axis := 0
			for ; axis < d; axis++ {
				if c.At(axis) < b.Max.At(axis) {
					c = c.With(axis, c.At(axis)+1)
					break
				}
				c = c.With(axis, b.Min.At(axis))
			}
			if axis == d {
				return
			}
		}
	}
}
