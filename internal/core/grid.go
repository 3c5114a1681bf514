package core

import "slices"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// In reports whether (x, y) lies inside the grid. The grid does not wrap.
func (g *ByteGrid) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.W && y < g.H
}

// At returns the value at (x, y). The coordinates must be inside the grid.
func (g *ByteGrid) At(x, y int) uint8 { return g.data[y*g.W+x] }

// Set stores v at (x, y). The coordinates must be inside the grid.
func (g *ByteGrid) Set(x, y int, v uint8) { g.data[y*g.W+x] = v }

// Clone returns a deep copy.
func (g *ByteGrid) Clone() *ByteGrid {
	return &ByteGrid{W: g.W, H: g.H, data: slices.Clone(g.data)}
}

// Equal reports whether both grids have the same shape and contents.
func (g *ByteGrid) Equal(o *ByteGrid) bool {
	return g.W == o.W && g.H == o.H && slices.Equal(g.data, o.data)
}

// Count returns how many cells hold v.
func (g *ByteGrid) Count(v uint8) int {
	n := 0
	for _, c := range g.data {
		if c == v {
			n++
		}
	}
	return n
}
