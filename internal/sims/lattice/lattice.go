// Package lattice evolves an unbounded N-dimensional lattice of active cells
// under a life-like rule over the full Moore neighborhood.
package lattice

import (
	"fmt"
	"iter"

	"cellgen/internal/core"
)

// Cell is the state of one lattice point. Only active points are stored.
type Cell uint8

const (
	Inactive Cell = iota
	Active
)

// World is a sparse generation snapshot: the set of active coordinates plus
// the iteration bounds examined when computing the next generation.
type World struct {
	dims   int
	active map[core.Coord]struct{}
	bounds Bounds
}

var _ core.Space[Cell] = (*World)(nil)

// Parse reads a plane of '#' (active) and '.' (inactive) rows embedded at
// zero on every axis beyond the first two. Column is x and row is y. Any
// other character yields a *core.MalformedInputError.
func Parse(text string, dims int) (*World, error) {
	if dims < 2 || dims > core.MaxDims {
		return nil, fmt.Errorf("lattice: dimensions %d out of range [2,%d]", dims, core.MaxDims)
	}
	rows, err := core.ParseRows(text, "#.")
	if err != nil {
		return nil, err
	}
	origin := core.Zero(dims)
	var active []core.Coord
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				active = append(active, origin.With(0, x).With(1, y))
			}
		}
	}
	hi := origin.With(0, len(rows[0])-1).With(1, len(rows)-1)
	return NewWorld(Bounds{Min: origin, Max: hi}.Expand(), active), nil
}

// NewWorld builds a world from explicit bounds and active coordinates. Active
// coordinates must share the bounds' arity and lie at least one unit inside
// them.
func NewWorld(bounds Bounds, active []core.Coord) *World {
	w := &World{dims: bounds.Dims(), active: make(map[core.Coord]struct{}, len(active)), bounds: bounds}
	for _, c := range active {
		w.active[c] = struct{}{}
	}
	return w
}

// Dims returns the lattice dimensionality.
func (w *World) Dims() int { return w.dims }

// Bounds returns the box of candidates for the next generation.
func (w *World) Bounds() Bounds { return w.bounds }

// IsActive reports whether c is active.
func (w *World) IsActive(c core.Coord) bool {
	_, ok := w.active[c]
	return ok
}

// Active yields the active coordinates in no particular order.
func (w *World) Active() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for c := range w.active {
			if !yield(c) {
				return
			}
		}
	}
}

// Lookup implements core.Space. The lattice is unbounded, so every coordinate
// of the right arity is part of it.
func (w *World) Lookup(c core.Coord) (Cell, bool) {
	if c.Dims() != w.dims {
		return Inactive, false
	}
	if w.IsActive(c) {
		return Active, true
	}
	return Inactive, true
}

// Candidates yields every coordinate inside the current bounds.
func (w *World) Candidates() iter.Seq[core.Coord] { return w.bounds.Each() }

// Next returns a builder whose world carries the bounds grown by one unit.
func (w *World) Next() core.Builder[Cell] {
	return &builder{w: &World{dims: w.dims, active: make(map[core.Coord]struct{}, len(w.active)), bounds: w.bounds.Expand()}}
}

// Population returns the number of active cells.
func (w *World) Population() int { return len(w.active) }

type builder struct{ w *World }

func (b *builder) Set(c core.Coord, s Cell) {
	if s == Active {
		b.w.active[c] = struct{}{}
	}
}

func (b *builder) Build() core.Space[Cell] { return b.w }
