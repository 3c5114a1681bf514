// Package seating evolves a bounded seating layout in which passengers take
// empty seats and leave crowded ones until nobody moves.
package seating

import (
	"iter"
	"strings"

	"cellgen/internal/core"
)

// Seat is the state of one layout position.
type Seat uint8

const (
	// Floor never holds a passenger and never changes.
	Floor Seat = iota
	Empty
	Occupied
)

const glyphs = ".L#"

func (s Seat) String() string {
	if int(s) < len(glyphs) {
		return glyphs[s : s+1]
	}
	return "?"
}

// Layout is a dense W×H seating grid. It serves both as a read-only
// generation snapshot and as the builder of the following generation.
type Layout struct {
	grid *core.ByteGrid
}

var (
	_ core.Space[Seat]   = (*Layout)(nil)
	_ core.Builder[Seat] = (*Layout)(nil)
)

// Parse reads a layout of 'L' (empty seat), '.' (floor) and '#' (occupied
// seat) rows. Any other character yields a *core.MalformedInputError.
func Parse(text string) (*Layout, error) {
	rows, err := core.ParseRows(text, "L.#")
	if err != nil {
		return nil, err
	}
	l := &Layout{grid: core.NewByteGrid(len(rows[0]), len(rows))}
	for y, row := range rows {
		for x := 0; x < len(row); x++ {
			l.grid.Set(x, y, uint8(strings.IndexByte(glyphs, row[x])))
		}
	}
	return l, nil
}

// Width returns the number of columns.
func (l *Layout) Width() int { return l.grid.W }

// Height returns the number of rows.
func (l *Layout) Height() int { return l.grid.H }

// At returns the seat at (x, y) and whether the position exists.
func (l *Layout) At(x, y int) (Seat, bool) {
	if !l.grid.In(x, y) {
		return Floor, false
	}
	return Seat(l.grid.At(x, y)), true
}

// Lookup implements core.Space.
func (l *Layout) Lookup(c core.Coord) (Seat, bool) {
	if c.Dims() != 2 {
		return Floor, false
	}
	return l.At(c.At(0), c.At(1))
}

// Candidates yields every position of the layout in row-major order.
func (l *Layout) Candidates() iter.Seq[core.Coord] {
	return func(yield func(core.Coord) bool) {
		for y := 0; y < l.grid.H; y++ {
			for x := 0; x < l.grid.W; x++ {
				if !yield(core.New(x, y)) {
					return
				}
			}
		}
	}
}

// Next returns a blank layout of the same shape.
func (l *Layout) Next() core.Builder[Seat] {
	return &Layout{grid: core.NewByteGrid(l.grid.W, l.grid.H)}
}

// Set implements core.Builder.
func (l *Layout) Set(c core.Coord, s Seat) {
	l.grid.Set(c.At(0), c.At(1), uint8(s))
}

// Build implements core.Builder.
func (l *Layout) Build() core.Space[Seat] { return l }

// Population returns the number of occupied seats.
func (l *Layout) Population() int { return l.grid.Count(uint8(Occupied)) }

// Equal reports whether both layouts hold the same seats.
func (l *Layout) Equal(o *Layout) bool { return l.grid.Equal(o.grid) }

// Clone returns an independent copy.
func (l *Layout) Clone() *Layout { return &Layout{grid: l.grid.Clone()} }

// String renders the layout in its input grammar, one row per line.
func (l *Layout) String() string {
	var b strings.Builder
	b.Grow((l.grid.W + 1) * l.grid.H)
	for y := 0; y < l.grid.H; y++ {
		for x := 0; x < l.grid.W; x++ {
			b.WriteByte(glyphs[l.grid.At(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
