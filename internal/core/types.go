package core

import (
	"image/color"
	"maps"
	"slices"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a steppable automaton exposes to the
// viewer and the watch mode.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// PaletteProvider is implemented by sims whose cell values are not binary.
type PaletteProvider interface {
	Palette() []color.RGBA
}

// GlyphProvider maps cell values to characters for text frames. Cell value i
// is drawn with the i-th rune of the returned string.
type GlyphProvider interface {
	Glyphs() string
}

// Factory constructs a Sim using an optional configuration map.
type Factory func(cfg map[string]string) Sim

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// SimNames lists the registered simulations in lexical order.
func SimNames() []string {
	return slices.Sorted(maps.Keys(sims))
}
