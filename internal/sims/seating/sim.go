package seating

import (
	"image/color"
	"strconv"

	"cellgen/internal/core"
	rng "cellgen/pkg/core"
)

// randomAlphabet weights random layouts towards seats.
const randomAlphabet = "LLL."

// Sim steps a layout one generation at a time for the viewer and watch mode.
type Sim struct {
	cfg     Config
	initial *Layout
	cur     *Layout
	gen     int
	stable  bool
}

// New wraps an initial layout. Reset restores it. An empty mode means
// ModeAdjacent; any other unknown mode panics.
func New(l *Layout, m Mode) *Sim {
	s := &Sim{cfg: Config{Width: l.Width(), Height: l.Height(), Mode: m.orDefault()}, initial: l.Clone()}
	s.Reset(0)
	return s
}

// NewRandom returns a sim that draws a fresh layout from the seed on Reset.
func NewRandom(cfg Config) *Sim {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	cfg.Mode = cfg.Mode.orDefault()
	s := &Sim{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "seating" }

// Size returns the layout dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Cells exposes the current seat states (0 floor, 1 empty, 2 occupied).
func (s *Sim) Cells() []uint8 { return s.cur.grid.Cells() }

// Layout returns the current generation.
func (s *Sim) Layout() *Layout { return s.cur }

// Generation returns how many generations have been applied since Reset.
func (s *Sim) Generation() int { return s.gen }

// Population counts occupied seats.
func (s *Sim) Population() int { return s.cur.Population() }

// Stable reports whether the last step reached the fixed point.
func (s *Sim) Stable() bool { return s.stable }

// Reset restores the initial layout, or draws a random one from seed when the
// sim was built without a layout.
func (s *Sim) Reset(seed int64) {
	s.gen = 0
	s.stable = false
	if s.initial != nil {
		s.cur = s.initial.Clone()
		return
	}
	l, err := Parse(rng.NewRNG(seed).Grid(s.cfg.Width, s.cfg.Height, randomAlphabet))
	if err != nil {
		// Generated text only uses layout characters.
		panic(err)
	}
	s.cur = l
}

// Step advances one generation. Once the layout is stable further steps are
// no-ops.
func (s *Sim) Step() {
	if s.stable {
		return
	}
	next, changed := core.Step[Seat](s.cur, s.cfg.Mode.Strategy(), s.cfg.Mode.Rule())
	if !changed {
		s.stable = true
		return
	}
	s.cur = next.(*Layout)
	s.gen++
}

// Palette colors floor, empty and occupied seats.
func (s *Sim) Palette() []color.RGBA {
	return []color.RGBA{
		{R: 0x20, G: 0x20, B: 0x24, A: 0xff},
		{R: 0x3c, G: 0xb3, B: 0x71, A: 0xff},
		{R: 0xdc, G: 0x3c, B: 0x3c, A: 0xff},
	}
}

// Glyphs maps seat states to their input characters.
func (s *Sim) Glyphs() string { return glyphs }

// Parameters describes the sim's configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Layout",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Width)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Height)},
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				{Key: "mode", Label: "Neighbor mode", Type: core.ParamTypeString, Value: string(s.cfg.Mode),
					Description: "adjacent: 8 neighbors; visible: first seat in each direction"},
				{Key: "threshold", Label: "Leave threshold", Type: core.ParamTypeInt,
					Value: strconv.Itoa(thresholdFor(s.cfg.Mode))},
			},
		},
	}}
}

func thresholdFor(m Mode) int {
	if r, ok := m.Rule().(Rule); ok {
		return r.Threshold
	}
	return 0
}

func init() {
	core.Register("seating", func(cfg map[string]string) core.Sim {
		return NewRandom(FromMap(cfg))
	})
}
