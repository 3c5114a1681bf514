package lattice

import (
	"strconv"

	"cellgen/internal/core"
	rng "cellgen/pkg/core"
)

// Sim steps a world for the viewer and watch mode. Cells shows the plane at
// zero on every axis beyond the first two, over a window wide enough to hold
// everything the configured generations can reach.
type Sim struct {
	cfg     Config
	initial *World
	cur     *World
	gen     int

	originX, originY int
	cells            []uint8
}

// New wraps an initial world. Reset restores it.
func New(w *World, cfg Config) *Sim {
	cfg.Dims = w.Dims()
	b := w.Bounds()
	// Parsed worlds carry a one-unit margin around the input plane.
	cfg.Width = b.Max.At(0) - b.Min.At(0) - 1
	cfg.Height = b.Max.At(1) - b.Min.At(1) - 1
	cfg.Width, cfg.Height = max(cfg.Width, 1), max(cfg.Height, 1)
	if cfg.Rule.Birth == nil && cfg.Rule.Survive == nil {
		cfg.Rule = Conway
	}
	s := newSim(cfg)
	s.originX = b.Min.At(0) + 1 - cfg.Generations
	s.originY = b.Min.At(1) + 1 - cfg.Generations
	s.initial = w
	s.Reset(0)
	return s
}

// NewRandom returns a sim that seeds a random plane from the seed on Reset.
func NewRandom(cfg Config) *Sim {
	if cfg.Dims < 2 || cfg.Dims > core.MaxDims {
		cfg.Dims = DefaultConfig().Dims
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		d := DefaultConfig()
		cfg.Width, cfg.Height = d.Width, d.Height
	}
	if cfg.Rule.Birth == nil && cfg.Rule.Survive == nil {
		cfg.Rule = Conway
	}
	s := newSim(cfg)
	s.originX = -cfg.Generations
	s.originY = -cfg.Generations
	s.Reset(0)
	return s
}

func newSim(cfg Config) *Sim {
	if cfg.Generations < 0 {
		cfg.Generations = 0
	}
	w := cfg.Width + 2*cfg.Generations
	h := cfg.Height + 2*cfg.Generations
	return &Sim{cfg: cfg, cells: make([]uint8, w*h)}
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "lattice" }

// Size returns the dimensions of the displayed plane.
func (s *Sim) Size() core.Size {
	return core.Size{W: s.cfg.Width + 2*s.cfg.Generations, H: s.cfg.Height + 2*s.cfg.Generations}
}

// Cells exposes the displayed plane (1 active, 0 inactive).
func (s *Sim) Cells() []uint8 { return s.cells }

// World returns the current generation.
func (s *Sim) World() *World { return s.cur }

// Population counts active cells in the whole lattice, not just the
// projected plane.
func (s *Sim) Population() int { return s.cur.Population() }

// Generation returns how many generations have been applied since Reset.
func (s *Sim) Generation() int { return s.gen }

// Done reports whether the configured number of generations has run.
func (s *Sim) Done() bool { return s.gen >= s.cfg.Generations }

// Reset restores the initial world, or seeds a random plane from seed when
// the sim was built without a world.
func (s *Sim) Reset(seed int64) {
	s.gen = 0
	if s.initial != nil {
		s.cur = s.initial
	} else {
		w, err := Parse(rng.NewRNG(seed).Grid(s.cfg.Width, s.cfg.Height, "#.."), s.cfg.Dims)
		if err != nil {
			// Generated text only uses lattice characters.
			panic(err)
		}
		s.cur = w
	}
	s.project()
}

// Step advances one generation until the configured count is reached.
func (s *Sim) Step() {
	if s.Done() {
		return
	}
	next, _ := core.Step[Cell](s.cur, Moore, s.cfg.Rule)
	s.cur = next.(*World)
	s.gen++
	s.project()
}

func (s *Sim) project() {
	size := s.Size()
	plane := core.Zero(s.cfg.Dims)
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			v := uint8(0)
			if s.cur.IsActive(plane.With(0, s.originX+x).With(1, s.originY+y)) {
				v = 1
			}
			s.cells[y*size.W+x] = v
		}
	}
}

// Glyphs maps inactive and active cells to their input characters.
func (s *Sim) Glyphs() string { return ".#" }

// Parameters describes the sim's configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				{Key: "dims", Label: "Dimensions", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Dims)},
				{Key: "generations", Label: "Generations", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Generations)},
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: s.cfg.Rule.String(),
					Description: "birth/survival neighbor counts over the full Moore neighborhood"},
			},
		},
		{
			Name:    "Plane",
			Summary: "cross-section at zero on every extra axis",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Width)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.Itoa(s.cfg.Height)},
			},
		},
	}}
}

func init() {
	core.Register("lattice", func(cfg map[string]string) core.Sim {
		return NewRandom(FromMap(cfg))
	})
}
