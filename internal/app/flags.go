package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cellgen/internal/core"
	"cellgen/internal/sims/lattice"
	"cellgen/internal/sims/seating"
)

// Config represents the command-line parameters shared by the viewer and the
// watch mode.
type Config struct {
	Sim         string
	Scale       int
	TPS         int
	Seed        int64
	Input       string
	Mode        string
	Dims        int
	Generations int
	Rule        string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:         "seating",
		Scale:       6,
		TPS:         8,
		Seed:        42,
		Mode:        string(seating.ModeAdjacent),
		Dims:        3,
		Generations: 6,
		Rule:        lattice.Conway.String(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run: "+strings.Join(core.SimNames(), ", "))
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random initial layouts")
	fs.StringVar(&c.Input, "input", c.Input, "initial configuration file (random when empty)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "seating neighbor mode: adjacent or visible")
	fs.IntVar(&c.Dims, "dims", c.Dims, "lattice dimensions")
	fs.IntVar(&c.Generations, "generations", c.Generations, "lattice generations")
	fs.StringVar(&c.Rule, "rule", c.Rule, "lattice rule in B/S notation")
}

// Options renders the sim-specific settings as a registry config map.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"mode":        c.Mode,
		"dims":        strconv.Itoa(c.Dims),
		"generations": strconv.Itoa(c.Generations),
		"rule":        c.Rule,
	}
}

// NewSim builds the configured simulation, parsing Input when set and
// otherwise asking the registry for a seeded random one.
func (c *Config) NewSim() (core.Sim, error) {
	if c.Input == "" {
		factory, ok := core.Sims()[c.Sim]
		if !ok {
			return nil, unknownSim(c.Sim)
		}
		sim := factory(c.Options())
		sim.Reset(c.Seed)
		return sim, nil
	}

	raw, err := os.ReadFile(c.Input)
	if err != nil {
		return nil, err
	}
	switch c.Sim {
	case "seating":
		mode, err := seating.ParseMode(c.Mode)
		if err != nil {
			return nil, err
		}
		l, err := seating.Parse(string(raw))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Input, err)
		}
		return seating.New(l, mode), nil
	case "lattice":
		rule, err := lattice.ParseRule(c.Rule)
		if err != nil {
			return nil, err
		}
		w, err := lattice.Parse(string(raw), c.Dims)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Input, err)
		}
		return lattice.New(w, lattice.Config{Generations: c.Generations, Rule: rule}), nil
	}
	return nil, unknownSim(c.Sim)
}

func unknownSim(name string) error {
	return fmt.Errorf("unknown sim %q (have %s)", name, strings.Join(core.SimNames(), ", "))
}
