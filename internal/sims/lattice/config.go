package lattice

import "strconv"

// Config controls the lattice sim when it is built from the registry.
type Config struct {
	Dims        int
	Generations int
	Width       int
	Height      int
	Rule        Rule
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Dims: 3, Generations: 6, Width: 8, Height: 8, Rule: Conway}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["dims"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 2 && parsed <= 4 {
			c.Dims = parsed
		}
	}
	if v, ok := cfg["generations"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Generations = parsed
		}
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := ParseRule(v); err == nil {
			c.Rule = parsed
		}
	}
	return c
}
