package seating

import "strconv"

// Config controls the seating sim when it is built from the registry.
type Config struct {
	Width  int
	Height int
	Mode   Mode
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 96, Mode: ModeAdjacent}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
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
	if v, ok := cfg["mode"]; ok {
		if parsed, err := ParseMode(v); err == nil {
			c.Mode = parsed
		}
	}
	return c
}
