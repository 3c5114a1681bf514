// Package config loads scenario files for the headless runner.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"cellgen/internal/core"
	"cellgen/internal/sims/lattice"
	"cellgen/internal/sims/seating"
)

//go:embed scenarios.schema.json
var schemaSource string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("scenarios.schema.json", schemaSource)
})

// Kind names an automaton family.
type Kind string

const (
	KindSeating Kind = "seating"
	KindLattice Kind = "lattice"
)

// Defaults applied by Normalize.
const (
	DefaultDims        = 3
	DefaultGenerations = 6
)

// Config is a scenario file.
type Config struct {
	Workers   int        `yaml:"workers"`
	Scenarios []Scenario `yaml:"scenarios"`

	// Dir resolves relative input paths. Load sets it to the file's directory.
	Dir string `yaml:"-"`
}

// Scenario is one configured run. Exactly one of Input and Layout is set.
type Scenario struct {
	Name        string `yaml:"name"`
	Kind        Kind   `yaml:"kind"`
	Input       string `yaml:"input,omitempty"`
	Layout      string `yaml:"layout,omitempty"`
	Mode        string `yaml:"mode,omitempty"`
	Dims        int    `yaml:"dims,omitempty"`
	Generations int    `yaml:"generations,omitempty"`
	Rule        string `yaml:"rule,omitempty"`
	Expect      *int   `yaml:"expect,omitempty"`
}

// Load reads, validates and normalizes a scenario file.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg, err := Parse(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	cfg.Dir = filepath.Dir(path)
	return cfg, nil
}

// Parse validates raw YAML against the scenario schema, decodes it and
// applies defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := validateSchema(raw); err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, err
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateSchema(raw []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return err
	}
	// Round-trip through JSON so the validator sees JSON types.
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return schema.Validate(v)
}

// Normalize fills defaults.
func (c *Config) Normalize() {
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		s.Name = strings.TrimSpace(s.Name)
		switch s.Kind {
		case KindSeating:
			if s.Mode == "" {
				s.Mode = string(seating.ModeAdjacent)
			}
		case KindLattice:
			if s.Dims == 0 {
				s.Dims = DefaultDims
			}
			if s.Generations == 0 {
				s.Generations = DefaultGenerations
			}
			if s.Rule == "" {
				s.Rule = lattice.Conway.String()
			}
		}
	}
}

// Validate checks constraints the schema cannot express.
func (c Config) Validate() error {
	seen := map[string]bool{}
	for _, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario with empty name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario %q", s.Name)
		}
		seen[s.Name] = true
		if (s.Input == "") == (s.Layout == "") {
			return fmt.Errorf("scenario %q: set exactly one of input or layout", s.Name)
		}
		switch s.Kind {
		case KindSeating:
			if _, err := seating.ParseMode(s.Mode); err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
		case KindLattice:
			if s.Dims < 2 || s.Dims > core.MaxDims {
				return fmt.Errorf("scenario %q: dims %d out of range", s.Name, s.Dims)
			}
			if s.Generations < 0 {
				return fmt.Errorf("scenario %q: generations %d must not be negative", s.Name, s.Generations)
			}
			rule, err := lattice.ParseRule(s.Rule)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
			if err := rule.Fits(s.Dims); err != nil {
				return fmt.Errorf("scenario %q: %w", s.Name, err)
			}
		default:
			return fmt.Errorf("scenario %q: unknown kind %q", s.Name, s.Kind)
		}
	}
	return nil
}

// Source returns the scenario's initial configuration text, reading Input
// relative to dir when it is not absolute.
func (s Scenario) Source(dir string) (string, error) {
	if s.Layout != "" {
		return s.Layout, nil
	}
	path := s.Input
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("scenario %q: %w", s.Name, err)
	}
	return string(b), nil
}
