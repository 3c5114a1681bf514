package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `
workers: 2
scenarios:
  - name: seats
    kind: seating
    layout: |
      L.L
      LLL
    expect: 6
  - name: cubes
    kind: lattice
    input: cubes.txt
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Workers != 2 || len(cfg.Scenarios) != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	seats := cfg.Scenarios[0]
	if seats.Mode != "adjacent" {
		t.Fatalf("expected default mode adjacent, got %q", seats.Mode)
	}
	if seats.Expect == nil || *seats.Expect != 6 {
		t.Fatalf("expected expect=6, got %v", seats.Expect)
	}
	cubes := cfg.Scenarios[1]
	if cubes.Dims != DefaultDims || cubes.Generations != DefaultGenerations || cubes.Rule != "B3/S23" {
		t.Fatalf("lattice defaults not applied: %+v", cubes)
	}
	if cubes.Expect != nil {
		t.Fatal("expect should stay unset")
	}
}

func TestSchemaRejects(t *testing.T) {
	cases := map[string]string{
		"unknown kind": `
scenarios:
  - name: x
    kind: hexagonal
    layout: "L"
`,
		"both sources": `
scenarios:
  - name: x
    kind: seating
    layout: "L"
    input: seats.txt
`,
		"no source": `
scenarios:
  - name: x
    kind: seating
`,
		"unknown field": `
scenarios:
  - name: x
    kind: seating
    layout: "L"
    wrap: true
`,
		"bad mode": `
scenarios:
  - name: x
    kind: seating
    mode: diagonal
    layout: "L"
`,
		"too many dims": `
scenarios:
  - name: x
    kind: lattice
    dims: 9
    layout: "#"
`,
		"zero generations": `
scenarios:
  - name: x
    kind: lattice
    generations: 0
    layout: "#"
`,
		"birth on zero": `
scenarios:
  - name: x
    kind: lattice
    rule: B0/S23
    layout: "#"
`,
		"count beyond neighborhood": `
scenarios:
  - name: x
    kind: lattice
    dims: 2
    rule: B3/S2,9
    layout: "#"
`,
		"empty": ``,
	}
	for name, doc := range cases {
		if _, err := Parse([]byte(doc)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestValidateDuplicateNames(t *testing.T) {
	_, err := Parse([]byte(`
scenarios:
  - name: x
    kind: seating
    layout: "L"
  - name: x
    kind: lattice
    layout: "#"
`))
	if err == nil || !strings.Contains(err.Error(), "duplicate") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestValidateRejectsNegativeGenerations(t *testing.T) {
	cfg := Config{Scenarios: []Scenario{{Name: "x", Kind: KindLattice, Dims: 3, Generations: -1, Rule: "B3/S23", Layout: "#"}}}
	err := cfg.Validate()
	if err == nil || !strings.Contains(err.Error(), "negative") {
		t.Fatalf("expected negative generations error, got %v", err)
	}
	cfg.Scenarios[0].Generations = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero generations built in code is valid: %v", err)
	}
}

func TestLoadResolvesInputRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "scenarios.yaml"), []byte(sample), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "cubes.txt"), []byte(".#.\n..#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(filepath.Join(dir, "scenarios.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dir != dir {
		t.Fatalf("Dir = %q, want %q", cfg.Dir, dir)
	}
	text, err := cfg.Scenarios[1].Source(cfg.Dir)
	if err != nil {
		t.Fatalf("Source: %v", err)
	}
	if text != ".#.\n..#\n###\n" {
		t.Fatalf("unexpected source %q", text)
	}
	text, err = cfg.Scenarios[0].Source(cfg.Dir)
	if err != nil || text != "L.L\nLLL\n" {
		t.Fatalf("inline layout = %q, %v", text, err)
	}
}

func TestLoadWrapsErrorsWithFileName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("scenarios: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.HasPrefix(err.Error(), "broken.yaml: ") {
		t.Fatalf("expected error prefixed with file name, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSourceMissingInput(t *testing.T) {
	s := Scenario{Name: "gone", Kind: KindSeating, Input: "nope.txt"}
	if _, err := s.Source(t.TempDir()); err == nil {
		t.Fatal("expected error for missing input file")
	}
}
