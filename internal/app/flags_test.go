package app

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cellgen/internal/core"
	"cellgen/internal/sims/lattice"
	"cellgen/internal/sims/seating"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-sim", "lattice", "-dims", "4", "-generations", "2", "-rule", "B36/S23"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Sim != "lattice" || cfg.Dims != 4 || cfg.Generations != 2 || cfg.Rule != "B36/S23" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Options()["dims"] != "4" {
		t.Fatalf("unexpected options %v", cfg.Options())
	}
	if usage := fs.Lookup("sim").Usage; !strings.Contains(usage, "lattice, seating") {
		t.Fatalf("sim usage should list registered sims, got %q", usage)
	}
}

func TestNewSimFromInput(t *testing.T) {
	dir := t.TempDir()
	seats := filepath.Join(dir, "seats.txt")
	if err := os.WriteFile(seats, []byte("L.L\nLLL\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Input = seats
	cfg.Mode = "visible"
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	s, ok := sim.(*seating.Sim)
	if !ok {
		t.Fatalf("expected a seating sim, got %T", sim)
	}
	if s.Size() != (core.Size{W: 3, H: 2}) {
		t.Fatalf("unexpected size %+v", s.Size())
	}

	cubes := filepath.Join(dir, "cubes.txt")
	if err := os.WriteFile(cubes, []byte(".#.\n..#\n###\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg = NewConfig()
	cfg.Sim = "lattice"
	cfg.Input = cubes
	cfg.Dims = 4
	sim, err = cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if l, ok := sim.(*lattice.Sim); !ok || l.World().Dims() != 4 {
		t.Fatalf("expected a 4D lattice sim, got %T", sim)
	}
}

func TestNewSimErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("L#X\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := NewConfig()
	cfg.Input = bad
	_, err := cfg.NewSim()
	var mie *core.MalformedInputError
	if !errors.As(err, &mie) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}

	cfg = NewConfig()
	cfg.Sim = "hexagonal"
	_, err = cfg.NewSim()
	if err == nil || !strings.Contains(err.Error(), "have lattice, seating") {
		t.Fatalf("expected unknown sim error listing the registry, got %v", err)
	}
}

func TestNewSimFromRegistry(t *testing.T) {
	cfg := NewConfig()
	sim, err := cfg.NewSim()
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Name() != "seating" || len(sim.Cells()) != sim.Size().W*sim.Size().H {
		t.Fatalf("unexpected sim %s with %d cells", sim.Name(), len(sim.Cells()))
	}
}
