//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"cellgen/internal/app"
	_ "cellgen/internal/sims/lattice"
	_ "cellgen/internal/sims/seating"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatalf("build sim: %v", err)
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("cellgen - " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+app.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
