package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"cellgen/internal/app"
	"cellgen/internal/config"
	"cellgen/internal/core"
	"cellgen/internal/render"
	"cellgen/internal/runner"
	"cellgen/internal/trace"
	"cellgen/internal/ui"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.StringVar(&cfg.Sim, "kind", cfg.Sim, "alias for -sim")
	scenarios := flag.String("config", "", "scenario file (YAML)")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios run concurrently")
	tracePath := flag.String("trace", "", "write per-generation trace (zstd JSON lines)")
	expect := flag.Int("expect", -1, "expected final count for -input; negative disables the check")
	watch := flag.Bool("watch", false, "print text frames instead of a summary")
	params := flag.Bool("params", false, "print the sim parameters and exit")
	readTrace := flag.String("read-trace", "", "summarize a trace written by -trace and exit")
	flag.Parse()

	if *readTrace != "" {
		entries, err := trace.ReadFile(*readTrace)
		if err != nil {
			log.Fatalf("read trace: %v", err)
		}
		for _, s := range trace.Summarize(entries) {
			state := "running"
			if s.Settled {
				state = "settled"
			}
			fmt.Printf("%-24s generations=%-4d count=%-6d %s\n", s.Scenario, s.Generations, s.Population, state)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *params || *watch {
		sim, err := cfg.NewSim()
		if err != nil {
			log.Fatalf("build sim: %v", err)
		}
		if *params {
			printParams(sim)
			return
		}
		watchSim(ctx, sim, cfg.TPS)
		return
	}

	var file config.Config
	switch {
	case *scenarios != "":
		loaded, err := config.Load(*scenarios)
		if err != nil {
			log.Fatalf("load scenarios: %v", err)
		}
		file = loaded
		if file.Workers > 0 && !flagSet("workers") {
			*workers = file.Workers
		}
	case cfg.Input != "":
		sc := config.Scenario{
			Name:        filepath.Base(cfg.Input),
			Kind:        config.Kind(cfg.Sim),
			Input:       cfg.Input,
			Mode:        cfg.Mode,
			Dims:        cfg.Dims,
			Generations: cfg.Generations,
			Rule:        cfg.Rule,
		}
		if *expect >= 0 {
			sc.Expect = expect
		}
		// Flags already carry defaults, so an explicit -generations 0 stays 0.
		file.Scenarios = []config.Scenario{sc}
		if err := file.Validate(); err != nil {
			log.Fatalf("invalid flags: %v", err)
		}
	default:
		flag.Usage()
		os.Exit(2)
	}

	opts := runner.Options{Workers: *workers, Dir: file.Dir}
	if *tracePath != "" {
		tw, err := trace.Create(*tracePath)
		if err != nil {
			log.Fatalf("create trace: %v", err)
		}
		opts.Trace = tw
	}

	results, err := runner.Run(ctx, file.Scenarios, opts)
	if opts.Trace != nil {
		if cerr := opts.Trace.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	mismatches := 0
	for _, r := range results {
		status := "ok"
		if r.Mismatch() {
			status = fmt.Sprintf("MISMATCH (expected %d)", *r.Scenario.Expect)
			mismatches++
		}
		fmt.Printf("%-24s %-8s count=%-6d generations=%-4d elapsed=%-12v %s\n",
			r.Scenario.Name, r.Scenario.Kind, r.Population, r.Generations, r.Elapsed, status)
	}
	if mismatches > 0 {
		log.Printf("%d of %d scenarios did not match", mismatches, len(results))
		os.Exit(1)
	}
}

func flagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func printParams(sim core.Sim) {
	fmt.Println(ui.Title(sim))
	for _, line := range ui.Lines(sim) {
		fmt.Println(line)
	}
}

// watchSim prints one frame per tick until the sim reports it has nothing
// left to do or ctx is cancelled.
func watchSim(ctx context.Context, sim core.Sim, tps int) {
	glyphs := "01"
	if g, ok := sim.(core.GlyphProvider); ok {
		glyphs = g.Glyphs()
	}
	timer := core.NewFixedStep(tps)
	w := sim.Size().W
	for ctx.Err() == nil {
		gen := 0
		if f, ok := sim.(interface{ Generation() int }); ok {
			gen = f.Generation()
		}
		fmt.Printf("\x1b[H\x1b[2J%s generation %d\n%s", sim.Name(), gen, render.Text(sim.Cells(), w, glyphs))
		if done(sim) {
			return
		}
		timer.Wait()
		sim.Step()
	}
}

func done(sim core.Sim) bool {
	switch s := sim.(type) {
	case interface{ Stable() bool }:
		return s.Stable()
	case interface{ Done() bool }:
		return s.Done()
	}
	return false
}
