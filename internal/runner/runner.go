// Package runner executes configured scenarios and collects their results.
package runner

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"cellgen/internal/config"
	"cellgen/internal/core"
	"cellgen/internal/sims/lattice"
	"cellgen/internal/sims/seating"
	"cellgen/internal/trace"
)

// Options tune a run. The zero value runs every scenario at once without a
// trace, resolving inputs relative to the working directory.
type Options struct {
	Workers int
	Dir     string
	Trace   *trace.Writer
}

// Result is the outcome of one scenario.
type Result struct {
	Scenario config.Scenario
	// Population is the occupied-seat or active-cell count.
	Population int
	// Generations counts generations that changed the space for seating
	// scenarios and generations applied for lattice scenarios.
	Generations int
	Elapsed     time.Duration
}

// Mismatch reports whether the scenario declared an expected count that the
// result does not meet.
func (r Result) Mismatch() bool {
	return r.Scenario.Expect != nil && *r.Scenario.Expect != r.Population
}

// Run executes scenarios concurrently, at most opts.Workers at a time. Results
// keep the order of scenarios. The first failing scenario cancels the rest.
func Run(ctx context.Context, scenarios []config.Scenario, opts Options) ([]Result, error) {
	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := RunScenario(ctx, sc, opts)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// RunScenario executes a single scenario synchronously. It returns ctx's
// error if ctx is cancelled between generations.
func RunScenario(ctx context.Context, sc config.Scenario, opts Options) (Result, error) {
	res := Result{Scenario: sc}
	text, err := sc.Source(opts.Dir)
	if err != nil {
		return res, err
	}
	start := time.Now()
	switch sc.Kind {
	case config.KindSeating:
		mode, err := seating.ParseMode(sc.Mode)
		if err != nil {
			return res, err
		}
		l, err := seating.Parse(text)
		if err != nil {
			return res, err
		}
		final, gens, err := evolve[seating.Seat](ctx, sc.Name, l, mode.Strategy(), mode.Rule(), -1, true, opts.Trace)
		if err != nil {
			return res, err
		}
		res.Population, res.Generations = final.Population(), gens
	case config.KindLattice:
		if sc.Generations < 0 {
			return res, fmt.Errorf("generations %d must not be negative", sc.Generations)
		}
		rule, err := lattice.ParseRule(sc.Rule)
		if err != nil {
			return res, err
		}
		w, err := lattice.Parse(text, sc.Dims)
		if err != nil {
			return res, err
		}
		if err := rule.Fits(sc.Dims); err != nil {
			return res, err
		}
		final, gens, err := evolve[lattice.Cell](ctx, sc.Name, w, lattice.Moore, rule, sc.Generations, false, opts.Trace)
		if err != nil {
			return res, err
		}
		res.Population, res.Generations = final.Population(), gens
	default:
		return res, fmt.Errorf("unknown kind %q", sc.Kind)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

// evolve steps space, recording each generation to tw when it is non-nil. It
// stops after limit generations, or earlier at the fixed point when fixedPoint
// is set. A negative limit only makes sense together with fixedPoint.
func evolve[S comparable](ctx context.Context, name string, space core.Space[S], strategy core.NeighborStrategy[S], rule core.TransitionRule[S], limit int, fixedPoint bool, tw *trace.Writer) (core.Space[S], int, error) {
	if limit == 0 {
		return space, 0, nil
	}
	cur := space
	for g := range core.Generations(space, strategy, rule) {
		if err := ctx.Err(); err != nil {
			return cur, g.Index - 1, err
		}
		if tw != nil {
			e := trace.Entry{Scenario: name, Generation: g.Index, Population: g.Space.Population(), Changed: g.Changed}
			if err := tw.Write(e); err != nil {
				return cur, g.Index - 1, err
			}
		}
		if fixedPoint && !g.Changed {
			return cur, g.Index - 1, nil
		}
		cur = g.Space
		if g.Index == limit {
			return cur, limit, nil
		}
	}
	return cur, 0, nil
}
