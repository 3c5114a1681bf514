package core

import "iter"

// Generation is one completed synchronous update.
type Generation[S comparable] struct {
	// Index counts generations from 1; generation 0 is the initial space.
	Index   int
	Space   Space[S]
	Changed bool
}

// Step computes the next generation of space. Every next state is derived
// from the previous snapshot only; the result is a separate Space. changed
// reports whether any candidate took a different state.
func Step[S comparable](space Space[S], strategy NeighborStrategy[S], rule TransitionRule[S]) (next Space[S], changed bool) {
	b := space.Next()
	for c := range space.Candidates() {
		cur, _ := space.Lookup(c)
		nxt := rule.Next(cur, strategy.Count(space, c))
		if nxt != cur {
			changed = true
		}
		b.Set(c, nxt)
	}
	return b.Build(), changed
}

// Generations yields successive generations starting from space. The sequence
// is unbounded; callers stop ranging when they have seen enough.
func Generations[S comparable](space Space[S], strategy NeighborStrategy[S], rule TransitionRule[S]) iter.Seq[Generation[S]] {
	return func(yield func(Generation[S]) bool) {
		cur := space
		for i := 1; ; i++ {
			next, changed := Step(cur, strategy, rule)
			if !yield(Generation[S]{Index: i, Space: next, Changed: changed}) {
				return
			}
			cur = next
		}
	}
}

// Stabilize evolves space until a generation leaves it unchanged. It returns
// the terminal space and how many generations changed something before the
// fixed point. There is no generation cap; rule sets passed here must converge.
func Stabilize[S comparable](space Space[S], strategy NeighborStrategy[S], rule TransitionRule[S]) (Space[S], int) {
	cur := space
	for g := range Generations(space, strategy, rule) {
		if !g.Changed {
			return cur, g.Index - 1
		}
		cur = g.Space
	}
	return cur, 0
}

// Run evolves space for exactly n generations without fixed-point detection.
func Run[S comparable](space Space[S], strategy NeighborStrategy[S], rule TransitionRule[S], n int) Space[S] {
	if n <= 0 {
		return space
	}
	cur := space
	for g := range Generations(space, strategy, rule) {
		cur = g.Space
		if g.Index == n {
			break
		}
	}
	return cur
}
