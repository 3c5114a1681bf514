package core

import "iter"

// Space is a read-only snapshot of one generation of an automaton. Dense and
// sparse representations both satisfy it so a single driver can evolve either.
type Space[S comparable] interface {
	// Lookup returns the state at c. The boolean is false when c lies outside
	// the space's domain; such coordinates never count as neighbors.
	Lookup(c Coord) (S, bool)
	// Candidates yields every coordinate whose next state must be computed.
	// Every coordinate that holds a live state is a candidate.
	Candidates() iter.Seq[Coord]
	// Next returns an empty builder for the following generation.
	Next() Builder[S]
	// Population counts live cells (occupied seats, active lattice points).
	Population() int
}

// Builder accumulates the next generation. Build must be called once all
// candidates have been set; the previous Space is left untouched.
type Builder[S comparable] interface {
	Set(c Coord, s S)
	Build() Space[S]
}

// NeighborStrategy counts the neighbors of a coordinate that satisfy the
// strategy's predicate in the given snapshot.
type NeighborStrategy[S comparable] interface {
	Count(space Space[S], at Coord) int
}

// StrategyFunc adapts a plain function to NeighborStrategy.
type StrategyFunc[S comparable] func(space Space[S], at Coord) int

// Count calls f(space, at).
func (f StrategyFunc[S]) Count(space Space[S], at Coord) int { return f(space, at) }

// TransitionRule maps a cell's current state and neighbor count to its next
// state. Implementations must be pure.
type TransitionRule[S comparable] interface {
	Next(current S, neighbors int) S
}

// RuleFunc adapts a plain function to TransitionRule.
type RuleFunc[S comparable] func(current S, neighbors int) S

// Next calls f(current, neighbors).
func (f RuleFunc[S]) Next(current S, neighbors int) S { return f(current, neighbors) }
