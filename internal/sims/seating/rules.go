package seating

import (
	"fmt"

	"cellgen/internal/core"
)

// Rule seats a passenger on an empty seat with no occupied neighbors and
// empties an occupied seat with at least Threshold occupied neighbors.
type Rule struct {
	Threshold int
}

var (
	// AdjacencyRule pairs with the Adjacent strategy.
	AdjacencyRule = Rule{Threshold: 4}
	// VisibilityRule pairs with the Visible strategy.
	VisibilityRule = Rule{Threshold: 5}
)

// Next implements core.TransitionRule.
func (r Rule) Next(s Seat, occupied int) Seat {
	switch s {
	case Empty:
		if occupied == 0 {
			return Occupied
		}
	case Occupied:
		if occupied >= r.Threshold {
			return Empty
		}
	}
	return s
}

// Mode selects a neighbor strategy and its matching rule.
type Mode string

const (
	ModeAdjacent Mode = "adjacent"
	ModeVisible  Mode = "visible"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeAdjacent, ModeVisible:
		return m, nil
	}
	return "", fmt.Errorf("seating: unknown mode %q (want %q or %q)", s, ModeAdjacent, ModeVisible)
}

// Strategy returns the neighbor strategy for the mode. It panics on a mode
// ParseMode rejects.
func (m Mode) Strategy() core.NeighborStrategy[Seat] {
	switch m {
	case ModeAdjacent:
		return Adjacent
	case ModeVisible:
		return Visible
	}
	panic(fmt.Sprintf("seating: unknown mode %q", m))
}

// Rule returns the transition rule for the mode. It panics on a mode
// ParseMode rejects.
func (m Mode) Rule() core.TransitionRule[Seat] {
	switch m {
	case ModeAdjacent:
		return AdjacencyRule
	case ModeVisible:
		return VisibilityRule
	}
	panic(fmt.Sprintf("seating: unknown mode %q", m))
}

// orDefault maps the empty mode to ModeAdjacent and panics on any other mode
// ParseMode rejects.
func (m Mode) orDefault() Mode {
	if m == "" {
		return ModeAdjacent
	}
	if _, err := ParseMode(string(m)); err != nil {
		panic(err)
	}
	return m
}

// StabilizeLayout runs the layout to its fixed point and returns the terminal
// layout together with the number of generations that changed a seat. Unknown
// modes panic; validate user input with ParseMode first.
func StabilizeLayout(l *Layout, m Mode) (*Layout, int) {
	final, gens := core.Stabilize[Seat](l, m.Strategy(), m.Rule())
	return final.(*Layout), gens
}

// Stabilize returns the number of occupied seats once the layout stops
// changing.
func Stabilize(l *Layout, m Mode) int {
	final, _ := StabilizeLayout(l, m)
	return final.Population()
}
