package lattice

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cellgen/internal/core"
)

// Rule is a life-like birth/survival rule expressed as neighbor counts.
type Rule struct {
	Birth   []int
	Survive []int
}

// Conway is B3/S23: birth on exactly three active neighbors, survival on two
// or three.
var Conway = Rule{Birth: []int{3}, Survive: []int{2, 3}}

// Next implements core.TransitionRule.
func (r Rule) Next(s Cell, active int) Cell {
	if s == Active {
		if slices.Contains(r.Survive, active) {
			return Active
		}
		return Inactive
	}
	if slices.Contains(r.Birth, active) {
		return Active
	}
	return Inactive
}

// String renders the rule in B/S notation. Counts above nine are separated by
// commas.
func (r Rule) String() string {
	return "B" + formatCounts(r.Birth) + "/S" + formatCounts(r.Survive)
}

func formatCounts(counts []int) string {
	sep := ""
	for _, n := range counts {
		if n > 9 {
			sep = ","
			break
		}
	}
	parts := make([]string, len(counts))
	for i, n := range counts {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, sep)
}

// ParseRule reads B/S notation such as "B3/S23". Counts are single digits
// unless a comma-separated list is given ("B3/S2,3,10"). Either half may be
// empty ("B3/S"). Birth on zero neighbors is rejected: it would activate the
// whole unbounded lattice.
func ParseRule(s string) (Rule, error) {
	birth, survive, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "/")
	if !ok || !strings.HasPrefix(birth, "B") || !strings.HasPrefix(survive, "S") {
		return Rule{}, fmt.Errorf("lattice: rule %q is not in B/S notation", s)
	}
	b, err := parseCounts(birth[1:])
	if err != nil {
		return Rule{}, fmt.Errorf("lattice: rule %q: %w", s, err)
	}
	if slices.Contains(b, 0) {
		return Rule{}, fmt.Errorf("lattice: rule %q: birth on 0 neighbors is not supported", s)
	}
	sv, err := parseCounts(survive[1:])
	if err != nil {
		return Rule{}, fmt.Errorf("lattice: rule %q: %w", s, err)
	}
	return Rule{Birth: b, Survive: sv}, nil
}

func parseCounts(s string) ([]int, error) {
	var fields []string
	if strings.Contains(s, ",") {
		fields = strings.Split(s, ",")
	} else {
		fields = strings.Split(s, "")
	}
	counts := make([]int, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("bad neighbor count %q", f)
		}
		if !slices.Contains(counts, n) {
			counts = append(counts, n)
		}
	}
	slices.Sort(counts)
	return counts, nil
}

// Fits reports an error when the rule names a neighbor count that a
// dims-dimensional Moore neighborhood cannot reach.
func (r Rule) Fits(dims int) error {
	most := len(core.Offsets(dims))
	for _, n := range slices.Concat(r.Birth, r.Survive) {
		if n > most {
			return fmt.Errorf("lattice: rule %s: count %d exceeds the %d neighbors of %d dimensions", r, n, most, dims)
		}
	}
	return nil
}

// Moore counts active cells among the 3^d-1 neighbors of a coordinate.
var Moore core.NeighborStrategy[Cell] = core.StrategyFunc[Cell](activeNeighbors)

func activeNeighbors(space core.Space[Cell], at core.Coord) int {
	n := 0
	for c := range at.Neighbors() {
		if s, _ := space.Lookup(c); s == Active {
			n++
		}
	}
	return n
}

// Evolve applies rule for exactly the given number of generations and
// returns the final world.
func Evolve(w *World, rule Rule, generations int) *World {
	return core.Run[Cell](w, Moore, rule, generations).(*World)
}

// RunRule returns the number of active cells after the given number of
// generations under rule.
func RunRule(w *World, rule Rule, generations int) int {
	return Evolve(w, rule, generations).Population()
}

// Run returns the number of active cells after the given number of
// generations under Conway's rule.
func Run(w *World, generations int) int {
	return RunRule(w, Conway, generations)
}
