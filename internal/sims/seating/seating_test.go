package seating

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"cellgen/internal/core"
	rng "cellgen/pkg/core"
)

const example = `L.LL.LL.LL
LLLLLLL.LL
L.L.L..L..
LLLL.LL.LL
L.LL.LL.LL
L.LLLLL.LL
..L.L.....
LLLLLLLLLL
L.LLLLLL.L
L.LLLLL.LL
`

func mustParse(t testing.TB, text string) *Layout {
	t.Helper()
	l, err := Parse(text)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return l
}

func TestStabilizeAdjacentExample(t *testing.T) {
	if got := Stabilize(mustParse(t, example), ModeAdjacent); got != 37 {
		t.Fatalf("expected 37 occupied seats, got %d", got)
	}
}

func TestStabilizeVisibleExample(t *testing.T) {
	if got := Stabilize(mustParse(t, example), ModeVisible); got != 26 {
		t.Fatalf("expected 26 occupied seats, got %d", got)
	}
}

func TestStabilizeDoesNotMutateInput(t *testing.T) {
	l := mustParse(t, example)
	Stabilize(l, ModeAdjacent)
	if l.String() != example {
		t.Fatalf("initial layout mutated:\n%s", l)
	}
}

func TestFirstGenerationsAdjacent(t *testing.T) {
	l := mustParse(t, example)
	next, _ := core.Step[Seat](l, Adjacent, AdjacencyRule)
	if strings.Contains(next.(*Layout).String(), "L") {
		t.Fatal("every empty seat should fill in the first generation")
	}
	next, _ = core.Step[Seat](next, Adjacent, AdjacencyRule)
	want := `#.LL.L#.##
#LLLLLL.L#
L.L.L..L..
#LLL.LL.L#
#.LL.LL.LL
#.LLLL#.##
..L.L.....
#LLLLLLLL#
#.LLLLLL.L
#.#LLLL.##
`
	if got := next.(*Layout).String(); got != want {
		t.Fatalf("second generation mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestFixedPointIdempotent(t *testing.T) {
	for _, m := range []Mode{ModeAdjacent, ModeVisible} {
		final, gens := StabilizeLayout(mustParse(t, example), m)
		if gens == 0 {
			t.Fatalf("%s: example should need at least one generation", m)
		}
		again, changed := core.Step[Seat](final, m.Strategy(), m.Rule())
		if changed || !again.(*Layout).Equal(final) {
			t.Fatalf("%s: stepping the terminal layout changed it", m)
		}
	}
}

func TestStabilizeDeterministic(t *testing.T) {
	r := rng.NewRNG(42)
	for i := 0; i < 5; i++ {
		text := r.Grid(20, 15, "LLL.")
		for _, m := range []Mode{ModeAdjacent, ModeVisible} {
			a, ga := StabilizeLayout(mustParse(t, text), m)
			b, gb := StabilizeLayout(mustParse(t, text), m)
			if ga != gb || !a.Equal(b) {
				t.Fatalf("%s: runs over the same layout diverged", m)
			}
		}
	}
}

func TestAllFloorStabilizesImmediately(t *testing.T) {
	final, gens := StabilizeLayout(mustParse(t, "....\n....\n...."), ModeAdjacent)
	if gens != 0 {
		t.Fatalf("expected no changing generations, got %d", gens)
	}
	if final.Population() != 0 {
		t.Fatalf("expected 0 occupied seats, got %d", final.Population())
	}
}

func TestVisibleCounts(t *testing.T) {
	cases := []struct {
		name string
		text string
		x, y int
		want int
	}{
		{"sees eight", ".......#.\n...#.....\n.#.......\n.........\n..#L....#\n....#....\n.........\n#........\n...#.....\n", 3, 4, 8},
		{"blocked by empty seat", ".............\n.L.L.#.#.#.#.\n.............\n", 1, 1, 0},
		{"gaps in every direction", ".##.##.\n#.#.#.#\n##...##\n...L...\n##...##\n#.#.#.#\n.##.##.\n", 3, 3, 0},
	}
	for _, tc := range cases {
		l := mustParse(t, tc.text)
		if got := Visible.Count(l, core.New(tc.x, tc.y)); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestAdjacentIgnoresOutsideCells(t *testing.T) {
	l := mustParse(t, "##\n##")
	for _, c := range []core.Coord{core.New(0, 0), core.New(1, 1)} {
		if got := Adjacent.Count(l, c); got != 3 {
			t.Fatalf("corner %v: expected 3, got %d", c, got)
		}
	}
	if _, ok := l.Lookup(core.New(-1, 0)); ok {
		t.Fatal("outside positions must not be part of the layout")
	}
	if _, ok := l.Lookup(core.New(0, 0, 0)); ok {
		t.Fatal("three-dimensional coordinates are not part of the layout")
	}
}

func TestRuleTransitions(t *testing.T) {
	cases := []struct {
		rule Rule
		in   Seat
		n    int
		want Seat
	}{
		{AdjacencyRule, Floor, 0, Floor},
		{AdjacencyRule, Floor, 8, Floor},
		{AdjacencyRule, Empty, 0, Occupied},
		{AdjacencyRule, Empty, 1, Empty},
		{AdjacencyRule, Occupied, 3, Occupied},
		{AdjacencyRule, Occupied, 4, Empty},
		{VisibilityRule, Occupied, 4, Occupied},
		{VisibilityRule, Occupied, 5, Empty},
	}
	for _, tc := range cases {
		if got := tc.rule.Next(tc.in, tc.n); got != tc.want {
			t.Errorf("threshold %d: %s with %d -> %s, want %s", tc.rule.Threshold, tc.in, tc.n, got, tc.want)
		}
	}
}

func TestParseRejectsUnknownCharacter(t *testing.T) {
	_, err := Parse("L.L\nL?L\n")
	var mie *core.MalformedInputError
	if !errors.As(err, &mie) {
		t.Fatalf("expected MalformedInputError, got %v", err)
	}
	if mie.Line != 2 || mie.Column != 2 || mie.Char != '?' {
		t.Fatalf("unexpected error position %+v", *mie)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("visible"); err != nil || m != ModeVisible {
		t.Fatalf("ParseMode(visible) = %q, %v", m, err)
	}
	if _, err := ParseMode("diagonal"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestUnknownModePanics(t *testing.T) {
	for _, m := range []Mode{"", "bogus"} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Stabilize with mode %q should panic", m)
				}
			}()
			Stabilize(mustParse(t, example), m)
		}()
	}
}

func TestNewDefaultsEmptyMode(t *testing.T) {
	s := New(mustParse(t, example), "")
	if s.cfg.Mode != ModeAdjacent {
		t.Fatalf("expected adjacent, got %q", s.cfg.Mode)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("New with an unknown mode should panic")
		}
	}()
	New(mustParse(t, example), "bogus")
}

func TestSimStopsAtFixedPoint(t *testing.T) {
	s := New(mustParse(t, example), ModeAdjacent)
	for i := 0; i < 100 && !s.Stable(); i++ {
		s.Step()
	}
	if !s.Stable() {
		t.Fatal("sim never stabilized")
	}
	if got := s.Layout().Population(); got != 37 {
		t.Fatalf("expected 37 occupied seats, got %d", got)
	}
	gen := s.Generation()
	s.Step()
	if s.Generation() != gen {
		t.Fatal("steps after the fixed point must be no-ops")
	}

	s.Reset(0)
	if s.Stable() || s.Generation() != 0 || s.Layout().String() != example {
		t.Fatal("Reset must restore the initial layout")
	}
	if len(s.Cells()) != 100 {
		t.Fatalf("expected 100 cells, got %d", len(s.Cells()))
	}
}

func TestRegisteredSimIsSeeded(t *testing.T) {
	factory, ok := core.Sims()["seating"]
	if !ok {
		t.Fatal("seating sim not registered")
	}
	a := factory(map[string]string{"w": "16", "h": "8", "mode": "visible"})
	if a.Size() != (core.Size{W: 16, H: 8}) {
		t.Fatalf("unexpected size %+v", a.Size())
	}
	a.Reset(5)
	first := append([]uint8(nil), a.Cells()...)
	a.Reset(5)
	if !slices.Equal(first, a.Cells()) {
		t.Fatal("reset with the same seed must reproduce the layout")
	}
}

func BenchmarkStabilizeAdjacent(b *testing.B) {
	l := mustParse(b, rng.NewRNG(1).Grid(90, 90, "LLL."))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Stabilize(l, ModeAdjacent)
	}
}

func BenchmarkStabilizeVisible(b *testing.B) {
	l := mustParse(b, rng.NewRNG(1).Grid(90, 90, "LLL."))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Stabilize(l, ModeVisible)
	}
}
