package dots

import (
	"math/rand"
	"testing"
)

func TestCollapseColumn(t *testing.T) {
	const e = Empty
	g := mustGrid(t, [][]Color{
		{1, e, 0, 0, 0},
		{e, e, 0, 0, 0},
		{2, 4, 0, 0, 0},
		{e, e, 0, 0, 0},
		{3, e, 0, 0, 0},
	})

	Collapse(g)

	tests := []struct {
		col  int
		want []Color
	}{
		{0, []Color{e, e, 1, 2, 3}},
		{1, []Color{e, e, e, e, 4}},
		{2, []Color{0, 0, 0, 0, 0}},
	}
	for _, tc := range tests {
		got := column(g, tc.col)
		for r := range tc.want {
			if got[r] != tc.want[r] {
				t.Errorf("column %d = %v, want %v", tc.col, got, tc.want)
				break
			}
		}
	}
}

func TestCollapseMovesReportsFalls(t *testing.T) {
	const e = Empty
	g := mustGrid(t, [][]Color{
		{1, 0, e},
		{e, 0, 0},
		{2, 0, 0},
	})

	moves := CollapseMoves(g)
	if len(moves) != 1 {
		t.Fatalf("expected 1 move, got %v", moves)
	}
	want := Move{From: P(0, 0), To: P(1, 0), Color: 1}
	if moves[0] != want {
		t.Errorf("move = %+v, want %+v", moves[0], want)
	}
	if got := column(g, 2); got[0] != e || got[1] != 0 || got[2] != 0 {
		t.Errorf("column 2 = %v, want [empty 0 0]", got)
	}
}

func TestCollapseIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		g, _ := NewRandomGrid(DefaultSize, DefaultColors, rng)
		for _, p := range g.Positions() {
			if rng.Intn(3) == 0 {
				_ = g.Set(p, Empty)
			}
		}

		Collapse(g)
		once := g.Clone()
		if moves := CollapseMoves(g); len(moves) != 0 {
			t.Errorf("second collapse moved %d dots", len(moves))
		}
		if !g.Equal(once) {
			t.Error("second collapse changed the grid")
		}
	}
}

func TestCollapseSettlesEveryColumn(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	g, _ := NewRandomGrid(DefaultSize, DefaultColors, rng)
	for _, p := range g.Positions() {
		if rng.Intn(2) == 0 {
			_ = g.Set(p, Empty)
		}
	}
	counts := make(map[Color]int)
	for _, p := range g.Positions() {
		c, _ := g.At(p)
		counts[c]++
	}

	Collapse(g)

	for col := 0; col < g.Size(); col++ {
		seenDot := false
		for _, c := range column(g, col) {
			if c.IsEmpty() && seenDot {
				t.Fatalf("column %d has an empty cell below a dot: %v", col, column(g, col))
			}
			if !c.IsEmpty() {
				seenDot = true
			}
		}
	}
	for color, n := range counts {
		if g.Count(color) != n {
			t.Errorf("color %d count changed from %d to %d", color, n, g.Count(color))
		}
	}
}
