package dots

import (
	"math/rand"
	"testing"
)

func TestRefillFillsOnlyEmpties(t *testing.T) {
	g := mustGrid(t, loopBoard)
	chain := chainOf(P(0, 0), P(0, 1), P(1, 1), P(1, 0), P(0, 0))
	Resolve(chain, g)
	Collapse(g)
	collapsed := g.Clone()

	filled := Refill(g, rand.New(rand.NewSource(3)))

	if len(filled) != 9 {
		t.Errorf("filled %d cells, want 9", len(filled))
	}
	if HasEmpty(g) {
		t.Error("grid still has empty cells after refill")
	}
	wasFilled := make(map[Pos]bool)
	for _, p := range filled {
		wasFilled[p] = true
	}
	for _, p := range g.Positions() {
		before, _ := collapsed.At(p)
		after, _ := g.At(p)
		if before.IsEmpty() != wasFilled[p] {
			t.Errorf("%v: empty before=%v, reported filled=%v", p, before.IsEmpty(), wasFilled[p])
		}
		if !before.IsEmpty() && before != after {
			t.Errorf("%v: refill changed a dot from %d to %d", p, before, after)
		}
		if after < 0 || int(after) >= DefaultColors {
			t.Errorf("%v: color %d out of range", p, after)
		}
	}
}

func TestRefillDeterministic(t *testing.T) {
	a, _ := NewGrid(DefaultSize, DefaultColors)
	b, _ := NewGrid(DefaultSize, DefaultColors)

	Refill(a, rand.New(rand.NewSource(42)))
	Refill(b, rand.New(rand.NewSource(42)))

	if !a.Equal(b) {
		t.Error("same seed should produce the same board")
	}
}

func TestRefillUsesEveryColor(t *testing.T) {
	g, _ := NewGrid(20, DefaultColors)
	Refill(g, rand.New(rand.NewSource(5)))

	for c := Color(0); c < DefaultColors; c++ {
		if g.Count(c) == 0 {
			t.Errorf("color %d never drawn on a 400-cell board", c)
		}
	}
}
