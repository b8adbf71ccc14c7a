package dots

import "testing"

// loopBoard has nine cells of color 2, with a 2x2 block in the top-left corner.
var loopBoard = [][]Color{
	{2, 2, 0, 1, 3, 4},
	{2, 2, 1, 0, 4, 3},
	{0, 1, 2, 2, 2, 0},
	{3, 4, 0, 1, 3, 2},
	{4, 3, 1, 0, 2, 1},
	{1, 0, 3, 4, 0, 3},
}

// rowBoard has a run of color 1 at (2,2)..(2,4).
var rowBoard = [][]Color{
	{0, 2, 0, 3, 4, 0},
	{3, 4, 2, 0, 2, 3},
	{0, 2, 1, 1, 1, 0},
	{3, 4, 0, 2, 3, 2},
	{4, 3, 2, 0, 2, 4},
	{2, 0, 3, 4, 0, 3},
}

func mustGrid(t *testing.T, rows [][]Color) *Grid {
	t.Helper()
	g, err := GridFromRows(DefaultColors, rows)
	if err != nil {
		t.Fatalf("GridFromRows() failed: %v", err)
	}
	return g
}

func column(g *Grid, col int) []Color {
	out := make([]Color, g.Size())
	for r := range out {
		out[r], _ = g.At(P(r, col))
	}
	return out
}

// memKeeper is an in-memory ScoreKeeper.
type memKeeper struct {
	score   int
	saves   []int
	loadErr error
	saveErr error
}

func (k *memKeeper) Load() (int, error) {
	return k.score, k.loadErr
}

func (k *memKeeper) Save(score int) error {
	if k.saveErr != nil {
		return k.saveErr
	}
	k.score = score
	k.saves = append(k.saves, score)
	return nil
}
