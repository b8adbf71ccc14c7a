package dots

// Resolution describes the effect of releasing a chain.
type Resolution struct {
	Cleared []Pos // Cleared positions in row-major order
	Delta   int   // Score gained
	Loop    bool  // Whole-color clear was triggered
	Color   Color // Anchor color of the chain, Empty for a no-op
}

// Resolve clears the cells selected by chain and returns what was cleared.
//
// Chains of one cell or fewer do nothing. A chain with a repeated position
// clears every cell of its anchor color on the board and scores the number
// cleared. Any other chain clears exactly its own cells and scores its length.
func Resolve(chain Chain, g *Grid) Resolution {
	if chain.Len() <= 1 {
		return Resolution{Color: Empty}
	}

	anchor, err := g.At(chain[0])
	if err != nil || anchor.IsEmpty() {
		return Resolution{Color: Empty}
	}

	res := Resolution{Color: anchor}

	if chain.HasLoop() {
		res.Loop = true
		for _, p := range g.Positions() {
			if g.colorAt(p) == anchor {
				g.cells[g.index(p)] = Empty
				res.Cleared = append(res.Cleared, p)
			}
		}
		res.Delta = len(res.Cleared)
		return res
	}

	marked := make(map[Pos]bool, chain.Len())
	for _, p := range chain.Distinct() {
		if g.InBounds(p) {
			marked[p] = true
		}
	}
	for _, p := range g.Positions() {
		if marked[p] {
			g.cells[g.index(p)] = Empty
			res.Cleared = append(res.Cleared, p)
		}
	}
	res.Delta = len(res.Cleared)
	return res
}
