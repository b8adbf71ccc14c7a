package dots

import "math/rand"

// Refill assigns a uniform-random color to every empty cell, in row-major
// order, and returns the positions it filled.
func Refill(g *Grid, rng *rand.Rand) []Pos {
	var filled []Pos
	for i, c := range g.cells {
		if !c.IsEmpty() {
			continue
		}
		g.cells[i] = Color(rng.Intn(g.colors))
		filled = append(filled, P(i/g.size, i%g.size))
	}
	return filled
}

// HasEmpty returns true if any cell is Empty.
func HasEmpty(g *Grid) bool {
	for _, c := range g.cells {
		if c.IsEmpty() {
			return true
		}
	}
	return false
}
