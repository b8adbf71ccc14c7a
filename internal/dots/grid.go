package dots

import (
	"fmt"
	"math/rand"
)

// Default board parameters.
const (
	DefaultSize   = 6
	DefaultColors = 5
	MinSize       = 2
)

// Grid is a fixed-size square board of colored cells.
// Cells are stored in row-major order: index = row*size + col.
type Grid struct {
	size   int
	colors int
	cells  []Color
}

// NewGrid creates a grid with every cell Empty.
func NewGrid(size, colors int) (*Grid, error) {
	if size < MinSize {
		return nil, fmt.Errorf("%w: %d (minimum %d)", ErrInvalidSize, size, MinSize)
	}
	if colors < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidColors, colors)
	}

	g := &Grid{
		size:   size,
		colors: colors,
		cells:  make([]Color, size*size),
	}
	for i := range g.cells {
		g.cells[i] = Empty
	}
	return g, nil
}

// NewRandomGrid creates a grid with every cell assigned a uniform-random color.
func NewRandomGrid(size, colors int, rng *rand.Rand) (*Grid, error) {
	g, err := NewGrid(size, colors)
	if err != nil {
		return nil, err
	}
	Refill(g, rng)
	return g, nil
}

// GridFromRows builds a grid from explicit rows of colors.
// The rows must form a square; use Empty for cleared cells.
func GridFromRows(colors int, rows [][]Color) (*Grid, error) {
	g, err := NewGrid(len(rows), colors)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != g.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, r, len(row), g.size)
		}
		for c, color := range row {
			if err := g.Set(P(r, c), color); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Size returns the board dimension N.
func (g *Grid) Size() int {
	return g.size
}

// Colors returns the number of dot colors K.
func (g *Grid) Colors() int {
	return g.colors
}

// index converts a position to a flat array index.
func (g *Grid) index(p Pos) int {
	return p.Row*g.size + p.Col
}

// InBounds returns true if the position is on the board.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.size && p.Col >= 0 && p.Col < g.size
}

// At returns the color at the given position.
func (g *Grid) At(p Pos) (Color, error) {
	if !g.InBounds(p) {
		return Empty, fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, g.size, g.size)
	}
	return g.cells[g.index(p)], nil
}

// Set writes a color at the given position.
// The grid is left unchanged when an error is returned.
func (g *Grid) Set(p Pos, color Color) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v on %dx%d board", ErrOutOfBounds, p, g.size, g.size)
	}
	if color != Empty && (color < 0 || int(color) >= g.colors) {
		return fmt.Errorf("%w: %d (want 0..%d or empty)", ErrInvalidColor, color, g.colors-1)
	}
	g.cells[g.index(p)] = color
	return nil
}

// colorAt is At without the bounds error, for callers that already validated p.
func (g *Grid) colorAt(p Pos) Color {
	return g.cells[g.index(p)]
}

// Positions returns every position in row-major order.
// A fresh slice is returned on each call.
func (g *Grid) Positions() []Pos {
	out := make([]Pos, 0, len(g.cells))
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			out = append(out, P(r, c))
		}
	}
	return out
}

// Count returns how many cells hold the given color.
func (g *Grid) Count(color Color) int {
	n := 0
	for _, c := range g.cells {
		if c == color {
			n++
		}
	}
	return n
}

// Cells returns a copy of the board as rows of colors.
func (g *Grid) Cells() [][]Color {
	rows := make([][]Color, g.size)
	for r := range rows {
		rows[r] = make([]Color, g.size)
		copy(rows[r], g.cells[r*g.size:(r+1)*g.size])
	}
	return rows
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Color, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		size:   g.size,
		colors: g.colors,
		cells:  cells,
	}
}

// Equal returns true if both grids have the same shape and colors.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size || g.colors != other.colors {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
