// Package dots implements the resolution engine of a "connect the dots" puzzle:
// the grid model, chain selection with loop detection, match resolution,
// gravity collapse and refill. It has no terminal or storage dependencies so
// the rules stay pure and testable.
package dots

import "fmt"

// Color identifies a dot color. Valid colors are in [0, K); Empty marks a
// cell that has been cleared and not yet refilled.
type Color int

// Empty is the color of a cleared cell.
const Empty Color = -1

// IsEmpty reports whether c is the Empty sentinel.
func (c Color) IsEmpty() bool {
	return c == Empty
}

// Pos is a cell position. Row grows downward, Col grows to the right.
// A position is the permanent identity of a cell.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance to another position.
func (p Pos) Manhattan(other Pos) int {
	dr := p.Row - other.Row
	dc := p.Col - other.Col
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	return dr + dc
}

// Adjacent returns true if other is an orthogonal neighbour of p.
func (p Pos) Adjacent(other Pos) bool {
	return p.Manhattan(other) == 1
}
