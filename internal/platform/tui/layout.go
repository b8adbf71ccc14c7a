package tui

import "github.com/vovakirdan/tui-dots/internal/dots"

// Board placement on screen. The view prints a title line and a blank line,
// then the board inside a rounded border with one column of padding.
const (
	headerLines  = 2
	boardOriginX = 2 // border + padding
	boardOriginY = headerLines + 1
)

// Layout maps between screen cells and board positions.
type Layout struct {
	OriginX int // Screen column of the board's top-left canvas cell
	OriginY int // Screen row of the board's top-left canvas cell
	CellW   int // Canvas columns per board cell
	CellH   int // Canvas rows per board cell
	Size    int // Board dimension
}

// NewLayout creates a layout for a size x size board.
func NewLayout(size, cellW, cellH int) Layout {
	return Layout{
		OriginX: boardOriginX,
		OriginY: boardOriginY,
		CellW:   max(cellW, 1),
		CellH:   max(cellH, 1),
		Size:    size,
	}
}

// Width returns the canvas width in columns.
func (l Layout) Width() int {
	return l.Size * l.CellW
}

// Height returns the canvas height in rows.
func (l Layout) Height() int {
	return l.Size * l.CellH
}

// Center returns the canvas coordinates where the dot at p is drawn.
func (l Layout) Center(p dots.Pos) (x, y int) {
	return p.Col*l.CellW + l.CellW/2, p.Row*l.CellH + l.CellH/2
}

// CellAt maps a screen coordinate to the board cell under it.
// Returns false if the coordinate is outside the board.
func (l Layout) CellAt(x, y int) (dots.Pos, bool) {
	cx := x - l.OriginX
	cy := y - l.OriginY
	if cx < 0 || cy < 0 || cx >= l.Width() || cy >= l.Height() {
		return dots.Pos{}, false
	}
	return dots.P(cy/l.CellH, cx/l.CellW), true
}

// MinScreen returns the smallest terminal size that fits the whole view.
func (l Layout) MinScreen() (w, h int) {
	// border + padding on both sides; header, border, help and status lines
	return l.Width() + 2*boardOriginX, l.Height() + headerLines + 2 + 3
}
