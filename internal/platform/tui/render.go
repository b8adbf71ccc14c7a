package tui

import (
	"strings"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

// glyph is one canvas cell.
type glyph struct {
	r     rune
	kind  glyphKind
	color dots.Color
}

// canvas is the board drawn as a grid of glyphs before styling.
type canvas struct {
	w, h  int
	cells [][]glyph
}

func newCanvas(w, h int) *canvas {
	c := &canvas{w: w, h: h, cells: make([][]glyph, h)}
	for y := range c.cells {
		c.cells[y] = make([]glyph, w)
		for x := range c.cells[y] {
			c.cells[y][x] = glyph{r: ' ', color: dots.Empty}
		}
	}
	return c
}

// set places a glyph. Out-of-bounds coordinates are silently ignored.
func (c *canvas) set(x, y int, g glyph) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.cells[y][x] = g
}

// boardView is everything needed to draw one frame of the board.
type boardView struct {
	cells  [][]dots.Color
	chain  dots.Chain
	anchor dots.Color
	cursor dots.Pos
	anim   *Animation
}

// drawBoard paints dots, the chain line and the cursor onto a canvas.
func drawBoard(l Layout, v boardView) *canvas {
	c := newCanvas(l.Width(), l.Height())

	cells := v.cells
	if v.anim.Phase() == PhaseBurst {
		cells = v.anim.Board()
	}

	chosen := make(map[dots.Pos]bool, len(v.chain))
	for _, p := range v.chain {
		chosen[p] = true
	}

	// Links between consecutive chain cells
	for i := 1; i < len(v.chain); i++ {
		ax, ay := l.Center(v.chain[i-1])
		bx, by := l.Center(v.chain[i])
		link := glyph{kind: glyphLink, color: v.anchor}
		if ay == by {
			link.r = runeLinkH
			for x := min(ax, bx) + 1; x < max(ax, bx); x++ {
				c.set(x, ay, link)
			}
		} else {
			link.r = runeLinkV
			for y := min(ay, by) + 1; y < max(ay, by); y++ {
				c.set(ax, y, link)
			}
		}
	}

	for r, row := range cells {
		for col, color := range row {
			p := dots.P(r, col)
			x, y := l.Center(p)

			switch {
			case v.anim.Phase() == PhaseBurst && v.anim.cleared[p]:
				if v.anim.Bursting(p) {
					c.set(x, y, glyph{r: runeBurst, kind: glyphBurst, color: color})
				} else {
					c.set(x, y, glyph{r: runeFaded, kind: glyphFaded, color: dots.Empty})
				}
			case v.anim.Hidden(p), color.IsEmpty():
				c.set(x, y, glyph{r: runeFaded, kind: glyphFaded, color: dots.Empty})
			case chosen[p]:
				c.set(x, y, glyph{r: runeChosen, kind: glyphChosen, color: color})
			default:
				c.set(x, y, glyph{r: runeDot, kind: glyphDot, color: color})
			}
		}
	}

	// Keyboard cursor brackets around the dot
	if l.CellW >= 3 {
		x, y := l.Center(v.cursor)
		c.set(x-1, y, glyph{r: '[', kind: glyphCursor, color: dots.Empty})
		c.set(x+1, y, glyph{r: ']', kind: glyphCursor, color: dots.Empty})
	}

	return c
}

// render converts the canvas to a styled string.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func (c *canvas) render(t Theme) string {
	var sb strings.Builder
	sb.Grow(c.w*c.h*2 + c.h)

	for y := 0; y < c.h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < c.w {
			start := c.cells[y][x]

			var run strings.Builder
			for x < c.w {
				g := c.cells[y][x]
				if g.kind != start.kind || g.color != start.color {
					break
				}
				run.WriteRune(g.r)
				x++
			}

			sb.WriteString(t.style(start.kind, start.color).Render(run.String()))
		}
	}
	return sb.String()
}

// String returns the canvas without styling, for tests and screenshots.
func (c *canvas) String() string {
	var sb strings.Builder
	for y, row := range c.cells {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, g := range row {
			sb.WriteRune(g.r)
		}
	}
	return sb.String()
}
