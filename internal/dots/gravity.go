package dots

// Move records a dot that fell from one cell to another during a collapse.
type Move struct {
	From  Pos
	To    Pos
	Color Color
}

// Collapse lets every dot fall to the bottom of its column.
// Dots keep their relative order; empty cells end up at the top.
func Collapse(g *Grid) {
	CollapseMoves(g)
}

// CollapseMoves is Collapse that also reports every dot that changed rows.
// Moves are listed column by column, bottom to top.
func CollapseMoves(g *Grid) []Move {
	var moves []Move
	for col := 0; col < g.size; col++ {
		moves = collapseColumn(g, col, moves)
	}
	return moves
}

// collapseColumn compacts one column in a single bottom-up pass.
// write is the lowest row not yet holding a settled dot.
func collapseColumn(g *Grid, col int, moves []Move) []Move {
	write := g.size - 1
	for read := g.size - 1; read >= 0; read-- {
		from := P(read, col)
		color := g.colorAt(from)
		if color.IsEmpty() {
			continue
		}
		if read != write {
			to := P(write, col)
			g.cells[g.index(to)] = color
			g.cells[g.index(from)] = Empty
			moves = append(moves, Move{From: from, To: to, Color: color})
		}
		write--
	}
	return moves
}
