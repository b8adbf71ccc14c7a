package dots

// Selection tracks the chain being built during a single drag gesture.
// One Selection is reused across gestures: Finish hands the chain to the
// caller and leaves the tracker empty for the next Begin.
type Selection struct {
	grid   *Grid
	chain  Chain
	anchor Color
	looped bool // chain holds its one allowed duplicate
}

// NewSelection creates an empty selection over the given grid.
func NewSelection(g *Grid) *Selection {
	return &Selection{grid: g, anchor: Empty}
}

// Begin starts a new chain at pos, discarding any chain in progress.
// Returns false without changing state if pos is off the board or empty.
func (s *Selection) Begin(pos Pos) bool {
	if !s.grid.InBounds(pos) {
		return false
	}
	color := s.grid.colorAt(pos)
	if color.IsEmpty() {
		return false
	}

	s.chain = Chain{pos}
	s.anchor = color
	s.looped = false
	return true
}

// Extend tries to add pos to the chain and reports whether the chain changed.
//
// Moving back onto the second-to-last cell retracts the last one. Moving onto
// an adjacent unvisited cell of the anchor color appends it. Moving onto an
// adjacent cell already in the chain closes a loop; after that the chain is
// frozen until Finish. Everything else is ignored.
func (s *Selection) Extend(pos Pos) bool {
	if len(s.chain) == 0 {
		return s.Begin(pos)
	}
	if s.looped || !s.grid.InBounds(pos) {
		return false
	}

	n := len(s.chain)
	last := s.chain[n-1]
	if !pos.Adjacent(last) {
		return false
	}

	// Walk back along the path
	if n >= 2 && pos == s.chain[n-2] {
		s.chain = s.chain[:n-1]
		return true
	}

	if !s.chain.Contains(pos) {
		if s.grid.colorAt(pos) != s.anchor {
			return false
		}
		s.chain = append(s.chain, pos)
		return true
	}

	// Revisit of an earlier cell: the loop signal
	s.chain = append(s.chain, pos)
	s.looped = true
	return true
}

// Chain returns a copy of the chain in progress.
func (s *Selection) Chain() Chain {
	return s.chain.Clone()
}

// Active returns true while a chain is being built.
func (s *Selection) Active() bool {
	return len(s.chain) > 0
}

// Looped returns true once the chain has closed a loop.
func (s *Selection) Looped() bool {
	return s.looped
}

// Anchor returns the color of the first cell in the chain.
func (s *Selection) Anchor() (Color, bool) {
	if len(s.chain) == 0 {
		return Empty, false
	}
	return s.anchor, true
}

// Finish returns the finished chain and resets the selection.
func (s *Selection) Finish() Chain {
	chain := s.chain
	s.chain = nil
	s.anchor = Empty
	s.looped = false
	return chain
}
