package dots

// Chain is the ordered sequence of positions selected during one drag gesture.
// It is not a set: a single repeated position marks a closed loop.
type Chain []Pos

// Len returns the number of positions, counting the duplicate.
func (c Chain) Len() int {
	return len(c)
}

// Contains returns true if p appears anywhere in the chain.
func (c Chain) Contains(p Pos) bool {
	return c.indexOf(p) >= 0
}

func (c Chain) indexOf(p Pos) int {
	for i, q := range c {
		if q == p {
			return i
		}
	}
	return -1
}

// HasLoop returns true if any position appears more than once.
func (c Chain) HasLoop() bool {
	seen := make(map[Pos]struct{}, len(c))
	for _, p := range c {
		if _, ok := seen[p]; ok {
			return true
		}
		seen[p] = struct{}{}
	}
	return false
}

// Distinct returns the chain positions with duplicates removed,
// keeping first-occurrence order.
func (c Chain) Distinct() []Pos {
	seen := make(map[Pos]struct{}, len(c))
	out := make([]Pos, 0, len(c))
	for _, p := range c {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Clone returns a copy of the chain.
func (c Chain) Clone() Chain {
	if c == nil {
		return nil
	}
	out := make(Chain, len(c))
	copy(out, c)
	return out
}
