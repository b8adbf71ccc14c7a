package dots

// Snapshot captures the visible session state for rendering and replay checks.
type Snapshot struct {
	Size         int
	Colors       int
	Cells        [][]Color
	Chain        Chain
	Looped       bool
	Score        int
	Gained       int
	Gestures     int
	Loops        int
	BestDelta    int
	TotalCleared int
}

// Snapshot returns a copy of the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Size:         s.grid.Size(),
		Colors:       s.grid.Colors(),
		Cells:        s.grid.Cells(),
		Chain:        s.selection.Chain(),
		Looped:       s.selection.Looped(),
		Score:        s.score,
		Gained:       s.Gained(),
		Gestures:     s.gestures,
		Loops:        s.loops,
		BestDelta:    s.bestDelta,
		TotalCleared: s.totalCleared,
	}
}
