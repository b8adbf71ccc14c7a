package dots

import (
	"fmt"
	"math/rand"
	"time"
)

// ScoreKeeper persists the running score between sessions.
type ScoreKeeper interface {
	// Load returns the score to start a session with.
	Load() (int, error)
	// Save stores the running score. Called after every resolved gesture.
	Save(score int) error
}

// SessionConfig holds the board parameters for a new session.
type SessionConfig struct {
	Size         int // Board dimension N
	Colors       int // Number of dot colors K
	InitialScore int // Starting score when no ScoreKeeper is supplied
}

// DefaultSessionConfig returns the classic 6x6 board with 5 colors.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Size:   DefaultSize,
		Colors: DefaultColors,
	}
}

// Outcome is the result of releasing the pointer.
type Outcome struct {
	Chain   Chain  // Chain that was released
	Cleared []Pos  // Cells cleared by the chain
	Moves   []Move // Dots that fell during the collapse
	Filled  []Pos  // Cells that received new dots
	Delta   int    // Score gained by this gesture
	Score   int    // Running score after this gesture
	Loop    bool   // Whole-color clear
	Color   Color  // Anchor color, Empty when nothing was cleared
}

// Session drives one game: a board, the gesture in progress and the score.
// It is not safe for concurrent use; callers serialise input events.
type Session struct {
	grid      *Grid
	selection *Selection
	rng       *rand.Rand
	keeper    ScoreKeeper

	score        int
	startScore   int
	gestures     int
	loops        int
	bestDelta    int
	totalCleared int
}

// NewSession creates a session with a random board.
// The starting score comes from keeper when one is given, otherwise from
// cfg.InitialScore. A nil rng is replaced by a time-seeded source.
func NewSession(cfg SessionConfig, keeper ScoreKeeper, rng *rand.Rand) (*Session, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	grid, err := NewRandomGrid(cfg.Size, cfg.Colors, rng)
	if err != nil {
		return nil, err
	}

	score := cfg.InitialScore
	if keeper != nil {
		loaded, loadErr := keeper.Load()
		if loadErr != nil {
			return nil, fmt.Errorf("dots: loading score: %w", loadErr)
		}
		score = loaded
	}
	if score < 0 {
		score = 0
	}

	return &Session{
		grid:       grid,
		selection:  NewSelection(grid),
		rng:        rng,
		keeper:     keeper,
		score:      score,
		startScore: score,
	}, nil
}

// PointerDown starts a gesture at pos.
func (s *Session) PointerDown(pos Pos) bool {
	return s.selection.Begin(pos)
}

// PointerEnter extends the gesture in progress with pos.
// It is ignored when no gesture is active.
func (s *Session) PointerEnter(pos Pos) bool {
	if !s.selection.Active() {
		return false
	}
	return s.selection.Extend(pos)
}

// PointerUp ends the gesture: the chain is resolved, the board collapses and
// refills, and the running score is saved. Board and score changes are kept
// even when saving fails; the error wraps ErrSaveFailed.
func (s *Session) PointerUp() (Outcome, error) {
	if !s.selection.Active() {
		return Outcome{Score: s.score, Color: Empty}, nil
	}

	chain := s.selection.Finish()
	res := Resolve(chain, s.grid)

	out := Outcome{
		Chain:   chain,
		Cleared: res.Cleared,
		Delta:   res.Delta,
		Loop:    res.Loop,
		Color:   res.Color,
	}
	if len(res.Cleared) > 0 {
		out.Moves = CollapseMoves(s.grid)
	}
	out.Filled = Refill(s.grid, s.rng)

	s.score += res.Delta
	s.gestures++
	s.totalCleared += len(res.Cleared)
	if res.Loop {
		s.loops++
	}
	if res.Delta > s.bestDelta {
		s.bestDelta = res.Delta
	}
	out.Score = s.score

	if s.keeper != nil {
		if err := s.keeper.Save(s.score); err != nil {
			return out, fmt.Errorf("%w: %w", ErrSaveFailed, err)
		}
	}
	return out, nil
}

// Cancel drops the gesture in progress without resolving it.
func (s *Session) Cancel() {
	s.selection.Finish()
}

// Active returns true while a gesture is in progress.
func (s *Session) Active() bool {
	return s.selection.Active()
}

// Chain returns a copy of the chain in progress.
func (s *Session) Chain() Chain {
	return s.selection.Chain()
}

// Looped returns true if the chain in progress has closed a loop.
func (s *Session) Looped() bool {
	return s.selection.Looped()
}

// Score returns the running score.
func (s *Session) Score() int {
	return s.score
}

// Gained returns the score earned since the session started.
func (s *Session) Gained() int {
	return s.score - s.startScore
}

// Grid returns a copy of the board.
func (s *Session) Grid() *Grid {
	return s.grid.Clone()
}

// ColorAt returns the color at pos on the live board.
func (s *Session) ColorAt(pos Pos) (Color, error) {
	return s.grid.At(pos)
}

// Size returns the board dimension.
func (s *Session) Size() int {
	return s.grid.Size()
}

// Anchor returns the color of the chain in progress.
func (s *Session) Anchor() (Color, bool) {
	return s.selection.Anchor()
}
