package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// newTestModel returns a model whose board has two horizontally adjacent
// dots of the same color, and their positions.
func newTestModel(t *testing.T, store *storage.Store) (Model, dots.Pos, dots.Pos) {
	t.Helper()

	for seed := int64(1); seed <= 100; seed++ {
		m, err := NewModel(Options{
			Config: config.DefaultDotsConfig(),
			Store:  store,
			Seed:   seed,
			Width:  80,
			Height: 40,
		})
		if err != nil {
			t.Fatalf("NewModel() error = %v", err)
		}

		g := m.Session().Grid()
		for r := 0; r < g.Size(); r++ {
			for c := 0; c+1 < g.Size(); c++ {
				a, b := dots.P(r, c), dots.P(r, c+1)
				ca, _ := g.At(a)
				cb, _ := g.At(b)
				if ca == cb {
					return m, a, b
				}
			}
		}
	}
	t.Fatal("no board with an adjacent pair")
	return Model{}, dots.Pos{}, dots.Pos{}
}

// screenAt returns the terminal coordinates of the dot at p.
func screenAt(m Model, p dots.Pos) (int, int) {
	x, y := m.layout.Center(p)
	return x + m.layout.OriginX, y + m.layout.OriginY
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm, cmd
}

func TestModelMouseDrag(t *testing.T) {
	m, a, b := newTestModel(t, nil)

	ax, ay := screenAt(m, a)
	bx, by := screenAt(m, b)

	m, _ = update(t, m, mouse(tea.MouseActionPress, ax, ay))
	if !m.Session().Active() {
		t.Fatal("press on a dot did not start a chain")
	}
	m, _ = update(t, m, mouse(tea.MouseActionMotion, bx, by))
	if got := m.Session().Chain().Len(); got != 2 {
		t.Fatalf("chain length after drag = %d, want 2", got)
	}

	m, cmd := update(t, m, mouse(tea.MouseActionRelease, bx, by))
	if m.Session().Active() {
		t.Error("chain still active after release")
	}
	if got := m.Session().Score(); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
	if m.anim == nil || cmd == nil {
		t.Error("release did not start the animation")
	}
	if strings.Contains(m.View(), "score not saved") {
		t.Error("unexpected save error")
	}
}

func TestModelMotionWithoutPress(t *testing.T) {
	m, a, _ := newTestModel(t, nil)
	x, y := screenAt(m, a)

	m, _ = update(t, m, mouse(tea.MouseActionMotion, x, y))
	if m.Session().Active() {
		t.Error("hover started a chain")
	}
	m, _ = update(t, m, mouse(tea.MouseActionRelease, x, y))
	if m.Session().Score() != 0 {
		t.Error("release without press changed the score")
	}
}

func TestModelPressOutsideBoard(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, mouse(tea.MouseActionPress, 0, 0))
	if m.Session().Active() {
		t.Error("press outside the board started a chain")
	}
}

func TestModelKeyboardChain(t *testing.T) {
	m, a, _ := newTestModel(t, nil)

	// Walk the cursor to a
	for i := 0; i < a.Row; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	for i := 0; i < a.Col; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	if m.cursor != a {
		t.Fatalf("cursor = %v, want %v", m.cursor, a)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Session().Chain().Len(); got != 2 {
		t.Fatalf("chain length = %d, want 2", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.Session().Score(); got != 2 {
		t.Errorf("score = %d, want 2", got)
	}
}

func TestModelCursorStaysOnBoard(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.cursor != dots.P(0, 0) {
		t.Errorf("cursor = %v, want (0,0)", m.cursor)
	}
}

func TestModelCancel(t *testing.T) {
	m, a, b := newTestModel(t, nil)
	ax, ay := screenAt(m, a)
	bx, by := screenAt(m, b)

	m, _ = update(t, m, mouse(tea.MouseActionPress, ax, ay))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, bx, by))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.Session().Active() {
		t.Error("chain still active after cancel")
	}
	m, _ = update(t, m, mouse(tea.MouseActionRelease, bx, by))
	if m.Session().Score() != 0 {
		t.Error("cancelled chain scored")
	}
}

func TestModelAnimationTicks(t *testing.T) {
	m, a, b := newTestModel(t, nil)
	ax, ay := screenAt(m, a)
	bx, by := screenAt(m, b)

	m, _ = update(t, m, mouse(tea.MouseActionPress, ax, ay))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, bx, by))
	m, _ = update(t, m, mouse(tea.MouseActionRelease, bx, by))
	if !m.ticking {
		t.Fatal("model not ticking after release")
	}

	// One frame at the default rate is far shorter than the animation
	m, cmd := update(t, m, TickMsg{})
	if m.anim == nil || cmd == nil {
		t.Fatal("animation ended after one frame")
	}

	// A new press skips the rest of the animation
	m, _ = update(t, m, mouse(tea.MouseActionPress, ax, ay))
	if m.anim != nil {
		t.Error("press did not skip the animation")
	}
	m, cmd = update(t, m, TickMsg{})
	if m.ticking || cmd != nil {
		t.Error("ticking continued without an animation")
	}
}

func TestModelPersistsScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	m, a, b := newTestModel(t, store)
	ax, ay := screenAt(m, a)
	bx, by := screenAt(m, b)

	m, _ = update(t, m, mouse(tea.MouseActionPress, ax, ay))
	m, _ = update(t, m, mouse(tea.MouseActionMotion, bx, by))
	m, _ = update(t, m, mouse(tea.MouseActionRelease, bx, by))

	running, err := store.RunningScore(storage.DefaultGameID)
	if err != nil {
		t.Fatalf("RunningScore() error = %v", err)
	}
	if running != 2 {
		t.Errorf("running score = %d, want 2", running)
	}

	// Restart records the session gain as a history row
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	scores, err := store.TopScores(storage.DefaultGameID, 10)
	if err != nil {
		t.Fatalf("TopScores() error = %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 2 {
		t.Errorf("history = %+v, want one row of 2", scores)
	}

	// The new session continues from the saved running score
	if got := m.Session().Score(); got != 2 {
		t.Errorf("score after restart = %d, want 2", got)
	}
	if got := m.Session().Gained(); got != 0 {
		t.Errorf("gained after restart = %d, want 0", got)
	}
}

func TestModelScoreboardToggle(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showScores {
		t.Fatal("tab did not open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.showScores {
		t.Error("tab did not close the scoreboard")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 5})
	if !strings.Contains(m.View(), "Terminal too small") {
		t.Error("small terminal not reported")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command did not send QuitMsg")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}
