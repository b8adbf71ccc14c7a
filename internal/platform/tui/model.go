package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dots/internal/config"
	"github.com/vovakirdan/tui-dots/internal/dots"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config config.DotsConfig
	Store  *storage.Store // Optional; nil disables persistence
	GameID string         // Storage key for scores
	Seed   int64          // 0 means time-based
	Logger *log.Logger    // Optional; nil discards logs
	Width  int            // Initial terminal width, if known
	Height int            // Initial terminal height, if known
}

// Model is the Bubble Tea model for one dots game.
type Model struct {
	opts    Options
	rng     *rand.Rand // Seeds each new session
	session *dots.Session
	layout  Layout
	theme   Theme
	keys    KeyMap
	help    help.Model
	logger  *log.Logger

	anim    *Animation
	ticking bool
	last    time.Time // Time of the previous animation tick

	cursor    dots.Pos
	mouseDown bool

	scores     ScoreboardModel
	showScores bool
	status     string

	width    int
	height   int
	quitting bool
}

// NewModel creates a model and its first session.
func NewModel(opts Options) (Model, error) {
	if opts.GameID == "" {
		opts.GameID = storage.DefaultGameID
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := opts.Config
	m := Model{
		opts:   opts,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		layout: NewLayout(cfg.Board.Size, cfg.View.CellWidth, cfg.View.CellHeight),
		theme:  NewTheme(cfg.Palette),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		width:  opts.Width,
		height: opts.Height,
	}

	m.help.Width = opts.Width

	session, err := m.newSession()
	if err != nil {
		return Model{}, err
	}
	m.session = session
	return m, nil
}

// newSession starts a fresh board, seeded from the model's random source.
func (m *Model) newSession() (*dots.Session, error) {
	cfg := m.opts.Config

	var keeper dots.ScoreKeeper
	if m.opts.Store != nil && cfg.Session.Persist {
		keeper = m.opts.Store.Keeper(m.opts.GameID)
	}

	session, err := dots.NewSession(dots.SessionConfig{
		Size:         cfg.Board.Size,
		Colors:       cfg.Board.Colors,
		InitialScore: cfg.Session.InitialScore,
	}, keeper, rand.New(rand.NewSource(m.rng.Int63())))
	if err != nil {
		return nil, fmt.Errorf("starting session: %w", err)
	}

	m.logger.Debug("session started",
		"game", m.opts.GameID,
		"size", cfg.Board.Size,
		"colors", cfg.Board.Colors,
		"score", session.Score(),
	)
	return session, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if tick, ok := msg.(TickMsg); ok {
		return m.handleTick(time.Time(tick))
	}
	if m.showScores {
		return m.updateScores(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Cancel()
		m.saveHistory()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		m.session.Cancel()
		m.mouseDown = false
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.GameID, m.width, m.height)
		m.showScores = true
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		return m.restart()

	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.mouseDown = false
		return m, nil

	case key.Matches(msg, m.keys.Select):
		m.anim = nil
		if m.session.Active() {
			return m.release()
		}
		m.session.PointerDown(m.cursor)
		return m, nil

	case key.Matches(msg, m.keys.Up):
		return m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		return m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		return m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		return m.moveCursor(0, 1)

	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	}

	return m, nil
}

// moveCursor moves the keyboard cursor, extending the chain while a
// gesture is active.
func (m Model) moveCursor(dr, dc int) (tea.Model, tea.Cmd) {
	next := dots.P(m.cursor.Row+dr, m.cursor.Col+dc)
	if next.Row < 0 || next.Row >= m.layout.Size || next.Col < 0 || next.Col >= m.layout.Size {
		return m, nil
	}
	m.cursor = next
	if m.session.Active() {
		m.session.PointerEnter(next)
	}
	return m, nil
}

// handleMouse maps mouse events onto pointer operations.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	pos, onBoard := m.layout.CellAt(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.mouseDown = true
		if onBoard {
			m.anim = nil
			m.cursor = pos
			m.session.PointerDown(pos)
		}

	case tea.MouseActionMotion:
		if !m.mouseDown || !onBoard {
			return m, nil
		}
		m.cursor = pos
		if !m.session.Active() {
			// Drag started outside the board
			m.session.PointerDown(pos)
			return m, nil
		}
		m.session.PointerEnter(pos)

	case tea.MouseActionRelease:
		if !m.mouseDown {
			return m, nil
		}
		m.mouseDown = false
		return m.release()
	}

	return m, nil
}

// release ends the current gesture and starts the release animation.
func (m Model) release() (tea.Model, tea.Cmd) {
	if !m.session.Active() {
		return m, nil
	}

	before := m.session.Grid().Cells()
	out, err := m.session.PointerUp()
	if err != nil {
		m.logger.Error("could not save score", "game", m.opts.GameID, "error", err)
		m.status = "score not saved: " + err.Error()
	} else {
		m.status = ""
	}

	m.logger.Debug("gesture resolved",
		"chain", out.Chain.Len(),
		"cleared", len(out.Cleared),
		"loop", out.Loop,
		"delta", out.Delta,
		"score", out.Score,
	)

	d := time.Duration(m.opts.Config.View.AnimationMS) * time.Millisecond
	m.anim = NewAnimation(before, out, d)
	if m.anim == nil || m.ticking {
		return m, nil
	}
	m.ticking = true
	m.last = time.Time{}
	return m, tickCmd(animationFPS)
}

// handleTick advances the release animation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.anim == nil {
		m.ticking = false
		return m, nil
	}

	dt := float32(1) / animationFPS
	if !m.last.IsZero() {
		dt = float32(now.Sub(m.last).Seconds())
	}
	m.last = now

	if m.anim.Update(dt) {
		m.anim = nil
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(animationFPS)
}

// restart records the finished session and deals a new board.
func (m Model) restart() (tea.Model, tea.Cmd) {
	m.session.Cancel()
	m.saveHistory()

	session, err := m.newSession()
	if err != nil {
		m.logger.Error("could not restart", "error", err)
		m.status = err.Error()
		return m, nil
	}
	m.session = session
	m.anim = nil
	m.mouseDown = false
	m.status = ""
	return m, nil
}

// saveHistory stores the points gained this session as a scoreboard row.
func (m *Model) saveHistory() {
	gained := m.session.Gained()
	if m.opts.Store == nil || gained <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.opts.GameID, gained); err != nil {
		m.logger.Error("could not save score history", "game", m.opts.GameID, "error", err)
		return
	}
	m.logger.Info("session recorded", "game", m.opts.GameID, "gained", gained)
}

// updateScores forwards messages to the scoreboard overlay.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
		m.help.Width = wsm.Width
	}

	var cmd tea.Cmd
	m.scores, cmd = m.scores.Update(msg)

	if m.scores.IsQuitting() {
		m.saveHistory()
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.Done() {
		m.showScores = false
	}
	return m, cmd
}

// saveScreenshot saves the current board, without styling, to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".dots", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.opts.GameID, timestamp))

	board := drawBoard(m.layout, m.boardView()).String()
	if err := os.WriteFile(path, []byte(board+"\n"), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.status = "screenshot saved to " + path
}

// boardView collects what the board canvas needs for this frame.
func (m Model) boardView() boardView {
	anchor, _ := m.session.Anchor()
	return boardView{
		cells:  m.session.Grid().Cells(),
		chain:  m.session.Chain(),
		anchor: anchor,
		cursor: m.cursor,
		anim:   m.anim,
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}

	minW, minH := m.layout.MinScreen()
	if m.width > 0 && m.height > 0 && (m.width < minW || m.height < minH) {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", minW, minH, m.width, m.height)
	}

	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")
	b.WriteString(m.theme.Board.Render(drawBoard(m.layout, m.boardView()).render(m.theme)))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.theme.Status.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// header renders the title and score line.
func (m Model) header() string {
	parts := []string{
		m.theme.Title.Render("DOTS"),
		m.theme.HUD.Render(fmt.Sprintf("Score %d", m.session.Score())),
		m.theme.HUD.Render(fmt.Sprintf("+%d", m.session.Gained())),
	}

	if m.session.Active() {
		anchor, _ := m.session.Anchor()
		chain := m.theme.Swatch(anchor)
		if m.opts.Config.View.ShowChainLength {
			chain += m.theme.HUD.Render(fmt.Sprintf(" x%d", len(m.session.Chain().Distinct())))
		}
		parts = append(parts, chain)
		if m.session.Looped() {
			parts = append(parts, m.theme.Loop.Render("LOOP"))
		}
	}
	return strings.Join(parts, "  ")
}

// Session returns the session being played.
func (m Model) Session() *dots.Session {
	return m.session
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release events
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok {
		fm.logger.Info("game finished", "score", fm.session.Score(), "gained", fm.session.Gained())
	}
	return nil
}
