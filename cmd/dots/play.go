package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play dots in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Mouse      - Press on a dot, drag through neighbours, release to clear
  Arrows     - Move the cursor (hjkl and wasd also work)
  Space      - Grab at the cursor / release the chain
  Esc        - Drop the current chain
  R          - New board (records this session's score)
  Tab        - Score history
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - 4 colors
  normal - 5 colors
  hard   - 6 colors
  fixed  - Use the config file as-is

The running score is saved after every release and picked up again next
time you play.

Examples:
  dots play
  dots play --difficulty easy
  dots play --config ./my-dots.yaml
  dots play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagDifficulty)
	if err != nil {
		return err
	}

	// The TUI owns the terminal; logs go to a file
	var logOut io.Writer = io.Discard
	if logFile, logErr := openLogFile(); logErr == nil {
		defer logFile.Close()
		logOut = logFile
	} else {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", logErr)
	}
	logger, err := newLogger(logOut, "dots")
	if err != nil {
		return err
	}

	// Get terminal size before entering the alt screen
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without storage", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Store:  store,
		GameID: storage.DefaultGameID,
		Seed:   flagSeed,
		Logger: logger,
		Width:  width,
		Height: height,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
