// dots is a "connect same-colored dots" puzzle for the terminal.
//
// Usage:
//
//	dots play                - Play in this terminal
//	dots scores              - Show finished-session scores
//	dots reset               - Clear stored scores and the running score
//	dots serve               - Start SSH server for remote play
//	dots simulate            - Play random gestures headlessly
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.dots/scores.db)
//	--config <path>      - Use a custom config YAML
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/config"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dots",
	Short: "Dots - connect same-colored dots in your terminal",
	Long: `Dots is a terminal puzzle: drag across orthogonally adjacent dots of
one color to clear them. Close a loop to clear every dot of that color.
Cleared dots fall away and new ones drop in from the top.

Available commands:
  play      - Play in this terminal
  scores    - View finished-session scores
  reset     - Clear stored scores
  serve     - Start SSH server for remote play
  simulate  - Play random gestures without a terminal

Examples:
  dots play
  dots play --difficulty hard
  dots scores --limit 5
  dots serve --ssh :2222
  dots simulate --seed 42 --gestures 100`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dots/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger creates a logger writing to w at the level given by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens ~/.dots/dots.log for appending.
// The TUI owns the terminal, so interactive play logs here.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".dots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	return os.OpenFile(filepath.Join(dir, "dots.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

// loadConfig loads the game config and applies a difficulty preset.
func loadConfig(difficulty string) (config.DotsConfig, error) {
	cfg, err := config.LoadDots(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyPreset(&cfg, preset); err != nil {
		return cfg, err
	}
	return cfg, nil
}
