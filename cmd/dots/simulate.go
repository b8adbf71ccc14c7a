package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/dots"
)

var (
	flagGestures int
	flagSteps    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play random gestures without a terminal",
	Long: `Run a headless session of random gestures and print the final board.

Each gesture presses a random dot, wanders up to --steps random neighbours
and releases. With a fixed --seed the output is reproducible. The score is
not persisted.

Examples:
  dots simulate --seed 42
  dots simulate --seed 7 --gestures 1000 --steps 12`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGestures, "gestures", 100, "Number of gestures to play")
	simulateCmd.Flags().IntVar(&flagSteps, "steps", 8, "Maximum moves per gesture")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig("")
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr, "dots-sim")
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session, err := dots.NewSession(dots.SessionConfig{
		Size:         cfg.Board.Size,
		Colors:       cfg.Board.Colors,
		InitialScore: cfg.Session.InitialScore,
	}, nil, rand.New(rand.NewSource(rng.Int63())))
	if err != nil {
		return err
	}

	for i := 0; i < flagGestures; i++ {
		out, playErr := dots.PlayRandom(session, rng, flagSteps)
		if playErr != nil {
			return playErr
		}
		if out.Delta > 0 {
			logger.Debug("gesture", "n", i+1, "chain", out.Chain.Len(), "delta", out.Delta, "loop", out.Loop)
		}
	}

	snap := session.Snapshot()
	fmt.Printf("seed %d, %d gestures\n\n", seed, snap.Gestures)
	fmt.Println(formatBoard(snap.Cells))
	fmt.Println()
	fmt.Printf("Score: %d  Cleared: %d  Loops: %d  Best gesture: %d\n",
		snap.Score, snap.TotalCleared, snap.Loops, snap.BestDelta)
	return nil
}

// formatBoard prints colors as digits, one row per line.
func formatBoard(cells [][]dots.Color) string {
	var b strings.Builder
	for r, row := range cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, color := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			if color.IsEmpty() {
				b.WriteByte('.')
				continue
			}
			fmt.Fprintf(&b, "%d", color)
		}
	}
	return b.String()
}
