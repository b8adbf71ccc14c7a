package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var (
	flagLimit int
	flagUser  string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show finished-session scores",
	Long: `Display the best finished sessions and the current running score.

A session is finished when you quit or start a new board; its score is the
number of dots cleared during it.

Examples:
  dots scores
  dots scores --limit 20
  dots scores --user alice    # scores of an SSH player`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().StringVar(&flagUser, "user", "", "Show scores of an SSH user instead of local play")
}

func runScores(_ *cobra.Command, _ []string) error {
	gameID := storage.DefaultGameID
	if flagUser != "" {
		gameID = tui.PlayerGameID(flagUser)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Printf("High Scores - %s\n", gameID)
	fmt.Println()
	fmt.Printf("Running score: %d\n", stats.RunningScore)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No finished sessions yet.")
		fmt.Println()
		fmt.Println("Play 'dots play' and quit or press R to record a session.")
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	fmt.Printf("Best: %d  Sessions: %d  Average: %.1f\n", stats.HighScore, stats.GamesCount, stats.AvgScore)
	return nil
}
