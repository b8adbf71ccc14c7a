package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dots/internal/platform/tui"
	"github.com/vovakirdan/tui-dots/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear stored scores and the running score",
	Long: `Delete the score history and reset the running score to zero.

Examples:
  dots reset
  dots reset --user alice    # reset an SSH player`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().StringVar(&flagUser, "user", "", "Reset an SSH user instead of local play")
}

func runReset(_ *cobra.Command, _ []string) error {
	gameID := storage.DefaultGameID
	if flagUser != "" {
		gameID = tui.PlayerGameID(flagUser)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if err := store.ClearScores(gameID); err != nil {
		return err
	}
	fmt.Printf("Scores for %s cleared.\n", gameID)
	return nil
}
