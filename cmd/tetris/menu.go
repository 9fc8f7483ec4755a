package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty from a menu",
	Long: `Start in interactive menu mode.

Pick a mode with Up/Down and a difficulty with Left/Right, then press
Enter. Press B while paused or after game over to return to the menu.
Scores stay on the leaderboard until you quit.

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --player ada`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameConfig(flagConfig, ""); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		store = nil
	}

	runErr := tui.RunSession(store, runtimeConfig(), tui.Options{Player: playerName(), Logger: logger})
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running menu: %w", runErr)
	}
	return nil
}
