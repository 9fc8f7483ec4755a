package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

var (
	flagDifficulty string
	flagObstacles  bool
	flagLogFile    string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game",
	Long: `Start a game. The mode defaults to classic tetris.

Controls:
  ←/→ or A/D   - Move
  ↑ or W       - Rotate clockwise
  ↓ or S       - Soft drop (+1 per row)
  Space        - Hard drop (+2 per row)
  C            - Hold / swap piece
  P/Esc        - Pause
  R            - New game
  Tab          - Session leaderboard
  B            - Back to menu (menu mode, when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy     - Level 1, 1000ms gravity
  normal   - Level 5, 700ms gravity
  hard     - Level 10, 400ms gravity
  extreme  - Level 15, 150ms gravity
  fixed    - Configured level, no speed-up

Examples:
  tetris play
  tetris play tetris_obstacles
  tetris play --obstacles --difficulty hard
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, extreme, fixed")
	playCmd.Flags().BoolVar(&flagObstacles, "obstacles", false, "Start with obstacle cells on the board")
	addSessionFlags(playCmd)
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := tetris.IDClassic
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagObstacles {
		gameID = tetris.IDObstacles
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'tetris list' to see available modes", gameID)
	}

	if err := applyGameConfig(flagConfig, flagDifficulty); err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := runtimeConfig()

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open leaderboard", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "mode", gameID, "seed", flagSeed, "difficulty", flagDifficulty)
	runErr := tui.Run(game, store, cfg, tui.Options{Player: playerName(), Logger: logger})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	cmd.Flags().StringVar(&flagPlayer, "player", "", "Name shown on the leaderboard (default: $USER)")
}

// applyGameConfig surfaces config problems before the alt screen takes
// over, then hands the settings to games created afterwards.
func applyGameConfig(path, preset string) error {
	if _, err := config.LoadTetris(path); err != nil {
		return err
	}
	if _, err := config.ParsePreset(preset); err != nil {
		return err
	}
	tetris.SetConfigPath(path)
	tetris.SetDifficultyPreset(preset)
	return nil
}

func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER")
}

// openLogger logs to path, or discards output when path is empty: the alt
// screen owns the terminal while a game runs.
func openLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "tetris",
	})
	return logger, func() { f.Close() }, nil
}
