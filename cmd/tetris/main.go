// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available game modes
//	tetris play [mode]       - Play (default mode: tetris)
//	tetris menu              - Pick mode and difficulty from a menu
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--config <path>   - Use a custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Falling-block puzzle game for your terminal",
	Long: `Stack falling pieces, complete rows, and keep the board from
filling up.

Available commands:
  list     - Show the game modes
  play     - Play a game
  menu     - Pick mode and difficulty interactively
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --obstacles --difficulty hard
  tetris play --seed 42
  tetris serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
