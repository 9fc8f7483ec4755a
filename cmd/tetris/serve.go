package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeMode   string
	flagServePreset string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tetris SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own menu and games, and the SSH user name is
used on the leaderboard. All sessions share one leaderboard that lives as
long as the server runs.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

Examples:
  tetris serve                           # Listen on :23234 with auto-generated key
  tetris serve --ssh :2222               # Listen on port 2222
  tetris serve --mode tetris_obstacles   # Serve obstacle mode
  tetris serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	RunE: runServe,
}

func init() {
	def := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", def.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagServeMode, "mode", "", "Skip the menu and serve this mode to every session")
	serveCmd.Flags().StringVar(&flagServePreset, "difficulty", "", "Difficulty preset: easy, normal, hard, extreme, fixed")
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := applyGameConfig(flagConfig, flagServePreset); err != nil {
		return err
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		GameID:      flagServeMode,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Starting tetris SSH server on %s\n", cfg.Address)
	fmt.Fprintln(out, "Press Ctrl+C to stop")

	return server.ListenAndServe()
}
