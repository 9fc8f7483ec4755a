package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all game modes",
	Long:  `Shows the registered game modes.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	games := registry.List()
	out := cmd.OutOrStdout()

	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available modes:")
	fmt.Fprintln(out)

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "TITLE")
	for _, g := range games {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'tetris play <id>' to play a mode.")
}
