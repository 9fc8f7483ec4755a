package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("list: %v", err)
	}
	for _, want := range []string{"tetris", "tetris_obstacles", "Tetris: Obstacles"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("list output missing %q:\n%s", want, out.String())
		}
	}
}

func TestPlayRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown mode", []string{"play", "pacman"}, "unknown mode"},
		{"bad difficulty", []string{"play", "--difficulty", "insane"}, "unknown difficulty"},
		{"missing config", []string{"play", "--config", "/nonexistent/tetris.yaml"}, "config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd.SetArgs(tt.args)
			t.Cleanup(func() {
				rootCmd.SetArgs(nil)
				flagConfig, flagDifficulty = "", ""
			})
			err := rootCmd.Execute()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}
