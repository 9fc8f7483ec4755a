package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"

	_ "github.com/vovakirdan/tui-tetris/internal/games/tetris"
)

func TestScoreboardRows(t *testing.T) {
	store, err := storage.Open()
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	for _, e := range []storage.ScoreEntry{
		{GameID: "tetris", Player: "ada", Score: 300, Lines: 4, Level: 1},
		{GameID: "tetris", Player: "bob", Score: 900, Lines: 12, Level: 5},
		{GameID: "tetris_obstacles", Player: "cy", Score: 50, Lines: 1, Level: 1},
	} {
		if _, err := store.SaveScore(e); err != nil {
			t.Fatalf("SaveScore: %v", err)
		}
	}

	sb := NewScoreboardModel(store, "tetris", 80, 24)
	rows := sb.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][2] != "900" || rows[1][1] != "ada" {
		t.Errorf("rows out of order: %v", rows)
	}
	if got := sb.statsLine(); !strings.Contains(got, "2 games") || !strings.Contains(got, "best 900") || !strings.Contains(got, "avg 600") || !strings.Contains(got, "16 lines") {
		t.Errorf("stats line = %q", got)
	}

	if len(registry.List()) < 2 {
		t.Skip("obstacle mode not registered")
	}
	sb, _ = sb.Update(tea.KeyMsg{Type: tea.KeyRight})
	if sb.GameID() != "tetris_obstacles" {
		t.Fatalf("next mode = %q", sb.GameID())
	}
	if rows := sb.Rows(); len(rows) != 1 || rows[0][1] != "cy" {
		t.Errorf("obstacle rows = %v", rows)
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	sb := NewScoreboardModel(nil, "tetris", 80, 24)
	back, _ := sb.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should return to the game")
	}
	quit, _ := sb.Update(runeKey('q'))
	if !quit.IsQuitting() {
		t.Error("q should quit")
	}
}
