package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultsMatchEmbeddedYAML(t *testing.T) {
	cfg, err := LoadTetris("")
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	def := DefaultTetrisConfig()
	if cfg.Board != def.Board || cfg.Scoring != def.Scoring {
		t.Errorf("embedded defaults differ: %+v vs %+v", cfg.Board, def.Board)
	}
	if len(cfg.Gravity.IntervalsMs) != len(def.Gravity.IntervalsMs) {
		t.Errorf("intervals = %v, want %v", cfg.Gravity.IntervalsMs, def.Gravity.IntervalsMs)
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := "board:\n  cols: 12\ngravity:\n  level: 10\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris: %v", err)
	}
	if cfg.Board.Cols != 12 || cfg.Gravity.Level != 10 {
		t.Errorf("overrides not applied: cols=%d level=%d", cfg.Board.Cols, cfg.Gravity.Level)
	}
	// Unset fields keep their defaults.
	if cfg.Board.Rows != 25 || cfg.Scoring.LineFactor != 50 {
		t.Errorf("defaults lost: rows=%d factor=%d", cfg.Board.Rows, cfg.Scoring.LineFactor)
	}
}

func TestLoadTetrisErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for a missing explicit path")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [1, 2"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadTetris(bad); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("expected parse error, got %v", err)
	}

	tiny := filepath.Join(dir, "tiny.yaml")
	if err := os.WriteFile(tiny, []byte("board:\n  rows: 6\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := LoadTetris(tiny); err == nil {
		t.Error("expected validation error for a board with one visible row")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TetrisConfig)
		ok     bool
	}{
		{"defaults", func(*TetrisConfig) {}, true},
		{"narrow board", func(c *TetrisConfig) { c.Board.Cols = 4 }, false},
		{"narrowest board", func(c *TetrisConfig) { c.Board.Cols = 5 }, true},
		{"no hidden rows", func(c *TetrisConfig) { c.Board.HiddenRows = 0 }, true},
		{"no visible rows", func(c *TetrisConfig) { c.Board.Rows = c.Board.RenderHiddenRows }, false},
		{"negative render rows", func(c *TetrisConfig) { c.Board.RenderHiddenRows = -1 }, false},
		{"obstacle buffer too deep", func(c *TetrisConfig) { c.Board.HiddenRows = c.Board.Rows - 2 }, false},
		{"zero preview", func(c *TetrisConfig) { c.Board.Preview = 0 }, false},
		{"negative score", func(c *TetrisConfig) { c.Scoring.SoftDrop = -1 }, false},
		{"level zero", func(c *TetrisConfig) { c.Gravity.Level = 0 }, false},
		{"bad progression", func(c *TetrisConfig) { c.Difficulty.Progression.Type = "time" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.ok {
				t.Errorf("Validate() = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		level   int
		enabled bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 5, true},
		{DifficultyHard, 10, true},
		{DifficultyExtreme, 15, true},
		{DifficultyFixed, 1, false},
		{"", 1, true},
	}
	for _, tt := range tests {
		cfg := DefaultTetrisConfig()
		ApplyTetrisPreset(&cfg, tt.preset)
		if cfg.Gravity.Level != tt.level || cfg.Difficulty.Enabled != tt.enabled {
			t.Errorf("preset %q: level=%d enabled=%v, want %d/%v",
				tt.preset, cfg.Gravity.Level, cfg.Difficulty.Enabled, tt.level, tt.enabled)
		}
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(" Hard "); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(Hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestBaseInterval(t *testing.T) {
	cfg := DefaultTetrisConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Gravity)

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{5, 700 * time.Millisecond},
		{10, 400 * time.Millisecond},
		{15, 150 * time.Millisecond},
		{3, 850 * time.Millisecond},
		{19, 100 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := d.BaseInterval(tt.level); got != tt.want {
			t.Errorf("BaseInterval(%d) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestIntervalProgression(t *testing.T) {
	cfg := DefaultTetrisConfig()
	d := NewDifficultyManager(cfg.Difficulty, cfg.Gravity)

	start := d.Interval(1, 0, 0)
	if start != time.Second {
		t.Errorf("Interval at start = %v, want 1s", start)
	}
	mid := d.Interval(1, 0, 50)
	if mid >= start {
		t.Errorf("Interval should shrink with lines: %v -> %v", start, mid)
	}
	// Speed caps at 1 + multiplier.
	if got := d.Interval(1, 0, 1000); got != time.Second/3 {
		t.Errorf("Interval at max = %v, want %v", got, time.Second/3)
	}
	if got := d.Interval(15, 0, 1000); got != 100*time.Millisecond {
		t.Errorf("Interval should floor at min, got %v", got)
	}

	cfg.Difficulty.Enabled = false
	fixed := NewDifficultyManager(cfg.Difficulty, cfg.Gravity)
	if got := fixed.Interval(1, 0, 1000); got != time.Second {
		t.Errorf("fixed difficulty Interval = %v, want 1s", got)
	}
	if LevelName(10) != "LEVEL 10 - HARD" || LevelName(3) != "LEVEL 3" {
		t.Error("unexpected level names")
	}
}
