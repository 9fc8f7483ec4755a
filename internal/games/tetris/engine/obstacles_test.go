package engine

import (
	"math/rand"
	"testing"
)

func TestGenerateObstacles(t *testing.T) {
	levels := []int{1, 3, 5, 10, 15, 20}
	for _, level := range levels {
		rng := rand.New(rand.NewSource(int64(level)))
		lo, hi := ObstacleRange(level)

		cells := GenerateObstacles(rng, level, DefaultRows, DefaultCols, DefaultHiddenRows)
		if len(cells) < lo || len(cells) > hi {
			t.Errorf("level %d: %d obstacles, want %d..%d", level, len(cells), lo, hi)
		}

		seen := make(map[Cell]bool)
		for _, c := range cells {
			if seen[c] {
				t.Errorf("level %d: duplicate cell %+v", level, c)
			}
			seen[c] = true
			if c.Row < DefaultHiddenRows || c.Row >= DefaultRows-2 {
				t.Errorf("level %d: row %d outside the playfield band", level, c.Row)
			}
			if c.Col < 0 || c.Col >= DefaultCols {
				t.Errorf("level %d: column %d out of range", level, c.Col)
			}
		}
	}
}

func TestObstacleRange(t *testing.T) {
	tests := []struct {
		level  int
		lo, hi int
	}{
		{1, 2, 4},
		{5, 5, 8},
		{10, 8, 12},
		{15, 12, 16},
		{0, 1, 1},
		{8, 4, 4},
	}
	for _, tt := range tests {
		lo, hi := ObstacleRange(tt.level)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("ObstacleRange(%d) = %d..%d, want %d..%d", tt.level, lo, hi, tt.lo, tt.hi)
		}
	}
}

func TestGenerateObstaclesCrowdedBoard(t *testing.T) {
	// One free cell in the band: placement gives up instead of looping.
	cells := GenerateObstacles(rand.New(rand.NewSource(1)), 15, 4, 1, 1)
	if len(cells) != 1 {
		t.Errorf("expected 1 obstacle on a single-cell band, got %d", len(cells))
	}
	if GenerateObstacles(rand.New(rand.NewSource(1)), 1, 3, 10, 2) != nil {
		t.Error("expected no obstacles when the band is empty")
	}
}
