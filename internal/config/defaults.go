package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration: a 25x10 board
// with a 5 row obstacle-free buffer of which only the top row is hidden,
// level 1 gravity and line-based progression.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows:             25,
			Cols:             10,
			HiddenRows:       5,
			RenderHiddenRows: 1,
			Preview:          3,
			ClearFlashMs:     300,
		},
		Scoring: ScoringConfig{
			SoftDrop:       1,
			HardDropPerRow: 2,
			LineFactor:     50,
		},
		Gravity: GravityConfig{
			Level: 1,
			IntervalsMs: map[int]int{
				1:  1000,
				5:  700,
				10: 400,
				15: 150,
			},
			MinIntervalMs: 100,
			StepMs:        50,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}
