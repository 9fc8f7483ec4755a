// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield geometry.
type BoardConfig struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	HiddenRows       int `yaml:"hidden_rows"`        // Top rows kept free of obstacles
	RenderHiddenRows int `yaml:"render_hidden_rows"` // Top rows not drawn
	Preview          int `yaml:"preview"`            // Upcoming pieces shown
	ClearFlashMs     int `yaml:"clear_flash_ms"`
}

// ScoringConfig defines points per action.
type ScoringConfig struct {
	SoftDrop       int `yaml:"soft_drop"`
	HardDropPerRow int `yaml:"hard_drop_per_row"`
	LineFactor     int `yaml:"line_factor"` // Bonus is factor * n * n
}

// GravityConfig defines how fast pieces fall.
type GravityConfig struct {
	Level         int         `yaml:"level"`        // Starting level
	IntervalsMs   map[int]int `yaml:"intervals_ms"` // Fixed delay per level
	MinIntervalMs int         `yaml:"min_interval_ms"`
	StepMs        int         `yaml:"step_ms"` // Delay reduction per level for unlisted levels
}

// ObstacleConfig toggles pre-placed obstacle cells.
type ObstacleConfig struct {
	Enabled bool `yaml:"enabled"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = base gravity, 1.0 = fully scaled
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "lines", or "none"
	MaxAt int    `yaml:"max_at"` // Score or lines at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to gravity speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyExtreme DifficultyPreset = "extreme"
	DifficultyFixed   DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. The empty string means
// no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExtreme, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard, extreme or fixed)", s)
	}
}

// GravityLevelForPreset returns the starting gravity level for a preset,
// or 0 when the preset keeps the configured level.
func GravityLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 5
	case DifficultyHard:
		return 10
	case DifficultyExtreme:
		return 15
	default:
		return 0
	}
}

// LevelName returns the display label for a gravity level.
func LevelName(level int) string {
	switch level {
	case 1:
		return "LEVEL 1 - NORMAL"
	case 5:
		return "LEVEL 5 - MEDIUM"
	case 10:
		return "LEVEL 10 - HARD"
	case 15:
		return "LEVEL 15 - EXTREME"
	default:
		return fmt.Sprintf("LEVEL %d", level)
	}
}

// Validate reports configuration that cannot produce a playable board.
func (c TetrisConfig) Validate() error {
	var errs []error
	b := c.Board
	// The I piece spans four columns from cols/2-1.
	if b.Cols < 5 {
		errs = append(errs, fmt.Errorf("board.cols must be at least 5, got %d", b.Cols))
	}
	if b.HiddenRows < 0 {
		errs = append(errs, fmt.Errorf("board.hidden_rows must not be negative, got %d", b.HiddenRows))
	}
	if b.Rows < b.HiddenRows+3 {
		errs = append(errs, fmt.Errorf("board.hidden_rows must leave room for obstacles, got %d of %d rows", b.HiddenRows, b.Rows))
	}
	if b.RenderHiddenRows < 0 {
		errs = append(errs, fmt.Errorf("board.render_hidden_rows must not be negative, got %d", b.RenderHiddenRows))
	}
	if b.Rows < b.RenderHiddenRows+4 {
		errs = append(errs, fmt.Errorf("board.rows must leave at least 4 visible rows, got %d with %d hidden", b.Rows, b.RenderHiddenRows))
	}
	if b.Preview < 1 || b.Preview > 6 {
		errs = append(errs, fmt.Errorf("board.preview must be between 1 and 6, got %d", b.Preview))
	}
	if b.ClearFlashMs < 0 {
		errs = append(errs, fmt.Errorf("board.clear_flash_ms must not be negative, got %d", b.ClearFlashMs))
	}
	s := c.Scoring
	if s.SoftDrop < 0 || s.HardDropPerRow < 0 || s.LineFactor < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if c.Gravity.Level < 1 {
		errs = append(errs, fmt.Errorf("gravity.level must be at least 1, got %d", c.Gravity.Level))
	}
	if c.Gravity.MinIntervalMs <= 0 {
		errs = append(errs, fmt.Errorf("gravity.min_interval_ms must be positive, got %d", c.Gravity.MinIntervalMs))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "lines":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not one of score, lines, none", c.Difficulty.Progression.Type))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid tetris config: %w", err)
	}
	return nil
}
