package config

import (
	"math"
	"time"
)

// DifficultyManager turns score and cleared lines into a gravity interval.
type DifficultyManager struct {
	cfg          DifficultyConfig
	gravity      GravityConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig, gravity GravityConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		gravity:      gravity,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none" && d.cfg.Progression.Type != ""
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(score, lines int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "lines":
		progress = float64(lines) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the gravity speed multiplier, 1.0 at the lowest level.
func (d *DifficultyManager) Speed(score, lines int) float64 {
	return 1.0 + d.Level(score, lines)*d.cfg.Scaling.SpeedMultiplier
}

// BaseInterval returns the fixed gravity delay for a level. Levels not
// listed in the config fall back to 1000ms minus StepMs per level.
func (d *DifficultyManager) BaseInterval(level int) time.Duration {
	ms, ok := d.gravity.IntervalsMs[level]
	if !ok {
		ms = 1000 - level*d.gravity.StepMs
	}
	if ms < d.gravity.MinIntervalMs {
		ms = d.gravity.MinIntervalMs
	}
	return time.Duration(ms) * time.Millisecond
}

// Interval returns the delay between gravity steps for the given level,
// shortened by progression and floored at MinIntervalMs.
func (d *DifficultyManager) Interval(level, score, lines int) time.Duration {
	base := d.BaseInterval(level)
	iv := time.Duration(float64(base) / d.Speed(score, lines))
	floor := time.Duration(d.gravity.MinIntervalMs) * time.Millisecond
	if iv < floor {
		iv = floor
	}
	return iv
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
