package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadTetris loads the game configuration.
// Search order: customPath -> ~/.tetris/configs/tetris.yaml ->
// ./configs/tetris.yaml -> embedded default -> DefaultTetrisConfig.
// Files are layered over the hardcoded defaults, so partial files work.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg := DefaultTetrisConfig()

	// An explicit path must exist and parse.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	for _, path := range searchPaths("tetris.yaml") {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultTetrisConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	if err := yaml.Unmarshal(defaultTetrisYAML, &cfg); err != nil {
		return DefaultTetrisConfig(), nil
	}
	return cfg, cfg.Validate()
}

// searchPaths lists the implicit config locations, user directory first.
func searchPaths(filename string) []string {
	var paths []string
	if p := userConfigPath(filename); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", filename))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetris", "configs", filename)
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Level presets set the starting gravity and keep progression on; the
// fixed preset turns progression off.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	if level := GravityLevelForPreset(preset); level > 0 {
		cfg.Gravity.Level = level
	}
}
