// Package registry maps game mode IDs to factories. Modes register from
// init(), so the CLI, the menu and the SSH server discover them without
// importing the game packages directly.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game is a playable mode driven at a fixed tick rate. Implementations
// hold pure game logic; the platform owns input mapping, timing and
// terminal output.
type Game interface {
	// ID returns the mode identifier ("tetris", "tetris_obstacles").
	// Used on the command line and as the leaderboard key.
	ID() string

	// Title returns the display name.
	Title() string

	// Reset loads configuration and starts a new game sized for the
	// screen in cfg, seeded with cfg.Seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick with the actions pressed
	// since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into dst.
	Render(dst *core.Screen)

	// State returns score, lines, level and the paused/over flags.
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a mode. It panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if id == "" {
		panic("registry: empty game id")
	}
	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns all registered modes sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a fresh instance of the mode with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
