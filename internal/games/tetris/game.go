// Package tetris adapts the falling-block engine to the registry.Game
// interface: it turns fixed-rate ticks into gravity, maps input actions to
// engine commands, and draws the board into a core.Screen.
package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Game IDs registered by this package.
const (
	IDClassic   = "tetris"
	IDObstacles = "tetris_obstacles"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the config file used by games created afterwards.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are
// ignored; the CLI validates them with config.ParsePreset first.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// Game state names, also used in snapshots.
const (
	StatePlaying  = "playing"
	StateClearing = "clearing"
	StatePaused   = "paused"
	StateGameOver = "game_over"
)

// Game implements registry.Game on top of engine.Controller.
type Game struct {
	id        string
	obstacles bool
	preset    config.DifficultyPreset // Overrides the package preset when set

	runtime    core.RuntimeConfig
	cfg        config.TetrisConfig
	difficulty *config.DifficultyManager

	ctrl  *engine.Controller
	level int
	state string

	tickCount    int
	gravityTicks int // Ticks since the last gravity step

	flash      *engine.LineClear // Rows being flashed after a clear
	flashTicks int

	best int // Best leaderboard score for this mode
	rank int // Leaderboard rank of the finished game, 0 until known

	layout layout
}

// New creates the classic game.
func New() *Game {
	return &Game{id: IDClassic}
}

// NewObstacles creates a game that starts with obstacle cells on the board.
func NewObstacles() *Game {
	return &Game{id: IDObstacles, obstacles: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.obstacles {
		return "Tetris: Obstacles"
	}
	return "Tetris"
}

// SetDifficulty sets the preset for this game only, taking effect on the
// next Reset. Unknown names are ignored.
func (g *Game) SetDifficulty(preset string) {
	if p, err := config.ParsePreset(preset); err == nil {
		g.preset = p
	}
}

// Reset loads the config and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		cfg = config.DefaultTetrisConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	config.ApplyTetrisPreset(&cfg, preset)
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty, cfg.Gravity)

	board := engine.NewBoard(engine.BoardConfig{
		Rows:     cfg.Board.Rows,
		Cols:     cfg.Board.Cols,
		SpawnCol: cfg.Board.Cols/2 - 1,
		SpawnRow: 0,
		Preview:  cfg.Board.Preview,
	}, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
	g.ctrl = engine.NewController(board)
	g.ctrl.SetScoring(engine.Scoring{
		SoftDrop:       cfg.Scoring.SoftDrop,
		HardDropPerRow: cfg.Scoring.HardDropPerRow,
		LineFactor:     cfg.Scoring.LineFactor,
	})

	g.layout = computeLayout(runtime.ScreenW, runtime.ScreenH, cfg.Board)
	g.newGame()
}

// SetBest sets the leaderboard best shown next to the score.
func (g *Game) SetBest(score int) {
	g.best = score
}

// SetRank sets the leaderboard position shown when the game is over.
// It is cleared by the next new game.
func (g *Game) SetRank(rank int) {
	g.rank = rank
}

// Resize recomputes the layout for a new screen size. Play continues.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW, g.runtime.ScreenH = width, height
	g.layout = computeLayout(width, height, g.cfg.Board)
}

// newGame restarts play on the current board and config.
func (g *Game) newGame() {
	g.level = g.cfg.Gravity.Level
	g.tickCount = 0
	g.gravityTicks = 0
	g.flash = nil
	g.flashTicks = 0
	g.state = StatePlaying
	g.rank = 0

	var cells []engine.Cell
	if g.obstacles || g.cfg.Obstacles.Enabled {
		// A separate source keeps the piece sequence identical with and
		// without obstacles for the same seed.
		rng := rand.New(rand.NewSource(g.runtime.Seed + 1)) //#nosec G404 -- gameplay randomness
		b := g.cfg.Board
		cells = engine.GenerateObstacles(rng, g.level, b.Rows, b.Cols, b.HiddenRows)
	}
	if res := g.ctrl.NewGame(cells...); res.GameOver {
		g.state = StateGameOver
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var result core.StepResult

	switch g.state {
	case StateGameOver:
		if in.Has(core.ActionRestart) {
			g.newGame()
		}
		result.State = g.State()
		return result

	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		} else if in.Has(core.ActionRestart) {
			g.newGame()
		}
		result.State = g.State()
		return result

	case StateClearing:
		g.tickCount++
		g.flashTicks--
		if g.flashTicks <= 0 {
			g.flash = nil
			g.state = StatePlaying
			if g.ctrl.GameOver() {
				g.state = StateGameOver
			}
		}
		result.State = g.State()
		return result
	}

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		result.State = g.State()
		return result
	}
	if in.Has(core.ActionRestart) {
		g.newGame()
		result.State = g.State()
		return result
	}

	g.tickCount++

	for _, cmd := range commandsFor(in) {
		g.apply(cmd, &result)
		if g.state != StatePlaying {
			break
		}
	}

	if g.state == StatePlaying {
		g.gravityTicks++
		if g.gravityDue() {
			g.gravityTicks = 0
			g.apply(engine.CmdGravity, &result)
		}
	}

	result.State = g.State()
	return result
}

// commandsFor maps one frame of input to engine commands, in the order
// they are applied.
func commandsFor(in core.InputFrame) []engine.Command {
	var cmds []engine.Command
	if in.Has(core.ActionHold) {
		cmds = append(cmds, engine.CmdHold)
	}
	if in.Has(core.ActionRotate) {
		cmds = append(cmds, engine.CmdRotate)
	}
	if in.Has(core.ActionLeft) {
		cmds = append(cmds, engine.CmdMoveLeft)
	}
	if in.Has(core.ActionRight) {
		cmds = append(cmds, engine.CmdMoveRight)
	}
	if in.Has(core.ActionDown) {
		cmds = append(cmds, engine.CmdSoftDrop)
	}
	if in.Has(core.ActionDrop) {
		cmds = append(cmds, engine.CmdHardDrop)
	}
	return cmds
}

func (g *Game) apply(cmd engine.Command, result *core.StepResult) {
	res := g.ctrl.Apply(cmd)

	if res.Locked {
		result.Locked = true
		// A lock restarts the gravity timer for the new piece.
		g.gravityTicks = 0
	}
	if res.Clear != nil {
		result.Cleared += res.Clear.Lines
		if g.cfg.Board.ClearFlashMs > 0 {
			g.flash = res.Clear
			g.flashTicks = g.msToTicks(g.cfg.Board.ClearFlashMs)
			g.state = StateClearing
			return
		}
	}
	if res.GameOver {
		g.state = StateGameOver
	}
}

// GravityInterval returns the current delay between automatic down-steps.
func (g *Game) GravityInterval() time.Duration {
	return g.difficulty.Interval(g.level, g.ctrl.Board().Score(), g.ctrl.Lines())
}

func (g *Game) gravityDue() bool {
	return g.gravityTicks >= g.msToTicks(int(g.GravityInterval()/time.Millisecond))
}

func (g *Game) msToTicks(ms int) int {
	ticks := ms * g.runtime.TickRate / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.ctrl == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.ctrl.Board().Score(),
		Lines:    g.ctrl.Lines(),
		Level:    g.level,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register(IDClassic, func() registry.Game {
		return New()
	})
	registry.Register(IDObstacles, func() registry.Game {
		return NewObstacles()
	})
}
