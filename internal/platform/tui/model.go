package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Resizer is implemented by games that can follow a terminal resize
// without restarting.
type Resizer interface {
	Resize(width, height int)
}

// Leaderboarder is implemented by games that show where the player stands
// on the session leaderboard.
type Leaderboarder interface {
	SetBest(score int)
	SetRank(rank int)
}

// Options configures a Model beyond the runtime config.
type Options struct {
	// Player is recorded with each leaderboard entry.
	Player string
	// Logger receives game-over and storage events. Nil discards them.
	Logger *log.Logger
	// AllowMenu lets the player leave a paused or finished game with the
	// Menu key. Set by SessionModel.
	AllowMenu bool
}

// modelIDs hands out tick loop IDs.
var modelIDs atomic.Int64

// Model is the Bubble Tea model for running a game.
type Model struct {
	id         int
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	logger     *log.Logger
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	allowMenu  bool
	backToMenu bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		id:         int(modelIDs.Add(1)),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, boardHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		player:     opts.Player,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		allowMenu:  opts.AllowMenu,
	}
}

// boardHeight leaves the last terminal line for the help bar.
func boardHeight(screenH int) int {
	if screenH > 1 {
		return screenH - 1
	}
	return screenH
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	cfg := m.config
	cfg.ScreenH = boardHeight(cfg.ScreenH)
	m.game.Reset(cfg)
	m.publishBest()
	return tickCmd(m.config.TickRate, m.id)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case msg.String() == "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Scores):
		sb := NewScoreboardModel(m.store, m.game.ID(), m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, nil
	case m.allowMenu && key.Matches(msg, keys.Menu) && (m.gameState.GameOver || m.gameState.Paused):
		m.backToMenu = true
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// updateScoreboard routes input to the leaderboard while it is open. The
// game does not advance until the player returns.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scoreboard.Update(msg)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, boardHeight(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(msg.Width, boardHeight(msg.Height))
	}
	if m.scoreboard != nil {
		sb, _ := m.scoreboard.Update(msg)
		m.scoreboard = &sb
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate, m.id)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver && m.scoreSaved {
		// New game: other players may have raised the best meanwhile.
		m.scoreSaved = false
		m.publishBest()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.id)
}

// saveScore records a finished game on the session leaderboard.
func (m *Model) saveScore() {
	st := m.gameState
	m.logger.Info("game over",
		"game", m.game.ID(),
		"player", m.player,
		"score", st.Score,
		"lines", st.Lines,
		"level", st.Level,
	)
	if m.store == nil || st.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  st.Score,
		Lines:  st.Lines,
		Level:  st.Level,
	})
	if err != nil {
		m.logger.Error("could not save score", "error", err)
		return
	}

	if lb, ok := m.game.(Leaderboarder); ok {
		rank, err := m.store.Rank(m.game.ID(), st.Score)
		if err != nil {
			m.logger.Error("could not rank score", "error", err)
		} else {
			m.logger.Debug("score ranked", "game", m.game.ID(), "rank", rank)
			lb.SetRank(rank)
		}
	}
	m.publishBest()
}

// publishBest shows the best leaderboard score for the mode in the game.
func (m Model) publishBest() {
	lb, ok := m.game.(Leaderboarder)
	if !ok || m.store == nil {
		return
	}
	best, err := m.store.HighScore(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load best score", "error", err)
		return
	}
	lb.SetBest(best)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// BackToMenu returns true if the player asked to go back to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// ShowingScores reports whether the leaderboard is open.
func (m Model) ShowingScores() bool {
	return m.scoreboard != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
