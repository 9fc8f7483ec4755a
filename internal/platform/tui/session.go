package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// difficultySetter is implemented by games with a per-instance preset.
type difficultySetter interface {
	SetDifficulty(preset string)
}

// SessionModel manages the full session flow: menu -> game -> menu.
// This is the top-level model for SSH sessions and the menu command.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	opts     Options
	menu     MenuModel
	scores   *ScoreboardModel
	game     *Model
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, opts Options) SessionModel {
	opts.AllowMenu = true
	return SessionModel{
		store:  store,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.scores != nil:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	menu, cmd := m.menu.Update(msg)
	m.menu = menu

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.menu.openScoreboard = false
		gameID := ""
		if len(m.menu.items) > 0 {
			gameID = m.menu.items[m.menu.cursor].GameID
		}
		sb := NewScoreboardModel(m.store, gameID, m.config.ScreenW, m.config.ScreenH)
		m.scores = &sb
		return m, nil

	case m.menu.Selected() != nil:
		sel := *m.menu.Selected()
		m.menu.selected = nil

		game, err := registry.Create(sel.GameID)
		if err != nil {
			// The menu only lists registered games.
			return m, nil
		}
		if ds, ok := game.(difficultySetter); ok {
			ds.SetDifficulty(string(sel.Difficulty))
		}

		cfg := m.config
		cfg.Seed = 0 // A fresh time-based seed per game
		gm := NewModel(game, m.store, cfg, m.opts)
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

// updateScores handles updates while the leaderboard is open from the menu.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	sb, cmd := m.scores.Update(msg)
	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}
	m.scores = &sb
	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = &gm
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.menu.config = m.config
		m.menu.width, m.menu.height = m.config.ScreenW, m.config.ScreenH
		return m, nil
	}
	if m.game.quitting {
		m.quitting = true
	}
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	switch {
	case m.quitting:
		return ""
	case m.game != nil:
		return m.game.View()
	case m.scores != nil:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewSessionModel(store, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
