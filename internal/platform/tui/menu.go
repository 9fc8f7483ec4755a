package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// MenuItem represents a selectable game mode in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// Selection is what the player picked in the menu.
type Selection struct {
	GameID     string
	Difficulty config.DifficultyPreset
}

// menuPresets are offered in this order; the empty preset keeps the
// configured level.
var menuPresets = []config.DifficultyPreset{
	"",
	config.DifficultyEasy,
	config.DifficultyNormal,
	config.DifficultyHard,
	config.DifficultyExtreme,
	config.DifficultyFixed,
}

// MenuKeyMap defines the key bindings for the start menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Easier key.Binding
	Harder key.Binding
	Select key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Easier, k.Harder, k.Select, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓", "down"),
		),
		Easier: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←", "easier"),
		),
		Harder: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→", "harder"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	presetCursor   int
	width          int
	height         int
	config         core.RuntimeConfig
	keys           MenuKeyMap
	help           help.Model
	quitting       bool
	selected       *Selection // Set when the player starts a game
	openScoreboard bool       // True if the player pressed Tab
}

// NewMenuModel creates a new menu model listing every registered mode.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return MenuModel{
		items:  items,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (MenuModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) MenuModel {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Easier):
		if m.presetCursor > 0 {
			m.presetCursor--
		}
	case key.Matches(msg, m.keys.Harder):
		if m.presetCursor < len(menuPresets)-1 {
			m.presetCursor++
		}
	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = &Selection{
				GameID:     m.items[m.cursor].GameID,
				Difficulty: menuPresets[m.presetCursor],
			}
		}
	case key.Matches(msg, m.keys.Scores):
		m.openScoreboard = true
	}
	return m
}

func presetLabel(p config.DifficultyPreset) string {
	switch p {
	case "":
		return "config default"
	case config.DifficultyFixed:
		return "fixed (no speed-up)"
	}
	return fmt.Sprintf("%s (level %d)", p, config.GravityLevelForPreset(p))
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("T E T R I S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Select a mode"), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := "  " + item.Title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.Title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	difficulty := fmt.Sprintf("Difficulty: ‹ %s ›", presetLabel(menuPresets[m.presetCursor]))
	b.WriteString(centerText(difficulty, m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the player's choice, or nil if none was made.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}
