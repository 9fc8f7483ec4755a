package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/registry"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Scoreboard layout constants
const (
	maxScores     = 50
	tableMinWidth = 50
)

// ScoreboardKeyMap defines the key bindings for the leaderboard view.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next mode"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev mode"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab", "back to game"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the session leaderboard for each registered game
// mode. It is embedded in Model and never quits the program itself.
type ScoreboardModel struct {
	games      []registry.GameInfo
	gameCursor int
	store      *storage.Store
	scores     []storage.ScoreEntry
	stats      *storage.GameStats
	table      table.Model
	help       help.Model
	keys       ScoreboardKeyMap
	width      int
	height     int
	quitting   bool
	goingBack  bool
}

// NewScoreboardModel creates a leaderboard opened on the given game.
func NewScoreboardModel(store *storage.Store, gameID string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	for i, g := range m.games {
		if g.ID == gameID {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	m.reload()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Lines", Width: 6},
		{Title: "Lvl", Width: 4},
		{Title: "Time", Width: 8},
	}

	// Give spare width to the player column.
	if extra := m.width - 4 - tableMinWidth; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	height := m.height - 8
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// GameID returns the game whose scores are shown.
func (m ScoreboardModel) GameID() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.games[m.gameCursor].ID
}

// reload loads scores for the selected game.
func (m *ScoreboardModel) reload() {
	m.scores = nil
	m.stats = nil
	if m.store != nil && len(m.games) > 0 {
		if scores, err := m.store.TopScores(m.GameID(), maxScores); err == nil {
			m.scores = scores
		}
		if stats, err := m.store.GetGameStats(m.GameID()); err == nil {
			m.stats = stats
		}
	}
	m.updateTableRows()
}

// Rows returns the rendered table rows, best first.
func (m ScoreboardModel) Rows() []table.Row {
	return m.table.Rows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Lines),
			fmt.Sprintf("%d", s.Level),
			s.CreatedAt.Local().Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (ScoreboardModel, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor + 1) % len(m.games)
				m.reload()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			if len(m.games) > 0 {
				m.gameCursor = (m.gameCursor - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	title := "SESSION HIGH SCORES"
	if len(m.games) > 0 {
		title = fmt.Sprintf("SESSION HIGH SCORES - %s", m.games[m.gameCursor].Title)
	}
	b.WriteString(centerText(titleStyle.Render(title), m.width))
	b.WriteString("\n")
	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	b.WriteString(centerText(statsStyle.Render(m.statsLine()), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// statsLine summarizes every game recorded for the mode.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	games := "games"
	if m.stats.GamesCount == 1 {
		games = "game"
	}
	return fmt.Sprintf("%d %s  ·  best %d  ·  avg %.0f  ·  %d lines",
		m.stats.GamesCount, games, m.stats.HighScore, m.stats.AvgScore, m.stats.TotalLines)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nFinish a game to get on the board!")
	}
	return m.table.View()
}

// IsGoingBack reports whether the player asked to return to the game.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting reports whether the player asked to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers a (possibly multi-line) block within width.
func centerText(text string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, text)
}
