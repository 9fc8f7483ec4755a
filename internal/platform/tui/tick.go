// Package tui runs registered games inside Bubble Tea. It owns the tick
// loop, key bindings, the session leaderboard and the SSH front end; games
// stay free of any terminal dependency.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the model
// whose loop produced it, so a replaced game's pending tick is dropped.
type TickMsg struct {
	Time time.Time
	ID   int
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, id int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
