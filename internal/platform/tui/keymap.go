package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap defines the in-game key bindings. It doubles as the help.KeyMap
// for the help bar under the board.
type KeyMap struct {
	Left     key.Binding
	Right    key.Binding
	SoftDrop key.Binding
	Rotate   key.Binding
	HardDrop key.Binding
	Hold     key.Binding
	Pause    key.Binding
	Restart  key.Binding
	Scores   key.Binding
	Menu     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.HardDrop, k.Hold, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.SoftDrop, k.Rotate},
		{k.HardDrop, k.Hold},
		{k.Pause, k.Restart, k.Scores, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings: arrows or WASD to move and
// rotate, space to hard drop, C to hold.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		SoftDrop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "soft drop"),
		),
		Rotate: key.NewBinding(
			key.WithKeys("up", "w", "x"),
			key.WithHelp("↑/w", "rotate"),
		),
		HardDrop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "drop"),
		),
		Hold: key.NewBinding(
			key.WithKeys("c", "shift+tab"),
			key.WithHelp("c", "hold"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", "n"),
			key.WithHelp("r", "new game"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Menu: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.SoftDrop):
		return core.ActionDown, false
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate, false
	case key.Matches(msg, k.HardDrop):
		return core.ActionDrop, false
	case key.Matches(msg, k.Hold):
		return core.ActionHold, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}
