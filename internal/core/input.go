package core

// Action is a semantic game action, decoupled from physical keys.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A
	ActionRight          // Right arrow, D
	ActionDown           // Down arrow, S: soft drop
	ActionRotate         // Up arrow, W
	ActionDrop           // Space: hard drop
	ActionHold           // C, Shift+Tab
	ActionPause          // P, Escape
	ActionRestart        // R, N: new game
	ActionQuit           // Q, Ctrl+C
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionDown:    "Down",
	ActionRotate:  "Rotate",
	ActionDrop:    "Drop",
	ActionHold:    "Hold",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}
