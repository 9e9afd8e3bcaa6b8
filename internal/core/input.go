package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H - move one column left
	ActionRight          // Right arrow, D, L - move one column right
	ActionConfirm        // Enter - leave the end screen
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Esc, Q - end the round
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame carries the single command consumed by one simulation tick.
// It is a slot, not a queue: setting a new action replaces any action that
// has not been consumed yet.
type InputFrame struct {
	action Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// FrameOf creates a frame holding a.
func FrameOf(a Action) InputFrame {
	return InputFrame{action: a}
}

// Set stores a as the pending action, replacing the previous one.
func (f *InputFrame) Set(a Action) {
	f.action = a
}

// Has returns true if the pending action is a.
func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.action == a
}

// Action returns the pending action.
func (f InputFrame) Action() Action {
	return f.action
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.action = ActionNone
}

// Take returns the pending action and clears the frame.
func (f *InputFrame) Take() Action {
	a := f.action
	f.action = ActionNone
	return a
}
