package core

// Action represents a semantic game action, abstracted from physical keys.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H
	ActionRight        // Right arrow, D, L
	ActionUp           // Up arrow, W, K
	ActionDown         // Down arrow, S, J
	ActionQuit         // Q, Ctrl+C, window close
)

// ScanOrder lists the directional actions in the order they are applied every tick.
// A later entry overwrites an earlier one on the same axis.
var ScanOrder = [...]Action{ActionLeft, ActionRight, ActionUp, ActionDown}

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the snapshot of held actions for one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}
