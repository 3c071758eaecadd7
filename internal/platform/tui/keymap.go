package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tower/internal/core"
)

// Command is a platform request that never reaches the world.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandBack
	CommandScreenshot
	CommandRestart
)

// KeyMapper translates Bubble Tea key messages to world actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a directional action or a command.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, Command) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, CommandQuit
	case "esc":
		return core.ActionNone, CommandBack
	case "ctrl+s":
		return core.ActionNone, CommandScreenshot
	case "r":
		return core.ActionNone, CommandRestart

	case "left", "a", "h":
		return core.ActionLeft, CommandNone
	case "right", "d", "l":
		return core.ActionRight, CommandNone
	case "up", "w", "k":
		return core.ActionUp, CommandNone
	case "down", "s", "j":
		return core.ActionDown, CommandNone
	}

	return core.ActionNone, CommandNone
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionStats
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionStats
	}

	return MenuActionNone
}

// KeyLatch turns key presses into held-key snapshots.
// Terminals report presses and auto-repeats but no releases, so a key stays
// held for a fixed number of ticks after its last press. Pressing a direction
// releases the opposite one on the same axis.
type KeyLatch struct {
	hold int
	left map[core.Action]int
}

// NewKeyLatch creates a latch that holds keys for holdTicks ticks.
func NewKeyLatch(holdTicks int) *KeyLatch {
	if holdTicks <= 0 {
		holdTicks = 1
	}
	return &KeyLatch{
		hold: holdTicks,
		left: make(map[core.Action]int),
	}
}

// Press marks a directional action as held.
func (l *KeyLatch) Press(a core.Action) {
	if opp, ok := opposite(a); ok {
		delete(l.left, opp)
	}
	l.left[a] = l.hold
}

// Snapshot returns the input frame for the next tick.
func (l *KeyLatch) Snapshot() core.InputFrame {
	in := core.NewInputFrame()
	for a, n := range l.left {
		if n > 0 {
			in.Set(a)
		}
	}
	return in
}

// Tick ages every held key by one tick.
func (l *KeyLatch) Tick() {
	for a := range l.left {
		l.left[a]--
		if l.left[a] <= 0 {
			delete(l.left, a)
		}
	}
}

// Release drops every held key.
func (l *KeyLatch) Release() {
	clear(l.left)
}

func opposite(a core.Action) (core.Action, bool) {
	switch a {
	case core.ActionLeft:
		return core.ActionRight, true
	case core.ActionRight:
		return core.ActionLeft, true
	case core.ActionUp:
		return core.ActionDown, true
	case core.ActionDown:
		return core.ActionUp, true
	}
	return core.ActionNone, false
}
