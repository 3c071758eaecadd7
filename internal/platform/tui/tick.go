// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, key latching, canvas downsampling and the
// SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a world simulation tick.
// ID names the model whose loop scheduled it, so a model ignores ticks left
// over from a world that has already been closed.
type TickMsg struct {
	At time.Time
	ID int64
}

var lastTickID atomic.Int64

func newTickID() int64 {
	return lastTickID.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 50
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, ID: id}
	})
}
