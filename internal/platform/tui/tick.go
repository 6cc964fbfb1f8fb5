// Package tui provides the Bubble Tea integration for the snake game.
// It owns the ticker, input mapping and terminal rendering around the
// pure engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine tick. Gen identifies the tick
// chain that produced it: the model bumps its generation whenever a
// chain must die (pause, restart), so a tick from a superseded chain
// arrives with a stale Gen and gets dropped instead of advancing the
// engine and re-arming a second, parallel chain.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that delivers the next TickMsg
// for the given chain generation after the given interval. The chain
// stops by not re-arming: on game over or pause no further command is
// returned.
func tickCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
