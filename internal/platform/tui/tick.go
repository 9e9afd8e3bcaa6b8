// Package tui provides the Bubble Tea integration for falling rocks.
// It runs the tick loop, maps keys to commands and draws the screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a command that delivers the next tick. A rate of zero
// or less ticks as fast as the program loop allows; the simulation reads
// elapsed time, so the tick rate only changes how smooth it looks.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		return func() tea.Msg {
			return TickMsg(time.Now())
		}
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
