// Package tui provides the Bubble Tea front-end for tui-snake.
// It handles the terminal UI loop, input mapping, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg carries the wall time of a frame.
type TickMsg time.Time

// frameInterval is the time between frames at tickRate fps. Rates below
// one are treated as one.
func frameInterval(tickRate int) time.Duration {
	return time.Second / time.Duration(max(tickRate, 1))
}

// nextFrame schedules the TickMsg for the frame after interval.
func nextFrame(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
