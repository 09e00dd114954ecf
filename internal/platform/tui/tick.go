// Package tui provides the Bubble Tea integration for snakepit.
// It handles the terminal UI loop, input mapping, and match orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// MoveMsg is sent when the snake should advance one cell.
type MoveMsg time.Time

// moveCmd returns a Bubble Tea command that fires after the current
// move wait. The wait depends on the speed preset and, in hardcore
// mode, shrinks with the score.
func moveCmd(wait time.Duration) tea.Cmd {
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return MoveMsg(t)
	})
}

// CountdownMsg is sent once per second during the pre-match countdown.
type CountdownMsg time.Time

func countdownCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return CountdownMsg(t)
	})
}
