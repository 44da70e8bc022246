// Package tui provides the Bubble Tea front-end: the menus, the round
// itself, the results table and the help screen.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a round simulation tick. Round identifies the
// round the tick was scheduled for so ticks of an abandoned round are
// dropped.
type TickMsg struct {
	Round int
	Time  time.Time
}

// tickCmd returns a Bubble Tea command that sends a tick after delay.
func tickCmd(round int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Round: round, Time: t}
	})
}
