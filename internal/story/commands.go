package story

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// advanceCmd returns a command that sends AdvanceMsg after the scene duration.
func advanceCmd(version int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return AdvanceMsg{Version: version}
	})
}

// progressCmd returns a command that sends ProgressMsg after one poll interval.
func progressCmd(version int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return ProgressMsg{Version: version, At: t}
	})
}
