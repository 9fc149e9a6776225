package rsvp

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// SubmitResultMsg contains the outcome of one submission attempt.
type SubmitResultMsg struct {
	Submission Submission
	Err        error
}

// SubmitCmd sends s once in the background.
func SubmitCmd(sender Sender, s Submission, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		err := sender.Send(ctx, s)
		return SubmitResultMsg{Submission: s, Err: err}
	}
}
