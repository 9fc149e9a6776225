// Package notify sends desktop notifications for events the guest should
// notice outside the terminal, such as a confirmed RSVP.
package notify

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	appName      = "Wedding Story"
	desktopEntry = "weddingstory"
	iconName     = "emblem-favorite"
)

// Urgency represents notification priority levels per freedesktop spec.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// Notification contains data for a desktop notification.
type Notification struct {
	Title   string  // Summary text (required)
	Body    string  // Body text (optional)
	Icon    string  // Icon name or path (optional)
	Timeout int32   // ms, -1 = server default, 0 = never expire
	Urgency Urgency // Low, Normal, Critical
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are unavailable.
	Notify(n Notification) (uint32, error)
}

// RSVPConfirmed builds the notification shown after a response is sent.
func RSVPConfirmed(guest, couple string, guests int, attending bool) Notification {
	body := fmt.Sprintf("%s, your RSVP for %d guest", guest, guests)
	if guests != 1 {
		body += "s"
	}
	if attending {
		body += " has been sent to " + couple + "."
	} else {
		body += " (not attending) has been sent to " + couple + "."
	}
	return Notification{
		Title:   "RSVP sent",
		Body:    body,
		Icon:    iconName,
		Timeout: 5000,
		Urgency: UrgencyNormal,
	}
}

// SentMsg reports the outcome of a Cmd.
type SentMsg struct {
	ID  uint32
	Err error
}

// Cmd sends n off the UI goroutine. A nil notifier yields no command.
func Cmd(notifier Notifier, n Notification) tea.Cmd {
	if notifier == nil {
		return nil
	}
	return func() tea.Msg {
		id, err := notifier.Notify(n)
		return SentMsg{ID: id, Err: err}
	}
}

// Recorder is a Notifier that keeps every notification it receives.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
	Err  error
}

// Notify records n.
func (r *Recorder) Notify(n Notification) (uint32, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return 0, r.Err
	}
	r.sent = append(r.sent, n)
	return uint32(len(r.sent)), nil //nolint:gosec // test helper, never overflows
}

// Sent returns a copy of the recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.sent...)
}
