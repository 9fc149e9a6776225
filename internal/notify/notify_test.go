package notify

import (
	"errors"
	"strings"
	"testing"
)

func TestUrgencyValues(t *testing.T) {
	if UrgencyLow != 0 || UrgencyNormal != 1 || UrgencyCritical != 2 {
		t.Errorf("urgency values = %d/%d/%d, want 0/1/2", UrgencyLow, UrgencyNormal, UrgencyCritical)
	}
}

func TestRSVPConfirmed(t *testing.T) {
	tests := []struct {
		name      string
		guests    int
		attending bool
		want      string
	}{
		{"single guest attending", 1, true, "Thato, your RSVP for 1 guest has been sent to Koketso & Neo."},
		{"several guests", 3, true, "Thato, your RSVP for 3 guests has been sent to Koketso & Neo."},
		{"declining", 2, false, "Thato, your RSVP for 2 guests (not attending) has been sent to Koketso & Neo."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := RSVPConfirmed("Thato", "Koketso & Neo", tt.guests, tt.attending)
			if n.Body != tt.want {
				t.Errorf("Body = %q, want %q", n.Body, tt.want)
			}
			if n.Title != "RSVP sent" {
				t.Errorf("Title = %q", n.Title)
			}
		})
	}
}

func TestCmd(t *testing.T) {
	if Cmd(nil, Notification{}) != nil {
		t.Error("Cmd(nil) should return nil")
	}

	rec := &Recorder{}
	msg := Cmd(rec, Notification{Title: "hello"})()

	sent, ok := msg.(SentMsg)
	if !ok {
		t.Fatalf("got %T, want SentMsg", msg)
	}
	if sent.Err != nil || sent.ID != 1 {
		t.Errorf("SentMsg = %+v", sent)
	}
	if got := rec.Sent(); len(got) != 1 || !strings.EqualFold(got[0].Title, "hello") {
		t.Errorf("Sent() = %+v", got)
	}
}

func TestCmd_Error(t *testing.T) {
	rec := &Recorder{Err: errors.New("bus closed")}

	sent, _ := Cmd(rec, Notification{})().(SentMsg)

	if sent.Err == nil {
		t.Error("expected error")
	}
	if len(rec.Sent()) != 0 {
		t.Error("failed notification should not be recorded")
	}
}
