package rsvp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const userAgent = "weddingstory/1.0"

// Sender delivers a submission. Each call is one attempt; callers do not retry.
type Sender interface {
	Send(ctx context.Context, s Submission) error
}

// payload is the outbound message, shaped like a mail template request.
type payload struct {
	ToName     string `json:"to_name"`
	FromName   string `json:"from_name"`
	GuestCount int    `json:"guest_count"`
	Attendance string `json:"attendance"`
	Message    string `json:"message"`
}

// HTTPSender posts submissions as JSON to an endpoint.
type HTTPSender struct {
	endpoint   string
	token      string
	recipient  string
	httpClient *http.Client
}

// NewHTTPSender creates a sender for endpoint. token is sent as a bearer
// token when set.
func NewHTTPSender(endpoint, token, recipient string, timeout time.Duration) *HTTPSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPSender{
		endpoint:  endpoint,
		token:     token,
		recipient: recipient,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Send posts the submission once.
func (h *HTTPSender) Send(ctx context.Context, s Submission) error {
	msg := s.Message
	if msg == "" {
		msg = "No additional message"
	}
	body, err := json.Marshal(payload{
		ToName:     h.recipient,
		FromName:   s.Name,
		GuestCount: s.Guests,
		Attendance: s.Attendance.Label(),
		Message:    msg,
	})
	if err != nil {
		return fmt.Errorf("encode rsvp: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}

// SimulatedSender accepts every submission after a fixed delay. It stands in
// when no endpoint is configured.
type SimulatedSender struct {
	Delay time.Duration
}

// Send waits for the delay or the context, whichever ends first.
func (s SimulatedSender) Send(ctx context.Context, _ Submission) error {
	if s.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.Delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
