// Package rsvp validates and sends a guest's reply to the invitation.
package rsvp

import (
	"strconv"
	"strings"

	"github.com/rivo/uniseg"
)

const (
	MinNameLength = 2
	MinGuests     = 1
	MaxGuests     = 10
)

// Attendance is the guest's answer.
type Attendance string

const (
	Attending    Attendance = "yes"
	NotAttending Attendance = "no"
)

// Label returns the human readable answer.
func (a Attendance) Label() string {
	if a == NotAttending {
		return "Cannot attend"
	}
	return "Will attend"
}

// Submission is one RSVP.
type Submission struct {
	Name       string     `json:"name"`
	Guests     int        `json:"guests"`
	Attendance Attendance `json:"attendance"`
	Message    string     `json:"message,omitempty"`
}

// Field identifies a form field.
type Field string

const (
	FieldName       Field = "name"
	FieldGuests     Field = "guests"
	FieldAttendance Field = "attendance"
)

// FieldErrors maps a field to its validation message.
type FieldErrors map[Field]string

// Error implements error.
func (fe FieldErrors) Error() string {
	parts := make([]string, 0, len(fe))
	for _, f := range []Field{FieldName, FieldGuests, FieldAttendance} {
		if msg, ok := fe[f]; ok {
			parts = append(parts, string(f)+": "+msg)
		}
	}
	return strings.Join(parts, "; ")
}

// Validate checks a submission. It returns nil when the submission is valid.
func Validate(s Submission) FieldErrors {
	errs := FieldErrors{}
	if uniseg.GraphemeClusterCount(strings.TrimSpace(s.Name)) < MinNameLength {
		errs[FieldName] = "Name must be at least 2 characters"
	}
	switch {
	case s.Guests < MinGuests:
		errs[FieldGuests] = "At least 1 guest required"
	case s.Guests > MaxGuests:
		errs[FieldGuests] = "Maximum 10 guests"
	}
	if s.Attendance != Attending && s.Attendance != NotAttending {
		errs[FieldAttendance] = "Please choose yes or no"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ParseGuests parses the guest count field. Invalid input yields 0, which
// Validate reports.
func ParseGuests(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
