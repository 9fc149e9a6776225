// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// RSVP operations
	OpRSVPSubmit   Op = "send RSVP"
	OpRSVPValidate Op = "check RSVP"

	// Calendar operations
	OpCalendarExport Op = "save calendar file"

	// Sharing
	OpShareLink Op = "build share link"
	OpShareQR   Op = "render QR code"

	// Startup
	OpContentLoad Op = "load invitation content"
	OpConfigLoad  Op = "load config"
	OpLogOpen     Op = "open log file"
	OpNotify      Op = "show notification"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context, such as the
// file or guest the operation was about.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
