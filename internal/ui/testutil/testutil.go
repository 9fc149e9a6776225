// Package testutil provides common testing utilities for UI components.
package testutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StripANSI removes ANSI escape codes so rendered output can be compared
// without style interference.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// ContainsLine checks if any line in the output contains the given substring.
func ContainsLine(output, substr string) bool {
	return LineIndex(output, substr) >= 0
}

// FindLine returns the first line containing the given substring, or empty string.
func FindLine(output, substr string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, substr) {
			return line
		}
	}
	return ""
}

// LineIndex returns the row of the first line containing substr, or -1.
func LineIndex(output, substr string) int {
	for i, line := range strings.Split(output, "\n") {
		if strings.Contains(line, substr) {
			return i
		}
	}
	return -1
}

// ColumnOf returns the display column and row where substr first appears in
// the unstyled output, or (-1, -1). Used to aim simulated mouse clicks.
func ColumnOf(output, substr string) (x, y int) {
	plain := StripANSI(output)
	for i, line := range strings.Split(plain, "\n") {
		if idx := strings.Index(line, substr); idx >= 0 {
			return ansi.StringWidth(line[:idx]), i
		}
	}
	return -1, -1
}
