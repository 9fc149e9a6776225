// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for the story screen.
const (
	// ChromeHeight is the top row holding progress segments and buttons.
	ChromeHeight = 1

	// HintHeight is the bottom row holding the gesture hint.
	HintHeight = 1

	// SideMargin is the horizontal padding around scene text.
	SideMargin = 4

	// MinContentWidth is the narrowest text column scenes wrap to.
	MinContentWidth = 20

	// MaxContentWidth keeps lines readable on wide terminals.
	MaxContentWidth = 72

	// MinProgressBarWidth is the minimum width for the segmented bar.
	MinProgressBarWidth = 10
)

// SceneHeight returns the rows left for a scene in a window of height h.
func SceneHeight(h int) int {
	return max(h-ChromeHeight-HintHeight, 0)
}
