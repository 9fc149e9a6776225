package ui

import "github.com/charmbracelet/lipgloss"

// Base provides size and activity tracking shared by scenes.
// Embed it in a scene model to get the standard methods.
//
//	type Model struct {
//	    ui.Base
//	    opened bool
//	}
type Base struct {
	width, height int
	active        bool
}

// SetActive marks the component as the visible scene.
func (b *Base) SetActive(active bool) {
	b.active = active
}

// IsActive returns whether the component is the visible scene.
func (b Base) IsActive() bool {
	return b.active
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Place centers content in the component's area.
func (b Base) Place(content string) string {
	if b.width <= 0 || b.height <= 0 {
		return content
	}
	return lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, content)
}

// ContentWidth returns the width available for text, leaving a margin on
// each side and capping very wide terminals.
func (b Base) ContentWidth() int {
	return min(max(b.width-2*SideMargin, MinContentWidth), MaxContentWidth)
}
