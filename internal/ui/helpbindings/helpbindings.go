// Package helpbindings renders the scrollable key binding panel.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/keymap"
	"github.com/llehouerou/weddingstory/internal/ui"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"global", "playback", "scenes", "rsvp"}

var categoryLabels = map[string]string{
	"global":   "General",
	"playback": "Story",
	"scenes":   "Scenes",
	"rsvp":     "RSVP Form",
}

// chrome is the rows used by the title, blank lines, footer and border.
const chrome = 6

// CloseMsg asks the host to hide the panel.
type CloseMsg struct{}

// Model holds the state for the help panel.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	scrollOffset int
}

// New creates a help panel listing every context.
func New() *Model {
	m := &Model{}
	m.SetContexts(categoryOrder)
	return m
}

// SetContexts sets which binding contexts to display.
func (m *Model) SetContexts(contexts []string) {
	m.bindings = nil
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	m.scrollOffset = 0
}

// Update scrolls the panel or closes it.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "?", "esc", "q":
		return m, func() tea.Msg { return CloseMsg{} }
	case "j", "down":
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case "k", "up":
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the bordered panel.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()

	lines := m.lines()
	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))

	var b strings.Builder
	b.WriteString(s.Title.Render("Help"))
	b.WriteString("\n\n")
	b.WriteString(strings.Join(lines[start:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(s.Subtle.Render("j/k scroll • ? or esc close"))

	return s.Card.BorderForeground(t.Primary).Render(b.String())
}

func (m *Model) lines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	keyWidth := 0
	for _, b := range m.bindings {
		keyWidth = max(keyWidth, len(keyLabel(b)))
	}

	var out []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				out = append(out, "")
			}
			out = append(out, headerStyle.Render(categoryLabels[b.Context]))
			current = b.Context
		}
		k := keyLabel(b)
		out = append(out, keyStyle.Render(k+strings.Repeat(" ", keyWidth-len(k)))+"  "+t.S().Base.Render(b.Description))
	}
	return out
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		if k == " " {
			k = "space"
		}
		keys[i] = k
	}
	if b.Action == keymap.ActionJump {
		return "1-9, 0"
	}
	return strings.Join(keys, ", ")
}

func (m *Model) visibleHeight() int {
	return max(m.Height()-chrome, 1)
}

func (m *Model) maxScroll() int {
	return max(len(m.lines())-m.visibleHeight(), 0)
}
