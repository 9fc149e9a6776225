package testutil

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Component is anything with a bubbletea Update/View pair that returns its
// own interface type from Update.
type Component[M any] interface {
	Update(msg tea.Msg) (M, tea.Cmd)
	View() string
}

// Harness wraps a component for testing, providing helpers to simulate
// user interactions and inspect state.
type Harness[M Component[M]] struct {
	model M
	cmds  []tea.Cmd
}

// NewHarness creates a test harness around m.
func NewHarness[M Component[M]](m M) *Harness[M] {
	return &Harness[M]{model: m}
}

// Model returns the wrapped component for type assertion when needed.
func (h *Harness[M]) Model() M {
	return h.model
}

// View returns the component's rendered content without styling.
func (h *Harness[M]) View() string {
	return StripANSI(h.model.View())
}

// ViewContains reports whether the unstyled view contains substr.
func (h *Harness[M]) ViewContains(substr string) bool {
	return strings.Contains(h.View(), substr)
}

// Send delivers msg and records the resulting command.
func (h *Harness[M]) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing key as runes.
func (h *Harness[M]) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (enter, escape, tab, etc.).
func (h *Harness[M]) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Type sends each rune of text as its own key press.
func (h *Harness[M]) Type(text string) {
	for _, r := range text {
		h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// Click sends a left-button press and release at (x, y).
func (h *Harness[M]) Click(x, y int) tea.Cmd {
	h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	return h.Send(tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness[M]) Commands() []tea.Cmd {
	return h.cmds
}

// ClearCommands clears the collected commands.
func (h *Harness[M]) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Flatten runs cmd and returns every message it produces, descending into
// batches and sequences. Commands for which keep returns false are not run;
// use it to skip tea.Tick timers.
func Flatten(cmd tea.Cmd, keep func(tea.Cmd) bool) []tea.Msg {
	if cmd == nil || (keep != nil && !keep(cmd)) {
		return nil
	}
	msg := cmd()
	var out []tea.Msg
	switch m := msg.(type) {
	case tea.BatchMsg:
		for _, c := range m {
			out = append(out, Flatten(c, keep)...)
		}
	case nil:
	default:
		out = append(out, m)
	}
	return out
}
