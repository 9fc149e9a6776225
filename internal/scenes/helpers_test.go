package scenes

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/testutil"
)

const (
	testWidth  = 90
	testHeight = 40
)

var fixedNow = time.Date(2025, 10, 20, 12, 0, 0, 0, time.UTC)

func testInvitation(t *testing.T) *content.Invitation {
	t.Helper()
	inv, err := content.Load("")
	require.NoError(t, err)
	return inv
}

func testDeps() Deps {
	return Deps{Now: func() time.Time { return fixedNow }}
}

// build returns the sized scene at index.
func build(t *testing.T, index int, deps Deps) Scene {
	t.Helper()
	s := All(testInvitation(t), deps)[index]
	s.SetSize(testWidth, testHeight)
	return s
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press offers keys to the scene in order and returns the last command.
func press(s Scene, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = s.HandleKey(key(k))
	}
	return cmd
}

// typeText types text one rune at a time.
func typeText(s Scene, text string) {
	for _, r := range text {
		s.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// clickOn clicks the first occurrence of label in the scene's view.
func clickOn(t *testing.T, s Scene, label string) (bool, tea.Cmd) {
	t.Helper()
	x, y := testutil.ColumnOf(s.View(), label)
	require.GreaterOrEqual(t, y, 0, "label %q not in view", label)
	return s.Click(x, y)
}

func view(s Scene) string {
	return testutil.StripANSI(s.View())
}
