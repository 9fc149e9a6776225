package helpbindings

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/weddingstory/internal/ui/testutil"
)

func newTestHelp(height int) *testutil.Harness[*Model] {
	m := New()
	m.SetSize(80, height)
	return testutil.NewHarness(m)
}

func assertClosed(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	if _, ok := testutil.ExecuteCmd(cmd).(CloseMsg); !ok {
		t.Fatal("expected CloseMsg")
	}
}

func TestHelp_CloseKeys(t *testing.T) {
	for _, key := range []string{"?", "q"} {
		h := newTestHelp(40)
		assertClosed(t, h.SendKey(key))
	}
	h := newTestHelp(40)
	assertClosed(t, h.SendSpecialKey(tea.KeyEscape))
}

func TestHelp_ListsCategories(t *testing.T) {
	h := newTestHelp(60)

	for _, label := range []string{"General", "Story", "Scenes", "RSVP Form"} {
		if !h.ViewContains(label) {
			t.Errorf("view missing %q", label)
		}
	}
	if !h.ViewContains("space") || !h.ViewContains("1-9, 0") {
		t.Error("key labels not humanized")
	}
}

func TestHelp_SetContexts(t *testing.T) {
	m := New()
	m.SetContexts([]string{"rsvp"})
	m.SetSize(80, 40)

	view := testutil.StripANSI(m.View())
	if strings.Contains(view, "Story") {
		t.Error("playback bindings shown for rsvp-only context")
	}
	if !strings.Contains(view, "Submit") {
		t.Error("rsvp bindings missing")
	}
}

func TestHelp_Scroll(t *testing.T) {
	h := newTestHelp(10)
	m := h.Model()

	h.SendKey("k")
	if m.scrollOffset != 0 {
		t.Fatalf("scrolled above top: %d", m.scrollOffset)
	}
	for range 100 {
		h.SendKey("j")
	}
	if m.scrollOffset != m.maxScroll() {
		t.Errorf("scrollOffset = %d, want max %d", m.scrollOffset, m.maxScroll())
	}
	h.SendSpecialKey(tea.KeyUp)
	if m.scrollOffset != m.maxScroll()-1 {
		t.Errorf("scroll up failed: %d", m.scrollOffset)
	}
}

func TestHelp_ZeroSize(t *testing.T) {
	if New().View() != "" {
		t.Error("unsized panel should render nothing")
	}
}
