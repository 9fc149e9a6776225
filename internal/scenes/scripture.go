package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// Scripture shows the vow poem. Long poems scroll with up/down.
type Scripture struct {
	base
	poem content.Scripture
	vp   viewport.Model
}

func newScripture(b base, inv *content.Invitation) *Scripture {
	return &Scripture{base: b, poem: inv.Scripture, vp: viewport.New(0, 0)}
}

func (s *Scripture) Title() string { return "Scripture" }

func (s *Scripture) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

func (s *Scripture) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.vp.Width = width
	s.vp.Height = height
	s.vp.SetContent(s.body())
}

// Scrollable reports whether the poem is taller than the scene.
func (s *Scripture) Scrollable() bool {
	return s.vp.TotalLineCount() > s.vp.Height
}

func (s *Scripture) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "k", "j", "pgup", "pgdown":
		if !s.Scrollable() {
			return false, nil
		}
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return true, cmd
	}
	return false, nil
}

// Reset scrolls back to the first stanza.
func (s *Scripture) Reset() { s.vp.GotoTop() }

func (s *Scripture) body() string {
	st := styles.T().S()
	w := s.Width()

	parts := []string{styles.TitleGradient(s.poem.Title), ""}
	for i, stanza := range s.poem.Stanzas {
		if i > 0 {
			parts = append(parts, st.Subtle.Render("❧"))
		}
		for _, line := range stanza {
			parts = append(parts, st.Italic.Render(line))
		}
	}
	parts = append(parts, "", st.Muted.Render(render.Divider(16)))
	for _, a := range s.poem.Attribution {
		parts = append(parts, st.Muted.Render(a))
	}

	block := lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(strings.Join(parts, "\n"))
	// Short poems sit in the middle of the scene.
	if h := lipgloss.Height(block); h < s.Height() {
		block = strings.Repeat("\n", (s.Height()-h)/2) + block
	}
	return block
}

func (s *Scripture) View() string {
	if s.Width() <= 0 || s.Height() <= 0 {
		return s.body()
	}
	return s.vp.View()
}
