package scenes

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// DateTheme reveals the wedding date and the color theme.
type DateTheme struct {
	base
	date  content.Date
	theme content.Theme
}

func newDateTheme(b base, inv *content.Invitation) *DateTheme {
	return &DateTheme{base: b, date: inv.Date, theme: inv.Theme}
}

func (s *DateTheme) Title() string { return "Date" }

func (s *DateTheme) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

func (s *DateTheme) View() string {
	st := styles.T().S()

	day := lipgloss.JoinHorizontal(lipgloss.Center,
		st.Muted.Render(render.Spaced(s.date.Weekday)),
		"   ",
		styles.TitleGradient(s.date.Day),
		"   ",
		st.Muted.Render(render.Spaced(s.date.Month)),
	)

	chips := make([]string, len(s.theme.Colors))
	for i, c := range s.theme.Colors {
		chips[i] = styles.Swatch(c, 4)
	}

	return s.frame(lines(
		st.Italic.Render(s.date.Tagline),
		day,
		st.Accent.Render(s.date.Year),
		st.Muted.Render(render.Divider(24)),
		st.Subtle.Render(render.Spaced(s.theme.Label)),
		st.Heading.Render(s.theme.Name),
		strings.Join(chips, " "),
		st.Italic.Render(s.theme.Subtitle),
	))
}
