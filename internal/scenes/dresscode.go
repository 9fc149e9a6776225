package scenes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// DressCode shows the theme, the dress code and the palette.
type DressCode struct {
	base
	dress content.DressCode
}

func newDressCode(b base, inv *content.Invitation) *DressCode {
	return &DressCode{base: b, dress: inv.DressCode}
}

func (s *DressCode) Title() string { return "Dress code" }

func (s *DressCode) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

func (s *DressCode) View() string {
	st := styles.T().S()
	w := s.ContentWidth()

	label := func(l, v string) string {
		return lipgloss.JoinVertical(lipgloss.Center,
			st.Subtle.Render(render.Spaced(l)),
			st.Heading.Render(v),
		)
	}
	labels := lipgloss.JoinHorizontal(lipgloss.Top,
		label(s.dress.ThemeLabel, s.dress.Theme),
		"      ",
		label(s.dress.CodeLabel, s.dress.Code),
	)

	// Palette: one column per swatch, name under the chip.
	colWidth := 12
	if n := len(s.dress.Swatches); n > 0 {
		colWidth = min(max((w-n)/n, 6), 14)
	}
	cols := make([]string, 0, len(s.dress.Swatches))
	for _, sw := range s.dress.Swatches {
		cols = append(cols, lipgloss.NewStyle().Width(colWidth).Align(lipgloss.Center).Render(
			lipgloss.JoinVertical(lipgloss.Center,
				styles.Swatch(sw.Color, 4),
				styles.Swatch(sw.Color, 4),
				st.Muted.Render(render.Truncate(sw.Name, colWidth)),
			),
		))
	}

	return s.frame(lines(
		styles.TitleGradient(s.dress.Heading),
		labels,
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		st.Italic.Render(render.Wrap(s.dress.Caption, w)),
	))
}
