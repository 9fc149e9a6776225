package scenes

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// Schedule lists the events of the day as a timeline.
type Schedule struct {
	base
	schedule content.Schedule
}

func newSchedule(b base, inv *content.Invitation) *Schedule {
	return &Schedule{base: b, schedule: inv.Schedule}
}

func (s *Schedule) Title() string { return "Schedule" }

func (s *Schedule) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

func (s *Schedule) View() string {
	st := styles.T().S()
	w := s.ContentWidth()

	timeWidth := 0
	for _, it := range s.schedule.Items {
		timeWidth = max(timeWidth, lipgloss.Width(it.Time))
	}

	rows := make([]string, 0, 2*len(s.schedule.Items))
	for i, it := range s.schedule.Items {
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(it.Color)).Render(it.Icon)
		when := st.Accent.Render(render.Pad(it.Time, timeWidth))
		textWidth := max(w-timeWidth-5, 10)
		rows = append(rows,
			when+"  "+icon+"  "+st.Title.Render(render.Truncate(it.Title, textWidth)),
			render.Pad("", timeWidth)+"  "+st.Subtle.Render("│")+"  "+st.Muted.Render(render.Truncate(it.Caption, textWidth)),
		)
		if i < len(s.schedule.Items)-1 {
			rows = append(rows, render.Pad("", timeWidth)+"  "+st.Subtle.Render("│"))
		}
	}

	return s.frame(lines(
		styles.TitleGradient(s.schedule.Heading),
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		st.Italic.Render(render.Wrap(s.schedule.Footer, w)),
	))
}
