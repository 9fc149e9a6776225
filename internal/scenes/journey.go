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

const replayButton = "[ ↺ Replay our story ]"

// tileWidths are the outer widths of photo tiles by size.
var tileWidths = map[content.PhotoSize]int{
	content.PhotoSmall:  16,
	content.PhotoMedium: 22,
	content.PhotoLarge:  30,
}

// Journey is the closing photo grid with a replay button.
type Journey struct {
	base
	journey content.Journey
	vp      viewport.Model
}

func newJourney(b base, inv *content.Invitation) *Journey {
	return &Journey{base: b, journey: inv.Journey, vp: viewport.New(0, 0)}
}

func (s *Journey) Title() string { return "Journey" }

func (s *Journey) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

func (s *Journey) SetSize(width, height int) {
	s.base.SetSize(width, height)
	// Heading, button and their spacing take four rows.
	s.vp.Width = width
	s.vp.Height = max(height-4, 1)
	s.vp.SetContent(s.grid())
}

func (s *Journey) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "up", "down", "k", "j", "pgup", "pgdown":
		if s.vp.TotalLineCount() <= s.vp.Height {
			return false, nil
		}
		var cmd tea.Cmd
		s.vp, cmd = s.vp.Update(msg)
		return true, cmd
	case "enter":
		return true, s.hooks.Restart
	}
	return false, nil
}

func (s *Journey) Click(x, y int) (bool, tea.Cmd) {
	if hit(s.View(), replayButton, x, y) {
		return true, s.hooks.Restart
	}
	return false, nil
}

// Reset scrolls back to the first row of photos.
func (s *Journey) Reset() { s.vp.GotoTop() }

// Rows flows the photos into rows no wider than width. A tile wider than
// the whole row still gets a row of its own.
func Rows(photos []content.Photo, width int) [][]content.Photo {
	var rows [][]content.Photo
	var row []content.Photo
	used := 0
	for _, p := range photos {
		w := tileWidths[p.Size]
		if len(row) > 0 && used+1+w > width {
			rows = append(rows, row)
			row, used = nil, 0
		}
		if len(row) > 0 {
			used++
		}
		row = append(row, p)
		used += w
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return rows
}

func tile(p content.Photo) string {
	st := styles.T().S()
	w := tileWidths[p.Size]
	inner := w - 4
	body := strings.Join([]string{
		st.Accent.Render(render.Truncate("▣ "+p.File, inner)),
		st.Italic.Render(render.Truncate(p.Caption, inner)),
		st.Subtle.Render(render.Truncate(p.Alt, inner)),
	}, "\n")
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		Width(w - 2).
		Render(body)
}

func (s *Journey) grid() string {
	rows := Rows(s.journey.Photos, max(s.Width()-2, 16))
	rendered := make([]string, len(rows))
	for i, row := range rows {
		tiles := make([]string, 0, 2*len(row))
		for j, p := range row {
			if j > 0 {
				tiles = append(tiles, " ")
			}
			tiles = append(tiles, tile(p))
		}
		rendered[i] = lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
	}
	return lipgloss.NewStyle().Width(s.Width()).Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, rendered...))
}

func (s *Journey) View() string {
	st := styles.T().S()
	heading := styles.TitleGradient(s.journey.Heading)
	button := st.Button.Render(replayButton)
	if s.Width() <= 0 || s.Height() <= 0 {
		return lines(heading, s.grid(), button)
	}
	center := lipgloss.NewStyle().Width(s.Width()).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Left,
		center.Render(heading),
		"",
		s.vp.View(),
		"",
		center.Render(button),
	)
}
