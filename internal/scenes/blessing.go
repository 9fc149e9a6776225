package scenes

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// Blessing opens the invitation with the families' words.
type Blessing struct {
	base
	title    string
	blessing content.Blessing
}

func newBlessing(b base, inv *content.Invitation) *Blessing {
	return &Blessing{base: b, title: inv.Couple.Monogram, blessing: inv.Blessing}
}

func (s *Blessing) Title() string { return "Blessing" }

func (s *Blessing) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

func (s *Blessing) View() string {
	st := styles.T().S()
	w := s.ContentWidth()
	return s.frame(lines(
		styles.TitleGradient(s.title),
		st.Base.Render(render.Wrap(s.blessing.Text, w)),
		st.Muted.Render(render.Divider(min(w, 24))),
		st.Italic.Render(render.Wrap(s.blessing.Greeting, w)),
		st.Subtle.Render(render.Wrap(s.blessing.Translation, w)),
	))
}
