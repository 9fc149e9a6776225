package scenes

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/share"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

const mapButton = "[ ⌖ Open map ]"

// Venue names the place of the celebrations and offers a map link.
type Venue struct {
	base
	venue   content.Venue
	logger  *slog.Logger
	showMap bool
	qr      string
}

func newVenue(b base, inv *content.Invitation, logger *slog.Logger) *Venue {
	return &Venue{base: b, venue: inv.Venue, logger: logger}
}

func (s *Venue) Title() string { return "Venue" }

func (s *Venue) Update(tea.Msg) (Scene, tea.Cmd) { return s, nil }

// MapURL is the maps search link for the venue.
func (s *Venue) MapURL() string {
	return share.MapsURL(s.venue.MapsQuery)
}

// ShowingMap reports whether the map link panel is open.
func (s *Venue) ShowingMap() bool { return s.showMap }

func (s *Venue) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "o":
		s.toggleMap()
		return true, nil
	case "esc":
		if s.showMap {
			s.showMap = false
			return true, nil
		}
	}
	return false, nil
}

func (s *Venue) Click(x, y int) (bool, tea.Cmd) {
	if !s.showMap && hit(s.View(), mapButton, x, y) {
		s.toggleMap()
		return true, nil
	}
	return false, nil
}

func (s *Venue) toggleMap() {
	s.showMap = !s.showMap
	if s.showMap && s.qr == "" {
		// A QR failure only hides the code; the link is still shown.
		qr, err := share.QR(s.MapURL())
		if err != nil {
			s.logger.Warn("map QR code failed", "err", err)
		}
		s.qr = qr
	}
}

func (s *Venue) View() string {
	st := styles.T().S()
	w := s.ContentWidth()

	if s.showMap {
		link := st.Accent.Render(render.Truncate(s.MapURL(), w))
		qr := s.qr
		if qr != "" && lipgloss.Height(qr)+6 > s.Height() {
			qr = ""
		}
		return s.frame(lines(
			st.Heading.Render(s.venue.Name+", "+s.venue.Region),
			qr,
			link,
			st.Subtle.Render("scan or open the link • o to close"),
		))
	}

	return s.frame(lines(
		st.Muted.Render(render.Spaced(s.venue.Heading)),
		styles.TitleGradient(s.venue.Name),
		st.Accent.Render(render.Spaced(s.venue.Region)),
		st.Italic.Render(render.Wrap(s.venue.Caption, w)),
		st.Button.Render(mapButton),
	))
}
