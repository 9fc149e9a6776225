package scenes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/calendar"
	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/errmsg"
	"github.com/llehouerou/weddingstory/internal/share"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

const (
	saveButton  = "[ Save the date ]"
	shareButton = "[ Share ]"
)

// ExportedMsg reports the outcome of a calendar export.
type ExportedMsg struct {
	Path string
	Err  error
}

// ExportCmd writes the event's .ics file into dir.
func ExportCmd(dir string, ev content.Event, now func() time.Time) tea.Cmd {
	return func() tea.Msg {
		path, err := calendar.Export(dir, ev.FileName, calendar.FromContent(ev), now())
		return ExportedMsg{Path: path, Err: err}
	}
}

// ThankYou closes the story with gratitude, the calendar export and the
// share link.
type ThankYou struct {
	base
	thanks    content.ThankYou
	event     content.Event
	deps      Deps
	status    string
	failed    bool
	showShare bool
	qr        string
}

func newThankYou(b base, inv *content.Invitation, deps Deps) *ThankYou {
	return &ThankYou{base: b, thanks: inv.ThankYou, event: inv.Event, deps: deps}
}

func (s *ThankYou) Title() string { return "Thank you" }

// ShareURL is the WhatsApp link inviting others to view the invitation.
func (s *ThankYou) ShareURL() string {
	return share.WhatsAppURL(s.thanks.ShareText, s.thanks.ShareLink)
}

// CalendarURL is the Google Calendar template link for the event.
func (s *ThankYou) CalendarURL() string {
	return calendar.GoogleURL(calendar.FromContent(s.event))
}

// Status returns the last export message.
func (s *ThankYou) Status() string { return s.status }

func (s *ThankYou) Update(msg tea.Msg) (Scene, tea.Cmd) {
	if msg, ok := msg.(ExportedMsg); ok {
		if msg.Err != nil {
			s.deps.Logger.Error("calendar export failed", "err", msg.Err)
			s.status = errmsg.FormatWith(errmsg.OpCalendarExport, s.event.FileName, msg.Err)
			s.failed = true
			return s, nil
		}
		s.deps.Logger.Info("calendar exported", "path", msg.Path)
		s.status = "Saved " + msg.Path
		s.failed = false
	}
	return s, nil
}

func (s *ThankYou) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "c", "s":
		return true, s.export()
	case "w":
		s.toggleShare()
		return true, nil
	case "esc":
		if s.showShare {
			s.showShare = false
			return true, nil
		}
	}
	return false, nil
}

func (s *ThankYou) Click(x, y int) (bool, tea.Cmd) {
	if s.showShare {
		return false, nil
	}
	view := s.View()
	switch {
	case hit(view, saveButton, x, y):
		return true, s.export()
	case hit(view, shareButton, x, y):
		s.toggleShare()
		return true, nil
	}
	return false, nil
}

func (s *ThankYou) export() tea.Cmd {
	s.status = "Saving..."
	s.failed = false
	return ExportCmd(s.deps.ExportDir, s.event, s.deps.Now)
}

func (s *ThankYou) toggleShare() {
	s.showShare = !s.showShare
	if s.showShare && s.qr == "" {
		qr, err := share.QR(s.thanks.ShareLink)
		if err != nil {
			s.deps.Logger.Warn("share QR code failed", "err", err)
		}
		s.qr = qr
	}
}

func (s *ThankYou) View() string {
	st := styles.T().S()
	w := s.ContentWidth()

	if s.showShare {
		qr := s.qr
		if qr != "" && lipgloss.Height(qr)+8 > s.Height() {
			qr = ""
		}
		return s.frame(lines(
			st.Heading.Render("Share the invitation"),
			qr,
			st.Accent.Render(render.Truncate(s.thanks.ShareLink, w)),
			st.Muted.Render("WhatsApp: ")+st.Subtle.Render(render.Truncate(s.ShareURL(), w-10)),
			st.Muted.Render("Calendar: ")+st.Subtle.Render(render.Truncate(s.CalendarURL(), w-10)),
			st.Subtle.Render("w or esc to close"),
		))
	}

	status := ""
	if s.status != "" {
		style := st.Success
		if s.failed {
			style = st.Error
		}
		status = style.Render(render.Wrap(s.status, w))
	}

	return s.frame(lines(
		st.Muted.Render(render.Spaced(s.thanks.Heading)),
		styles.TitleGradient(s.thanks.Signature),
		st.Italic.Render(render.Wrap("“"+s.thanks.Quote+"”", w)),
		st.Subtle.Render("— "+s.thanks.QuoteAuthor),
		st.Button.Render(saveButton)+"  "+st.Button.Render(shareButton),
		status,
		st.Subtle.Render(s.thanks.Footer),
	))
}
