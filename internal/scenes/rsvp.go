package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/errmsg"
	"github.com/llehouerou/weddingstory/internal/notify"
	"github.com/llehouerou/weddingstory/internal/rsvp"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// RSVPState is the step the RSVP scene is on.
type RSVPState int

const (
	RSVPCard RSVPState = iota
	RSVPForm
	RSVPSending
	RSVPDone
)

type formField int

const (
	fieldName formField = iota
	fieldGuests
	fieldAttendance
	fieldMessage
	fieldSubmit
	fieldCount
)

const (
	submitLabel    = "[ Send RSVP ]"
	attendingLabel = "( Joyfully accept )"
	decliningLabel = "( Regretfully decline )"
)

// RSVP shows the RSVP card and, once opened, the response form.
type RSVP struct {
	base
	card      content.RSVP
	deps      Deps
	state     RSVPState
	name      textinput.Model
	guests    textinput.Model
	message   textinput.Model
	attending rsvp.Attendance
	focus     formField
	errs      rsvp.FieldErrors
	banner    string
	spinner   spinner.Model
	sent      rsvp.Submission
}

func newRSVP(b base, inv *content.Invitation, deps Deps) *RSVP {
	name := textinput.New()
	name.Placeholder = "Your full name"
	name.CharLimit = 80
	name.Prompt = ""

	guests := textinput.New()
	guests.Placeholder = "1"
	guests.CharLimit = 2
	guests.Prompt = ""
	guests.SetValue("1")

	message := textinput.New()
	message.Placeholder = "A note for the couple (optional)"
	message.CharLimit = 280
	message.Prompt = ""

	return &RSVP{
		base:      b,
		card:      inv.RSVP,
		deps:      deps,
		name:      name,
		guests:    guests,
		message:   message,
		attending: rsvp.Attending,
		spinner:   spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

func (s *RSVP) Title() string { return "RSVP" }

func (s *RSVP) SetSize(width, height int) {
	s.base.SetSize(width, height)
	s.name.Width = s.fieldWidth() - 2
	s.guests.Width = 4
	s.message.Width = s.fieldWidth() - 2
}

func (s *RSVP) fieldWidth() int {
	return min(s.ContentWidth(), 44)
}

// State returns the current step.
func (s *RSVP) State() RSVPState { return s.state }

// Capturing is true while the form or a submission owns the keyboard.
func (s *RSVP) Capturing() bool {
	return s.state == RSVPForm || s.state == RSVPSending
}

func (s *RSVP) Update(msg tea.Msg) (Scene, tea.Cmd) {
	switch msg := msg.(type) {
	case rsvp.SubmitResultMsg:
		return s, s.handleResult(msg)

	case spinner.TickMsg:
		if s.state != RSVPSending {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd
	}

	if s.state == RSVPForm {
		return s, s.updateFocused(msg)
	}
	return s, nil
}

func (s *RSVP) handleResult(msg rsvp.SubmitResultMsg) tea.Cmd {
	if s.state != RSVPSending {
		return nil
	}
	if msg.Err != nil {
		s.deps.Logger.Error("rsvp submit failed", "guest", msg.Submission.Name, "err", msg.Err)
		s.state = RSVPForm
		s.banner = errmsg.Format(errmsg.OpRSVPSubmit, msg.Err) + ". Please try again."
		return s.focusField(fieldSubmit)
	}

	s.deps.Logger.Info("rsvp sent", "guest", msg.Submission.Name,
		"guests", msg.Submission.Guests, "attendance", string(msg.Submission.Attendance))
	s.state = RSVPDone
	s.sent = msg.Submission
	s.banner = ""
	return notify.Cmd(s.deps.Notifier, notify.RSVPConfirmed(
		msg.Submission.Name,
		s.card.Recipient,
		msg.Submission.Guests,
		msg.Submission.Attendance == rsvp.Attending,
	))
}

func (s *RSVP) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch s.state {
	case RSVPCard:
		if msg.String() == "enter" {
			return true, s.openForm()
		}
		return false, nil
	case RSVPSending:
		return true, nil
	case RSVPForm:
		return true, s.formKey(msg)
	}
	return false, nil
}

func (s *RSVP) Click(x, y int) (bool, tea.Cmd) {
	view := s.View()
	switch s.state {
	case RSVPCard:
		if hit(view, s.card.CallToAction, x, y) {
			return true, s.openForm()
		}
	case RSVPForm:
		switch {
		case hit(view, submitLabel, x, y):
			return true, s.submit()
		case hit(view, attendingLabel, x, y):
			s.attending = rsvp.Attending
			return true, s.focusField(fieldAttendance)
		case hit(view, decliningLabel, x, y):
			s.attending = rsvp.NotAttending
			return true, s.focusField(fieldAttendance)
		}
		// Clicks elsewhere on the form are swallowed so they never navigate.
		return true, nil
	case RSVPSending:
		return true, nil
	}
	return false, nil
}

// openForm shows the form and asks playback to hold while the guest types.
func (s *RSVP) openForm() tea.Cmd {
	s.state = RSVPForm
	s.banner = ""
	return tea.Batch(s.hooks.Pause, s.focusField(fieldName), textinput.Blink)
}

func (s *RSVP) formKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		s.state = RSVPCard
		s.blurAll()
		return nil
	case "tab", "down":
		return s.focusField((s.focus + 1) % fieldCount)
	case "shift+tab", "up":
		return s.focusField((s.focus + fieldCount - 1) % fieldCount)
	case "enter":
		if s.focus == fieldSubmit || s.focus == fieldMessage {
			return s.submit()
		}
		return s.focusField(s.focus + 1)
	}

	if s.focus == fieldAttendance {
		switch msg.String() {
		case "y", "left":
			s.attending = rsvp.Attending
		case "n", "right":
			s.attending = rsvp.NotAttending
		case " ":
			if s.attending == rsvp.Attending {
				s.attending = rsvp.NotAttending
			} else {
				s.attending = rsvp.Attending
			}
		}
		return nil
	}

	if s.focus == fieldGuests && msg.Type == tea.KeyRunes && !isDigits(msg.Runes) {
		return nil
	}
	return s.updateFocused(msg)
}

func isDigits(runes []rune) bool {
	for _, r := range runes {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(runes) > 0
}

func (s *RSVP) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focus {
	case fieldName:
		s.name, cmd = s.name.Update(msg)
	case fieldGuests:
		s.guests, cmd = s.guests.Update(msg)
	case fieldMessage:
		s.message, cmd = s.message.Update(msg)
	}
	return cmd
}

func (s *RSVP) focusField(f formField) tea.Cmd {
	s.blurAll()
	s.focus = f
	switch f {
	case fieldName:
		return s.name.Focus()
	case fieldGuests:
		return s.guests.Focus()
	case fieldMessage:
		return s.message.Focus()
	}
	return nil
}

func (s *RSVP) blurAll() {
	s.name.Blur()
	s.guests.Blur()
	s.message.Blur()
}

// Submission returns the form's current values.
func (s *RSVP) Submission() rsvp.Submission {
	return rsvp.Submission{
		Name:       strings.TrimSpace(s.name.Value()),
		Guests:     rsvp.ParseGuests(s.guests.Value()),
		Attendance: s.attending,
		Message:    strings.TrimSpace(s.message.Value()),
	}
}

// submit validates and sends once. Invalid input stays on the form with
// the messages shown next to the fields.
func (s *RSVP) submit() tea.Cmd {
	sub := s.Submission()
	s.errs = rsvp.Validate(sub)
	if s.errs != nil {
		s.banner = ""
		return nil
	}
	s.state = RSVPSending
	s.banner = ""
	s.blurAll()
	return tea.Batch(
		s.spinner.Tick,
		rsvp.SubmitCmd(s.deps.Sender, sub, s.deps.SubmitTimeout),
	)
}

func (s *RSVP) View() string {
	switch s.state {
	case RSVPForm, RSVPSending:
		return s.frame(s.formView())
	case RSVPDone:
		return s.frame(s.doneView())
	}
	return s.frame(s.cardView())
}

// deadline renders the reply-by date with a relative hint.
func (s *RSVP) deadline() string {
	d := s.card.Deadline
	if d.IsZero() {
		return ""
	}
	rel := humanize.RelTime(s.deps.Now(), d, "left", "ago")
	return d.Format("January 2, 2006") + " (" + rel + ")"
}

func (s *RSVP) cardView() string {
	st := styles.T().S()
	w := s.ContentWidth()
	return lines(
		styles.TitleGradient(render.Spaced(s.card.Heading)),
		st.Muted.Render(render.Wrap(s.card.Prompt, w)),
		st.Accent.Render(s.deadline()),
		st.Button.Render(s.card.CallToAction),
		st.Subtle.Render("press enter to respond"),
	)
}

func (s *RSVP) formView() string {
	st := styles.T().S()
	fieldWidth := s.fieldWidth()

	row := func(f formField, label, input string, errField rsvp.Field) string {
		l := st.Muted.Render(label)
		if s.focus == f && s.state == RSVPForm {
			l = st.Focused.Render(" " + label + " ")
		}
		out := l + "\n" + input
		if msg, ok := s.errs[errField]; ok {
			out += "\n" + st.Error.Render("✗ "+msg)
		}
		return out
	}

	yes, no := st.Muted.Render(attendingLabel), st.Muted.Render(decliningLabel)
	switch s.attending {
	case rsvp.Attending:
		yes = st.Success.Render(attendingLabel)
	case rsvp.NotAttending:
		no = st.Warning.Render(decliningLabel)
	}

	submit := st.Button.Render(submitLabel)
	if s.focus == fieldSubmit && s.state == RSVPForm {
		submit = st.Focused.Padding(0, 2).Render(submitLabel)
	}
	if s.state == RSVPSending {
		submit = s.spinner.View() + " " + st.Muted.Render("Sending your RSVP...")
	}

	form := lipgloss.JoinVertical(lipgloss.Left,
		row(fieldName, "Name", s.name.View(), rsvp.FieldName),
		"",
		row(fieldGuests, "Number of guests (1-10)", s.guests.View(), rsvp.FieldGuests),
		"",
		row(fieldAttendance, "Will you attend?", yes+"  "+no, rsvp.FieldAttendance),
		"",
		row(fieldMessage, "Message", s.message.View(), ""),
	)

	banner := ""
	if s.banner != "" {
		banner = st.Error.Render(render.Wrap(s.banner, fieldWidth))
	}

	return lines(
		st.Heading.Render(render.Spaced(s.card.Heading)),
		st.Card.Width(fieldWidth+6).Render(form),
		banner,
		submit,
		st.Subtle.Render("tab next field • enter send • esc close"),
	)
}

func (s *RSVP) doneView() string {
	st := styles.T().S()
	detail := s.sent.Attendance.Label()
	if s.sent.Attendance == rsvp.Attending {
		detail += fmt.Sprintf(" • %d guest", s.sent.Guests)
		if s.sent.Guests != 1 {
			detail += "s"
		}
	}
	return lines(
		st.Success.Render("♥"),
		styles.TitleGradient(s.card.Thanks),
		st.Base.Render(s.card.ThanksSubtitle),
		st.Muted.Render(detail),
		st.Italic.Render(s.card.ThanksCaption),
	)
}
