package scenes

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

// OpenDelay is how long the opened envelope stays on screen before the
// scene asks for the next one.
const OpenDelay = 2 * time.Second

const envelopeTop = "╭──────────────────────────────╮"

// Envelope is the opening scene: a sealed envelope the guest opens.
type Envelope struct {
	base
	couple content.Couple
	text   content.Envelope
	opened bool
	delay  time.Duration
}

func newEnvelope(b base, inv *content.Invitation) *Envelope {
	return &Envelope{base: b, couple: inv.Couple, text: inv.Envelope, delay: OpenDelay}
}

func (e *Envelope) Title() string { return "Envelope" }

func (e *Envelope) Update(tea.Msg) (Scene, tea.Cmd) { return e, nil }

// Opened reports whether the envelope has been opened.
func (e *Envelope) Opened() bool { return e.opened }

// Reset closes the envelope again.
func (e *Envelope) Reset() { e.opened = false }

func (e *Envelope) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	if msg.String() != "enter" {
		return false, nil
	}
	return true, e.open()
}

// Click opens the envelope when the click lands on it.
func (e *Envelope) Click(x, y int) (bool, tea.Cmd) {
	view := e.View()
	left, top := locate(view, envelopeTop)
	if top < 0 {
		return false, nil
	}
	width := lipgloss.Width(envelopeTop)
	height := strings.Count(e.art(), "\n") + 1
	if x < left || x >= left+width || y < top || y >= top+height {
		return false, nil
	}
	return true, e.open()
}

// open is idempotent: only the first call schedules the hand-off.
func (e *Envelope) open() tea.Cmd {
	if e.opened {
		return nil
	}
	e.opened = true
	next := e.hooks.Next
	return tea.Tick(e.delay, func(time.Time) tea.Msg { return next() })
}

func (e *Envelope) art() string {
	s := styles.T().S()
	paper := lipgloss.NewStyle().Foreground(styles.T().Primary)

	flap := []string{
		envelopeTop,
		"│╲                            ╱│",
		"│  ╲                        ╱  │",
		"│    ╲                    ╱    │",
		"│      ╲                ╱      │",
		"│        ╲            ╱        │",
		"│          ╲        ╱          │",
		"│            ╲    ╱            │",
		"│              ╲╱              │",
		"│                              │",
		"╰──────────────────────────────╯",
	}
	text := map[int]string{9: s.Accent.Render("❦ " + e.couple.Monogram + " ❦")}
	if e.opened {
		flap[1] = "│ ╱╲                        ╱╲ │"
		for i := 2; i < 10; i++ {
			flap[i] = "│                              │"
		}
		text = map[int]string{
			4: s.Italic.Render(e.couple.PartnerOne),
			5: s.Muted.Render("&"),
			6: s.Italic.Render(e.couple.PartnerTwo),
		}
	}

	out := make([]string, len(flap))
	for i, line := range flap {
		if t, ok := text[i]; ok {
			inner := lipgloss.Width(line) - 2
			out[i] = paper.Render("│") + lipgloss.PlaceHorizontal(inner, lipgloss.Center, t) + paper.Render("│")
			continue
		}
		out[i] = paper.Render(line)
	}
	return strings.Join(out, "\n")
}

func (e *Envelope) View() string {
	s := styles.T().S()
	prompt := e.text.Prompt
	if e.opened {
		prompt = e.text.Opened
	}
	hint := ""
	if !e.opened && e.IsActive() {
		hint = s.Subtle.Render("press enter or click the envelope")
	}
	return e.frame(lines(
		e.art(),
		s.Muted.Render(prompt),
		hint,
	))
}
