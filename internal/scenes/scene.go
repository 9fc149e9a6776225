// Package scenes implements the ten invitation scenes shown by the story.
//
// Scenes are presentation only. They never touch playback state; the only
// way a scene can influence the story is by returning one of its story.Hooks
// as a command.
package scenes

import (
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/weddingstory/internal/content"
	"github.com/llehouerou/weddingstory/internal/notify"
	"github.com/llehouerou/weddingstory/internal/rsvp"
	"github.com/llehouerou/weddingstory/internal/story"
	"github.com/llehouerou/weddingstory/internal/ui"
	"github.com/llehouerou/weddingstory/internal/ui/overlay"
)

// Scene is one full-screen step of the invitation.
type Scene interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Scene, tea.Cmd)
	View() string
	SetSize(width, height int)
	// SetActive is true while the scene is shown and playback is not paused.
	SetActive(active bool)
	// Capturing reports whether the scene wants every key press, such as
	// while a form has focus.
	Capturing() bool
	// HandleKey offers a key press to the scene before the host sees it.
	HandleKey(msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
	// Click offers a click at scene-relative coordinates.
	Click(x, y int) (handled bool, cmd tea.Cmd)
	Title() string
}

// Resetter is implemented by scenes that return to their initial state
// when the story is replayed.
type Resetter interface {
	Reset()
}

// Deps are the collaborators scenes call out to.
type Deps struct {
	Sender        rsvp.Sender
	SubmitTimeout time.Duration
	Notifier      notify.Notifier // nil disables the RSVP notification
	ExportDir     string
	Now           func() time.Time
	Logger        *slog.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = slog.New(slog.DiscardHandler)
	}
	if d.Sender == nil {
		d.Sender = rsvp.SimulatedSender{Delay: 2 * time.Second}
	}
	if d.ExportDir == "" {
		d.ExportDir = "."
	}
	return d
}

// All builds the scene sequence in story order. Each scene receives the
// hooks bound to its own position.
func All(inv *content.Invitation, deps Deps) []Scene {
	deps = deps.withDefaults()
	builders := []func(base) Scene{
		func(b base) Scene { return newEnvelope(b, inv) },
		func(b base) Scene { return newBlessing(b, inv) },
		func(b base) Scene { return newDateTheme(b, inv) },
		func(b base) Scene { return newVenue(b, inv, deps.Logger) },
		func(b base) Scene { return newSchedule(b, inv) },
		func(b base) Scene { return newDressCode(b, inv) },
		func(b base) Scene { return newRSVP(b, inv, deps) },
		func(b base) Scene { return newScripture(b, inv) },
		func(b base) Scene { return newThankYou(b, inv, deps) },
		func(b base) Scene { return newJourney(b, inv) },
	}

	out := make([]Scene, len(builders))
	for i, build := range builders {
		out[i] = build(newBase(i))
	}
	return out
}

// base carries what every scene shares: size, activity, its hooks and the
// starry backdrop.
type base struct {
	ui.Base
	index    int
	hooks    story.Hooks
	backdrop backdrop
}

func newBase(index int) base {
	return base{
		index:    index,
		hooks:    story.HooksFor(index),
		backdrop: backdrop{seed: uint64(index) + 1}, //nolint:gosec // index is small and non-negative
	}
}

func (b *base) Init() tea.Cmd { return nil }

// SetSize records the area and, on the first real size, lays out the
// backdrop.
func (b *base) SetSize(width, height int) {
	b.Base.SetSize(width, height)
	b.backdrop.layout(width, height)
}

func (b *base) Capturing() bool { return false }

func (b *base) HandleKey(tea.KeyMsg) (bool, tea.Cmd) { return false, nil }

func (b *base) Click(int, int) (bool, tea.Cmd) { return false, nil }

// frame centers content over the backdrop.
func (b *base) frame(content string) string {
	w, h := b.Width(), b.Height()
	if w <= 0 || h <= 0 {
		return content
	}
	return overlay.Compose(b.backdrop.render(w, h), b.Place(content), w)
}

// locate returns the column and row of the first occurrence of needle in
// the unstyled view, or (-1, -1).
func locate(view, needle string) (x, y int) {
	for i, line := range strings.Split(ansi.Strip(view), "\n") {
		if idx := strings.Index(line, needle); idx >= 0 {
			return ansi.StringWidth(line[:idx]), i
		}
	}
	return -1, -1
}

// hit reports whether (x, y) falls on the first occurrence of label.
func hit(view, label string, x, y int) bool {
	lx, ly := locate(view, label)
	return ly >= 0 && y == ly && x >= lx && x < lx+ansi.StringWidth(label)
}

// lines joins non-empty parts with blank lines between them.
func lines(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}
