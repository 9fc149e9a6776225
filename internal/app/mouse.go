// internal/app/mouse.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/weddingstory/internal/ui"
	"github.com/llehouerou/weddingstory/internal/ui/segments"
)

const (
	muteOnLabel   = "[♪ on]"
	muteOffLabel  = "[♪ off]"
	restartLabel  = "[↺]"
	chromeSpacing = 1
)

type targetKind int

const (
	targetNone targetKind = iota
	targetSegment
	targetMute
	targetRestart
)

// target is a clickable chrome control.
type target struct {
	kind  targetKind
	index int
}

// chromeLayout is the column layout of the top row: the segmented bar on
// the left, the mute button and, on the last scene, the restart button on
// the right.
type chromeLayout struct {
	barWidth    int
	mute        segments.Span
	restart     segments.Span
	showRestart bool
}

func (m Model) muteLabel() string {
	if m.Story.Muted() {
		return muteOffLabel
	}
	return muteOnLabel
}

func (m Model) layoutChrome() chromeLayout {
	var l chromeLayout
	x := m.Width
	if m.Story.IsLast() {
		w := ansi.StringWidth(restartLabel)
		l.restart = segments.Span{Start: x - w, End: x}
		l.showRestart = true
		x -= w + chromeSpacing
	}
	w := ansi.StringWidth(m.muteLabel())
	l.mute = segments.Span{Start: x - w, End: x}
	l.barWidth = max(x-w-chromeSpacing, 0)
	return l
}

// targetAt returns the chrome control under column x of the top row.
func (m Model) targetAt(x int) target {
	l := m.layoutChrome()
	switch {
	case l.showRestart && x >= l.restart.Start && x < l.restart.End:
		return target{kind: targetRestart}
	case x >= l.mute.Start && x < l.mute.End:
		return target{kind: targetMute}
	}
	if i := segments.SegmentAt(x, l.barWidth, m.Story.Count()); i >= 0 {
		return target{kind: targetSegment, index: i}
	}
	return target{}
}

// handleMouseMsg sends chrome clicks to their controls, offers other clicks
// to the active scene and classifies the rest as gestures.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.handlePress(msg)
	case tea.MouseActionRelease:
		return m.handleRelease(msg)
	case tea.MouseActionMotion:
	}
	return m, nil
}

func (m Model) handlePress(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.Gestures.Cancel()
	m.pressed = target{}

	if msg.Y < ui.ChromeHeight {
		m.pressed = m.targetAt(msg.X)
		return m, nil
	}

	if handled, cmd := m.Active().Click(msg.X, msg.Y-ui.ChromeHeight); handled {
		return m, cmd
	}

	m.Gestures.Press(msg.X, msg.Y, m.now())
	return m, nil
}

func (m Model) handleRelease(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if pressed := m.pressed; pressed.kind != targetNone {
		m.pressed = target{}
		if msg.Y >= ui.ChromeHeight || m.targetAt(msg.X) != pressed {
			return m, nil
		}
		cmd := m.activate(pressed)
		return m, cmd
	}

	intent := m.Gestures.Release(msg.X, msg.Y, m.now(), m.Width)
	cmd := m.handleIntent(intent)
	return m, cmd
}

func (m *Model) activate(t target) tea.Cmd {
	switch t.kind {
	case targetSegment:
		return m.apply(func() tea.Cmd { return m.Story.JumpTo(t.index) })
	case targetMute:
		return m.apply(m.toggleMute)
	case targetRestart:
		return m.restart()
	case targetNone:
	}
	return nil
}
