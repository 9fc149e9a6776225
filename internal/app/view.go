// internal/app/view.go
package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/weddingstory/internal/ui"
	"github.com/llehouerou/weddingstory/internal/ui/overlay"
	"github.com/llehouerou/weddingstory/internal/ui/render"
	"github.com/llehouerou/weddingstory/internal/ui/segments"
	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

const (
	navigationHint = "Tap sides to navigate • Hold center to pause • Swipe to change scenes"
	pauseBadge     = "❚❚  Paused"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	h := ui.SceneHeight(m.Height)
	scene := lipgloss.NewStyle().Height(h).MaxHeight(h).Render(m.Active().View())
	if m.Story.Paused() {
		badge := styles.T().S().Overlay.Render(pauseBadge)
		scene = overlay.Center(scene, badge, m.Width, h)
	}

	view := strings.Join([]string{m.renderChrome(), scene, m.renderHint()}, "\n")

	if m.ShowHelp {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}
	return view
}

func (m Model) renderChrome() string {
	s := styles.T().S()
	l := m.layoutChrome()

	bar := segments.Render(m.Story.Count(), m.Story.Index(), m.Story.Progress(), l.barWidth)

	mute := s.Accent.Render(m.muteLabel())
	if m.Story.Muted() {
		mute = s.Muted.Render(m.muteLabel())
	}

	row := bar + strings.Repeat(" ", max(l.mute.Start-l.barWidth, 0)) + mute
	if l.showRestart {
		row += strings.Repeat(" ", chromeSpacing) + s.Accent.Render(restartLabel)
	}
	return row
}

func (m Model) renderHint() string {
	hint := render.Truncate(navigationHint+" • ? help", m.Width)
	return lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, styles.T().S().Hint.Render(hint))
}
