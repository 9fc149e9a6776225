// internal/app/handlers.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/weddingstory/internal/gesture"
	"github.com/llehouerou/weddingstory/internal/keymap"
	"github.com/llehouerou/weddingstory/internal/scenes"
)

// handleKeyMsg routes a key press: ctrl+c always quits, then the help
// panel, then the active scene, then the story bindings.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		cmd := m.quit()
		return m, cmd
	}

	if m.ShowHelp {
		var cmd tea.Cmd
		m.Help, cmd = m.Help.Update(msg)
		return m, cmd
	}

	scene := m.Active()
	if scene.Capturing() {
		_, cmd := scene.HandleKey(msg)
		return m, cmd
	}
	if handled, cmd := scene.HandleKey(msg); handled {
		return m, cmd
	}

	cmd := m.handleAction(m.Keys.Resolve(key), key)
	return m, cmd
}

func (m *Model) handleAction(action keymap.Action, key string) tea.Cmd {
	switch action {
	case keymap.ActionQuit:
		return m.quit()
	case keymap.ActionHelp:
		m.Help.SetContexts(m.helpContexts())
		m.ShowHelp = true
		return nil
	case keymap.ActionNext:
		return m.apply(m.Story.Advance)
	case keymap.ActionPrev:
		return m.apply(m.Story.Retreat)
	case keymap.ActionPause:
		return m.apply(m.Story.TogglePause)
	case keymap.ActionMute:
		return m.apply(m.toggleMute)
	case keymap.ActionRestart:
		return m.restart()
	case keymap.ActionJump:
		idx := keymap.JumpIndex(key)
		if idx < 0 || idx >= m.Story.Count() {
			return nil
		}
		return m.apply(func() tea.Cmd { return m.Story.JumpTo(idx) })
	}
	return nil
}

// handleIntent maps a classified gesture to the controller.
func (m *Model) handleIntent(intent gesture.Intent) tea.Cmd {
	switch intent {
	case gesture.Retreat:
		return m.apply(m.Story.Retreat)
	case gesture.Advance:
		return m.apply(m.Story.Advance)
	case gesture.TogglePause:
		return m.apply(m.Story.TogglePause)
	case gesture.None:
	}
	return nil
}

func (m *Model) toggleMute() tea.Cmd {
	m.Story.ToggleMute()
	return nil
}

// quit stops playback and every pending timer before exiting.
func (m *Model) quit() tea.Cmd {
	m.Story.Unmount()
	m.Audio.Pause()
	m.Logger.Info("quit", "scene", m.Story.Index())
	return tea.Quit
}

func (m Model) helpContexts() []string {
	contexts := []string{"global", "playback", "scenes"}
	if _, ok := m.Active().(*scenes.RSVP); ok {
		contexts = append(contexts, "rsvp")
	}
	return contexts
}
