// internal/app/update.go
package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/weddingstory/internal/audio"
	"github.com/llehouerou/weddingstory/internal/notify"
	"github.com/llehouerou/weddingstory/internal/scenes"
	"github.com/llehouerou/weddingstory/internal/story"
	"github.com/llehouerou/weddingstory/internal/ui"
	"github.com/llehouerou/weddingstory/internal/ui/helpbindings"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case helpbindings.CloseMsg:
		m.ShowHelp = false
		return m, nil

	case story.RestartMsg:
		if msg.From != m.Story.Index() {
			return m, nil
		}
		cmd := m.restart()
		return m, cmd

	case story.AdvanceMsg, story.ProgressMsg, story.NextMsg, story.PrevMsg, story.PauseMsg:
		cmd := m.apply(func() tea.Cmd {
			var cmd tea.Cmd
			m.Story, cmd = m.Story.Update(msg)
			return cmd
		})
		return m, cmd

	case notify.SentMsg:
		if msg.Err != nil {
			m.Logger.Warn("desktop notification failed", "err", msg.Err)
		}
		return m, nil
	}

	cmd := m.forward(msg)
	return m, cmd
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	h := ui.SceneHeight(msg.Height)
	for _, s := range m.Scenes {
		s.SetSize(msg.Width, h)
	}
	m.Help.SetSize(msg.Width, msg.Height)
	return m, nil
}

// forward hands msg to every scene. Scenes ignore what is not theirs, so
// results of background work reach their owner even after the story has
// moved on.
func (m Model) forward(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, s := range m.Scenes {
		var cmd tea.Cmd
		m.Scenes[i], cmd = s.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// apply runs a playback operation and brings scenes, audio and the log in
// line with the resulting state.
func (m *Model) apply(op func() tea.Cmd) tea.Cmd {
	before := m.Story.Snapshot()
	cmd := op()
	after := m.Story.Snapshot()

	if before.Index != after.Index {
		m.Gestures.Cancel()
		m.Logger.Debug("scene changed",
			"from", before.Index, "to", after.Index, "scene", m.Active().Title())
	}
	if before.Paused != after.Paused {
		m.Logger.Debug("playback paused", "paused", after.Paused, "scene", after.Index)
	}
	if before.Muted != after.Muted {
		m.Logger.Debug("audio muted", "muted", after.Muted)
	}
	m.syncScenes()
	audio.Sync(m.Audio, m.Story.AudioActive())
	return cmd
}

// restart replays the story from the first scene with every scene back in
// its initial state.
func (m *Model) restart() tea.Cmd {
	for _, s := range m.Scenes {
		if r, ok := s.(scenes.Resetter); ok {
			r.Reset()
		}
	}
	m.Logger.Debug("story restarted")
	return m.apply(m.Story.Restart)
}

// syncScenes marks only the shown scene active, and only while playing.
func (m *Model) syncScenes() {
	idx := m.Story.Index()
	running := !m.Story.Paused()
	for i, s := range m.Scenes {
		s.SetActive(i == idx && running)
	}
}
