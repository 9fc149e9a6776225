package story

import tea "github.com/charmbracelet/bubbletea"

// Hooks are the only write access a scene has to playback.
// Each hook is a command producing a request bound to the scene's index.
type Hooks struct {
	Next    tea.Cmd
	Prev    tea.Cmd
	Pause   tea.Cmd
	Restart tea.Cmd
}

// HooksFor returns the hooks for the scene at index.
func HooksFor(index int) Hooks {
	return Hooks{
		Next:    func() tea.Msg { return NextMsg{From: index} },
		Prev:    func() tea.Msg { return PrevMsg{From: index} },
		Pause:   func() tea.Msg { return PauseMsg{From: index} },
		Restart: func() tea.Msg { return RestartMsg{From: index} },
	}
}
