// internal/app/app.go
package app

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/weddingstory/internal/audio"
	"github.com/llehouerou/weddingstory/internal/gesture"
	"github.com/llehouerou/weddingstory/internal/keymap"
	"github.com/llehouerou/weddingstory/internal/scenes"
	"github.com/llehouerou/weddingstory/internal/story"
	"github.com/llehouerou/weddingstory/internal/ui/helpbindings"
)

// Options configures the root model.
type Options struct {
	SceneDuration    time.Duration
	ProgressInterval time.Duration
	StartMuted       bool
	Gestures         gesture.Config

	// OnComplete runs when the guest advances past the last scene.
	// May be nil.
	OnComplete func() tea.Cmd

	Audio  audio.Interface
	Logger *slog.Logger
	Clock  func() time.Time
}

// Model is the root application model. It owns the story controller and
// routes every input channel into it.
type Model struct {
	Story    story.Model
	Scenes   []scenes.Scene
	Audio    audio.Interface
	Gestures gesture.Tracker
	Keys     *keymap.Resolver
	Help     *helpbindings.Model
	ShowHelp bool
	Logger   *slog.Logger
	Width    int
	Height   int

	// pressed is the chrome control under the last press, acted on when the
	// release lands on the same control.
	pressed target
	now     func() time.Time
}

// New creates the root model over the given scenes, positioned on the first
// scene and playing.
func New(sc []scenes.Scene, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	player := opts.Audio
	if player == nil {
		player = audio.NewSilent()
	}

	onComplete := opts.OnComplete
	m := Model{
		Story: story.New(len(sc),
			story.WithSceneDuration(opts.SceneDuration),
			story.WithProgressInterval(opts.ProgressInterval),
			story.WithMuted(opts.StartMuted),
			story.WithClock(now),
			story.WithOnComplete(func() tea.Cmd {
				logger.Info("story complete")
				if onComplete == nil {
					return nil
				}
				return onComplete()
			}),
		),
		Scenes:   sc,
		Audio:    player,
		Gestures: gesture.NewTracker(opts.Gestures),
		Keys:     keymap.NewResolver(keymap.Global()),
		Help:     helpbindings.New(),
		Logger:   logger,
		now:      now,
	}
	m.syncScenes()
	audio.Sync(m.Audio, m.Story.AudioActive())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.Story.Init()}
	for _, s := range m.Scenes {
		cmds = append(cmds, s.Init())
	}
	return tea.Batch(cmds...)
}

// Active returns the scene currently shown.
func (m Model) Active() scenes.Scene {
	return m.Scenes[m.Story.Index()]
}
