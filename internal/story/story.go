// Package story sequences invitation scenes and drives their auto-advance.
//
// Model is the only owner of the playback state. Every input channel
// (taps, swipes, progress segment clicks, keys, scene hooks) ends in one of
// its methods: Advance, Retreat, JumpTo, TogglePause, Restart, ToggleMute.
//
// Timers are tea.Tick commands stamped with the generation they were armed
// under. Any change of scene or pause state bumps the generation, which makes
// every older timer inert when it is delivered. There is therefore at most
// one live advance timer and one live progress chain per generation.
package story

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultSceneDuration is the dwell time of every scene.
	DefaultSceneDuration = 5 * time.Second

	// DefaultProgressInterval is the progress indicator poll rate.
	DefaultProgressInterval = 50 * time.Millisecond
)

// Option configures a Model.
type Option func(*Model)

// WithSceneDuration sets the dwell time used for every scene.
func WithSceneDuration(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.duration = d
		}
	}
}

// WithProgressInterval sets how often the progress indicator is polled.
func WithProgressInterval(d time.Duration) Option {
	return func(m *Model) {
		if d > 0 {
			m.interval = d
		}
	}
}

// WithOnComplete sets the host callback invoked when Advance is called on
// the last scene. A nil callback makes reaching the end a silent no-op.
func WithOnComplete(fn func() tea.Cmd) Option {
	return func(m *Model) {
		m.onComplete = fn
	}
}

// WithMuted sets the initial mute state.
func WithMuted(muted bool) Option {
	return func(m *Model) {
		m.muted = muted
	}
}

// WithClock replaces the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		if now != nil {
			m.now = now
		}
	}
}

// Model is the playback controller.
type Model struct {
	count     int
	index     int
	playing   bool
	paused    bool
	muted     bool
	progress  float64
	startedAt time.Time

	// version identifies the live timer generation.
	version int

	duration   time.Duration
	interval   time.Duration
	onComplete func() tea.Cmd
	now        func() time.Time
}

// New creates a controller for count scenes, positioned on the first scene
// and playing. The first countdown starts now; Init returns its timers.
func New(count int, opts ...Option) Model {
	m := Model{
		count:    max(count, 1),
		playing:  true,
		duration: DefaultSceneDuration,
		interval: DefaultProgressInterval,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.version = 1
	m.startedAt = m.now()
	return m
}

// Init returns the timers for the initial scene.
func (m Model) Init() tea.Cmd {
	if !m.running() {
		return nil
	}
	return m.timers()
}

// Update handles timer deliveries and scene requests.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case AdvanceMsg:
		if msg.Version != m.version {
			return m, nil
		}
		cmd := m.Advance()
		return m, cmd

	case ProgressMsg:
		if msg.Version != m.version {
			return m, nil
		}
		cmd := m.poll(msg.At)
		return m, cmd

	case NextMsg:
		if msg.From != m.index {
			return m, nil
		}
		cmd := m.Advance()
		return m, cmd

	case PrevMsg:
		if msg.From != m.index {
			return m, nil
		}
		cmd := m.Retreat()
		return m, cmd

	case PauseMsg:
		if msg.From != m.index || m.paused {
			return m, nil
		}
		cmd := m.TogglePause()
		return m, cmd

	case RestartMsg:
		if msg.From != m.index {
			return m, nil
		}
		cmd := m.Restart()
		return m, cmd
	}
	return m, nil
}

// Advance moves to the next scene. On the last scene it invokes the
// completion callback instead and stays put.
func (m *Model) Advance() tea.Cmd {
	if m.index < m.count-1 {
		return m.show(m.index + 1)
	}
	return m.complete()
}

// Retreat moves to the previous scene. No-op on the first scene.
func (m *Model) Retreat() tea.Cmd {
	if m.index == 0 {
		return nil
	}
	return m.show(m.index - 1)
}

// JumpTo moves directly to index, clamped to the scene range.
func (m *Model) JumpTo(index int) tea.Cmd {
	return m.show(min(max(index, 0), m.count-1))
}

// TogglePause suspends or resumes auto-advance.
//
// Pausing freezes the displayed progress. Resuming does not continue the
// partial countdown: the scene gets a fresh full duration and progress
// restarts from zero.
func (m *Model) TogglePause() tea.Cmd {
	m.paused = !m.paused
	return m.rearm()
}

// Restart returns to the first scene and resumes playing.
func (m *Model) Restart() tea.Cmd {
	m.playing = true
	return m.show(0)
}

// ToggleMute flips the mute state. It has no effect on scene timing.
func (m *Model) ToggleMute() {
	m.muted = !m.muted
}

// Unmount invalidates every pending timer and stops playing.
func (m *Model) Unmount() {
	m.version++
	m.playing = false
}

// Index returns the current scene index.
func (m Model) Index() int { return m.index }

// Count returns the number of scenes.
func (m Model) Count() int { return m.count }

// Playing reports whether the story is playing.
func (m Model) Playing() bool { return m.playing }

// Paused reports whether auto-advance is suspended.
func (m Model) Paused() bool { return m.paused }

// Muted reports whether the audio side channel is muted.
func (m Model) Muted() bool { return m.muted }

// Progress returns the current scene's progress in [0,1].
func (m Model) Progress() float64 { return m.progress }

// IsLast reports whether the current scene is the final one.
func (m Model) IsLast() bool { return m.index == m.count-1 }

// AudioActive reports whether the audio side channel should be playing.
func (m Model) AudioActive() bool { return m.playing && !m.muted }

// Duration returns the per-scene dwell time.
func (m Model) Duration() time.Duration { return m.duration }

// Snapshot returns a copy of the playback state.
func (m Model) Snapshot() Snapshot {
	return Snapshot{
		Index:    m.index,
		Count:    m.count,
		Playing:  m.playing,
		Paused:   m.paused,
		Muted:    m.muted,
		Progress: m.progress,
	}
}

func (m Model) running() bool {
	return m.playing && !m.paused
}

// show moves to index with an empty progress indicator. A paused story
// stays paused; the new scene's countdown starts on resume.
func (m *Model) show(index int) tea.Cmd {
	m.index = index
	m.progress = 0
	return m.rearm()
}

// rearm retires the current timer generation and, when running, arms a
// fresh countdown for the current scene.
func (m *Model) rearm() tea.Cmd {
	m.version++
	if !m.running() {
		return nil
	}
	m.progress = 0
	m.startedAt = m.now()
	return m.timers()
}

// complete handles Advance on the last scene. The last scene's timers are
// retired so the auto-advance cannot fire completion a second time.
func (m *Model) complete() tea.Cmd {
	m.version++
	m.progress = 1
	if m.onComplete == nil {
		return nil
	}
	return m.onComplete()
}

func (m Model) timers() tea.Cmd {
	return tea.Batch(
		advanceCmd(m.version, m.duration),
		progressCmd(m.version, m.interval),
	)
}

// poll updates progress from elapsed time and schedules the next poll until
// the indicator is full.
func (m *Model) poll(at time.Time) tea.Cmd {
	if at.IsZero() {
		at = m.now()
	}
	elapsed := at.Sub(m.startedAt)
	m.progress = min(max(float64(elapsed)/float64(m.duration), 0), 1)
	if m.progress >= 1 {
		return nil
	}
	return progressCmd(m.version, m.interval)
}
