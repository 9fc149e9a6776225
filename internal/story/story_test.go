package story

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const sceneCount = 10

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) time.Time {
	c.t = c.t.Add(d)
	return c.t
}

func newTestModel(opts ...Option) (Model, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 12, 6, 5, 0, 0, 0, time.UTC)}
	opts = append([]Option{WithClock(clock.now)}, opts...)
	return New(sceneCount, opts...), clock
}

// timerCount returns how many timers a command arms without running them.
func timerCount(t *testing.T, cmd tea.Cmd) int {
	t.Helper()
	if cmd == nil {
		return 0
	}
	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected tea.BatchMsg, got %T", cmd())
	}
	return len(batch)
}

func TestNew_InitialState(t *testing.T) {
	m, _ := newTestModel()

	if m.Index() != 0 {
		t.Errorf("Index() = %d, want 0", m.Index())
	}
	if !m.Playing() {
		t.Error("expected playing")
	}
	if m.Paused() {
		t.Error("expected not paused")
	}
	if m.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", m.Progress())
	}
	if m.Duration() != DefaultSceneDuration {
		t.Errorf("Duration() = %v, want %v", m.Duration(), DefaultSceneDuration)
	}
}

func TestNew_ClampsEmptySequence(t *testing.T) {
	m := New(0)

	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
	_ = m.Advance()
	_ = m.Retreat()
	if m.Index() != 0 {
		t.Errorf("Index() = %d, want 0", m.Index())
	}
}

func TestInit_ArmsAdvanceAndProgress(t *testing.T) {
	m, _ := newTestModel()

	if got := timerCount(t, m.Init()); got != 2 {
		t.Errorf("Init armed %d timers, want 2", got)
	}
}

func TestInit_PausedArmsNothing(t *testing.T) {
	m, _ := newTestModel()
	_ = m.TogglePause()

	if cmd := m.Init(); cmd != nil {
		t.Error("expected no timers while paused")
	}
}

func TestAdvance_NineTimesReachesLast(t *testing.T) {
	m, _ := newTestModel()

	for range sceneCount - 1 {
		_ = m.Advance()
	}

	if m.Index() != sceneCount-1 {
		t.Errorf("Index() = %d, want %d", m.Index(), sceneCount-1)
	}
	if !m.Playing() {
		t.Error("advance should not affect playing")
	}
	if !m.IsLast() {
		t.Error("expected IsLast")
	}
}

func TestAdvance_OnLastInvokesComplete(t *testing.T) {
	completed := 0
	m, _ := newTestModel(WithOnComplete(func() tea.Cmd {
		completed++
		return nil
	}))
	_ = m.JumpTo(sceneCount - 1)

	_ = m.Advance()

	if completed != 1 {
		t.Errorf("onComplete called %d times, want 1", completed)
	}
	if m.Index() != sceneCount-1 {
		t.Errorf("Index() = %d, want %d", m.Index(), sceneCount-1)
	}
}

func TestAdvance_OnLastWithoutCompleteStaysPut(t *testing.T) {
	m, _ := newTestModel()
	_ = m.JumpTo(sceneCount - 1)

	cmd := m.Advance()

	if cmd != nil {
		t.Error("expected no command without completion callback")
	}
	if m.Index() != sceneCount-1 {
		t.Errorf("Index() = %d, want %d", m.Index(), sceneCount-1)
	}
}

func TestAdvance_CompletionRetiresLastSceneTimer(t *testing.T) {
	completed := 0
	m, _ := newTestModel(WithOnComplete(func() tea.Cmd {
		completed++
		return nil
	}))
	_ = m.JumpTo(sceneCount - 1)
	armed := m.version

	_ = m.Advance()
	m, _ = m.Update(AdvanceMsg{Version: armed})

	if completed != 1 {
		t.Errorf("onComplete called %d times, want 1", completed)
	}
	if m.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", m.Progress())
	}
}

func TestAdvance_ArmsFreshTimersAndRetiresOld(t *testing.T) {
	m, _ := newTestModel()
	old := m.version

	cmd := m.Advance()

	if got := timerCount(t, cmd); got != 2 {
		t.Errorf("Advance armed %d timers, want 2", got)
	}
	if m.version == old {
		t.Fatal("expected a new timer generation")
	}

	// The timer armed for scene 0 arrives late: it must not move playback.
	m, cmd = m.Update(AdvanceMsg{Version: old})
	if m.Index() != 1 {
		t.Errorf("stale timer moved playback: Index() = %d, want 1", m.Index())
	}
	if cmd != nil {
		t.Error("stale timer should not arm anything")
	}
}

func TestRetreat_AtZeroIsNoop(t *testing.T) {
	m, _ := newTestModel()
	before := m.version

	cmd := m.Retreat()

	if m.Index() != 0 {
		t.Errorf("Index() = %d, want 0", m.Index())
	}
	if cmd != nil {
		t.Error("expected nil command")
	}
	if m.version != before {
		t.Error("no-op retreat should keep the live timers")
	}
}

func TestRetreat_MovesBack(t *testing.T) {
	m, _ := newTestModel()
	_ = m.JumpTo(4)

	cmd := m.Retreat()

	if m.Index() != 3 {
		t.Errorf("Index() = %d, want 3", m.Index())
	}
	if got := timerCount(t, cmd); got != 2 {
		t.Errorf("Retreat armed %d timers, want 2", got)
	}
}

func TestJumpTo_DirectAndResetsProgress(t *testing.T) {
	m, clock := newTestModel()
	_ = m.JumpTo(7)
	m, _ = m.Update(ProgressMsg{Version: m.version, At: clock.advance(2 * time.Second)})
	if m.Progress() == 0 {
		t.Fatal("expected progress before jump")
	}

	_ = m.JumpTo(3)

	if m.Index() != 3 {
		t.Errorf("Index() = %d, want 3", m.Index())
	}
	if m.Progress() != 0 {
		t.Errorf("Progress() = %v, want 0", m.Progress())
	}
}

func TestJumpTo_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"negative", -3, 0},
		{"in range", 5, 5},
		{"past end", 42, sceneCount - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel()
			_ = m.JumpTo(tt.index)
			if m.Index() != tt.want {
				t.Errorf("JumpTo(%d) -> %d, want %d", tt.index, m.Index(), tt.want)
			}
		})
	}
}

func TestProgress_ClampedAndStopsAtFull(t *testing.T) {
	m, clock := newTestModel()
	v := m.version

	m, cmd := m.Update(ProgressMsg{Version: v, At: clock.advance(2500 * time.Millisecond)})
	if m.Progress() != 0.5 {
		t.Errorf("Progress() = %v, want 0.5", m.Progress())
	}
	if cmd == nil {
		t.Error("expected next poll while below full")
	}

	m, cmd = m.Update(ProgressMsg{Version: v, At: clock.advance(10 * time.Second)})
	if m.Progress() != 1 {
		t.Errorf("Progress() = %v, want 1", m.Progress())
	}
	if cmd != nil {
		t.Error("polling should stop at full progress")
	}
}

func TestProgress_StaleTickIgnored(t *testing.T) {
	m, clock := newTestModel()
	old := m.version
	_ = m.Advance()

	m, cmd := m.Update(ProgressMsg{Version: old, At: clock.advance(4 * time.Second)})

	if m.Progress() != 0 {
		t.Errorf("stale tick changed progress to %v", m.Progress())
	}
	if cmd != nil {
		t.Error("stale tick should not reschedule")
	}
}

func TestTogglePause_FreezesProgress(t *testing.T) {
	m, clock := newTestModel()
	m, _ = m.Update(ProgressMsg{Version: m.version, At: clock.advance(2 * time.Second)})
	before := m.Progress()
	live := m.version

	cmd := m.TogglePause()

	if cmd != nil {
		t.Error("pausing should arm nothing")
	}
	if m.Progress() != before {
		t.Errorf("Progress() = %v after pause, want %v", m.Progress(), before)
	}

	// Timers from before the pause are inert.
	m, _ = m.Update(ProgressMsg{Version: live, At: clock.advance(time.Second)})
	m, _ = m.Update(AdvanceMsg{Version: live})
	if m.Progress() != before {
		t.Errorf("progress grew while paused: %v", m.Progress())
	}
	if m.Index() != 0 {
		t.Errorf("advanced while paused: Index() = %d", m.Index())
	}
}

func TestNavigationWhilePaused_ResetsProgress(t *testing.T) {
	m, clock := newTestModel()
	_ = m.JumpTo(7)
	m, _ = m.Update(ProgressMsg{Version: m.version, At: clock.advance(2 * time.Second)})
	_ = m.TogglePause()
	if m.Progress() != 0.4 {
		t.Fatalf("Progress() = %v before navigating, want 0.4", m.Progress())
	}

	steps := []struct {
		name      string
		op        func() tea.Cmd
		wantIndex int
	}{
		{"jump", func() tea.Cmd { return m.JumpTo(3) }, 3},
		{"retreat", m.Retreat, 2},
		{"advance", m.Advance, 3},
		{"restart", m.Restart, 0},
	}
	for _, step := range steps {
		m.progress = 0.4

		cmd := step.op()

		if cmd != nil {
			t.Errorf("%s: armed timers while paused", step.name)
		}
		if m.Index() != step.wantIndex {
			t.Errorf("%s: Index() = %d, want %d", step.name, m.Index(), step.wantIndex)
		}
		if m.Progress() != 0 {
			t.Errorf("%s: Progress() = %v, want 0", step.name, m.Progress())
		}
		if !m.Paused() {
			t.Errorf("%s: expected to stay paused", step.name)
		}
	}
}

func TestTogglePause_ResumeRestartsFullCountdown(t *testing.T) {
	m, clock := newTestModel()
	m, _ = m.Update(ProgressMsg{Version: m.version, At: clock.advance(3 * time.Second)})
	_ = m.TogglePause()
	clock.advance(time.Minute)

	cmd := m.TogglePause()

	if got := timerCount(t, cmd); got != 2 {
		t.Errorf("resume armed %d timers, want 2", got)
	}
	if m.Progress() != 0 {
		t.Errorf("Progress() = %v after resume, want 0", m.Progress())
	}
	m, _ = m.Update(ProgressMsg{Version: m.version, At: clock.advance(time.Second)})
	if m.Progress() != 0.2 {
		t.Errorf("Progress() = %v one second after resume, want 0.2", m.Progress())
	}
}

func TestManualNavigationBeatsPendingAdvance(t *testing.T) {
	m, _ := newTestModel()
	pending := m.version

	// The user taps next just before the auto-advance fires.
	_ = m.Advance()
	m, _ = m.Update(AdvanceMsg{Version: pending})

	if m.Index() != 1 {
		t.Errorf("Index() = %d, want 1 (no double advance)", m.Index())
	}
}

func TestRestart_FromLast(t *testing.T) {
	m, _ := newTestModel()
	_ = m.JumpTo(sceneCount - 1)
	m.Unmount()

	cmd := m.Restart()

	if m.Index() != 0 {
		t.Errorf("Index() = %d, want 0", m.Index())
	}
	if !m.Playing() {
		t.Error("expected playing after restart")
	}
	if got := timerCount(t, cmd); got != 2 {
		t.Errorf("Restart armed %d timers, want 2", got)
	}
}

func TestToggleMute_IndependentOfPause(t *testing.T) {
	m, _ := newTestModel()
	v := m.version

	m.ToggleMute()

	if !m.Muted() {
		t.Error("expected muted")
	}
	if m.Paused() {
		t.Error("mute should not pause")
	}
	if m.version != v {
		t.Error("mute should not touch timers")
	}
	if m.AudioActive() {
		t.Error("audio should be inactive while muted")
	}
}

func TestUnmount_RetiresTimers(t *testing.T) {
	m, _ := newTestModel()
	live := m.version

	m.Unmount()
	m, _ = m.Update(AdvanceMsg{Version: live})

	if m.Index() != 0 {
		t.Errorf("timer fired after unmount: Index() = %d", m.Index())
	}
	if m.AudioActive() {
		t.Error("audio should stop on unmount")
	}
}

func TestSceneRequests_OnlyFromCurrentScene(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.Msg
		wantIndex int
		wantPause bool
	}{
		{"next from current", NextMsg{From: 2}, 3, false},
		{"next from stale scene", NextMsg{From: 0}, 2, false},
		{"prev from current", PrevMsg{From: 2}, 1, false},
		{"prev from stale scene", PrevMsg{From: 5}, 2, false},
		{"pause from current", PauseMsg{From: 2}, 2, true},
		{"pause from stale scene", PauseMsg{From: 1}, 2, false},
		{"restart from current", RestartMsg{From: 2}, 0, false},
		{"restart from stale scene", RestartMsg{From: 9}, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestModel()
			_ = m.JumpTo(2)

			m, _ = m.Update(tt.msg)

			if m.Index() != tt.wantIndex {
				t.Errorf("Index() = %d, want %d", m.Index(), tt.wantIndex)
			}
			if m.Paused() != tt.wantPause {
				t.Errorf("Paused() = %v, want %v", m.Paused(), tt.wantPause)
			}
		})
	}
}

func TestPauseRequest_NeverResumes(t *testing.T) {
	m, _ := newTestModel()
	_ = m.TogglePause()

	m, _ = m.Update(PauseMsg{From: 0})

	if !m.Paused() {
		t.Error("pause request resumed playback")
	}
}

func TestHooksFor_BindsIndex(t *testing.T) {
	h := HooksFor(4)

	if msg, ok := h.Next().(NextMsg); !ok || msg.From != 4 {
		t.Errorf("Next() = %#v, want NextMsg{From: 4}", h.Next())
	}
	if msg, ok := h.Prev().(PrevMsg); !ok || msg.From != 4 {
		t.Errorf("Prev() = %#v, want PrevMsg{From: 4}", h.Prev())
	}
	if msg, ok := h.Pause().(PauseMsg); !ok || msg.From != 4 {
		t.Errorf("Pause() = %#v, want PauseMsg{From: 4}", h.Pause())
	}
	if msg, ok := h.Restart().(RestartMsg); !ok || msg.From != 4 {
		t.Errorf("Restart() = %#v, want RestartMsg{From: 4}", h.Restart())
	}
}

func TestIndexAlwaysInRange(t *testing.T) {
	m, _ := newTestModel()
	ops := []func() tea.Cmd{
		m.Retreat, m.Advance, m.Advance, m.Retreat, m.Retreat, m.Retreat,
		func() tea.Cmd { return m.JumpTo(99) }, m.Advance, m.Advance,
		func() tea.Cmd { return m.JumpTo(-1) }, m.Retreat, m.Restart,
	}

	for i, op := range ops {
		_ = op()
		if m.Index() < 0 || m.Index() >= sceneCount {
			t.Fatalf("after op %d Index() = %d out of range", i, m.Index())
		}
	}
}

func TestStateString(t *testing.T) {
	if StatePlaying.String() != "Playing" || StatePaused.String() != "Paused" {
		t.Error("unexpected state names")
	}
	if State(9).String() != "Unknown" {
		t.Error("expected Unknown for invalid state")
	}
	s := Snapshot{Index: 9, Count: 10, Paused: true}
	if s.State() != StatePaused || !s.IsLast() {
		t.Error("unexpected snapshot state")
	}
}
