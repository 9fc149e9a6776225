package story

import "time"

// AdvanceMsg fires when a scene's dwell time has elapsed.
// The Version field is used to ignore timers armed for an earlier scene
// or pause state.
type AdvanceMsg struct {
	Version int
}

// ProgressMsg is one poll of the progress indicator.
type ProgressMsg struct {
	Version int
	At      time.Time
}

// NextMsg is a scene asking to move forward.
// From is the index of the requesting scene; requests from a scene that is
// no longer current are dropped.
type NextMsg struct {
	From int
}

// PrevMsg is a scene asking to move back.
type PrevMsg struct {
	From int
}

// PauseMsg is a scene asking playback to hold (e.g. while a form is open).
// It never resumes playback.
type PauseMsg struct {
	From int
}

// RestartMsg is the last scene offering to replay the story from the top.
type RestartMsg struct {
	From int
}
