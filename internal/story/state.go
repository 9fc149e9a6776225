package story

// State represents the transport state of the story.
type State int

const (
	StatePlaying State = iota
	StatePaused
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// Snapshot is a read-only copy of the playback state.
type Snapshot struct {
	Index    int
	Count    int
	Playing  bool
	Paused   bool
	Muted    bool
	Progress float64
}

// State returns the transport state.
func (s Snapshot) State() State {
	if s.Paused {
		return StatePaused
	}
	return StatePlaying
}

// IsLast returns true if the snapshot is on the final scene.
func (s Snapshot) IsLast() bool {
	return s.Index == s.Count-1
}
