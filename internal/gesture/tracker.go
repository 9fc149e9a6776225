package gesture

import "time"

// Config holds the classification thresholds.
type Config struct {
	TapThreshold  time.Duration
	SwipeDistance int
}

// DefaultConfig returns the default thresholds.
func DefaultConfig() Config {
	return Config{
		TapThreshold:  DefaultTapThreshold,
		SwipeDistance: DefaultSwipeDistance,
	}
}

// Tracker follows one pointer interaction from press to release.
//
// A release is classified once: a swipe wins over a tap, a short press is a
// tap classified by release position, and a long press yields None.
type Tracker struct {
	cfg       Config
	active    bool
	startX    int
	startY    int
	startedAt time.Time
}

// NewTracker creates a tracker. Zero thresholds fall back to the defaults.
func NewTracker(cfg Config) Tracker {
	if cfg.TapThreshold <= 0 {
		cfg.TapThreshold = DefaultTapThreshold
	}
	if cfg.SwipeDistance <= 0 {
		cfg.SwipeDistance = DefaultSwipeDistance
	}
	return Tracker{cfg: cfg}
}

// Config returns the tracker thresholds.
func (t Tracker) Config() Config {
	return t.cfg
}

// Active reports whether a press is in progress.
func (t Tracker) Active() bool {
	return t.active
}

// Press starts an interaction.
func (t *Tracker) Press(x, y int, at time.Time) {
	t.active = true
	t.startX = x
	t.startY = y
	t.startedAt = at
}

// Cancel drops the interaction in progress.
func (t *Tracker) Cancel() {
	t.active = false
}

// Release ends the interaction and classifies it against the screen width.
func (t *Tracker) Release(x, y int, at time.Time, width int) Intent {
	if !t.active {
		return None
	}
	t.active = false

	if dir := DetectSwipe(x-t.startX, y-t.startY, t.cfg.SwipeDistance); dir != NoSwipe {
		return dir.Intent()
	}
	if at.Sub(t.startedAt) >= t.cfg.TapThreshold {
		return None
	}
	return ClassifyTap(x, width)
}
