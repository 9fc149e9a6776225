// Package gesture turns raw pointer press/release pairs into playback intents.
package gesture

import (
	"time"
)

const (
	// DefaultTapThreshold is the longest press that still counts as a tap.
	DefaultTapThreshold = 200 * time.Millisecond

	// DefaultSwipeDistance is the horizontal travel, in cells, that makes a
	// drag a swipe.
	DefaultSwipeDistance = 6
)

// Intent is the playback transition a gesture asks for.
type Intent int

const (
	None Intent = iota
	Retreat
	Advance
	TogglePause
)

// String returns the intent name.
func (i Intent) String() string {
	switch i {
	case None:
		return "none"
	case Retreat:
		return "retreat"
	case Advance:
		return "advance"
	case TogglePause:
		return "toggle-pause"
	default:
		return "unknown"
	}
}

// Direction is the horizontal direction of a swipe.
type Direction int

const (
	NoSwipe Direction = iota
	SwipeLeft
	SwipeRight
)

// Intent maps a swipe to its transition: left advances, right retreats.
func (d Direction) Intent() Intent {
	switch d {
	case SwipeLeft:
		return Advance
	case SwipeRight:
		return Retreat
	default:
		return None
	}
}

// ClassifyTap maps a tap's horizontal release position to a zone:
// left third retreats, right third advances, the middle toggles pause.
func ClassifyTap(x, width int) Intent {
	if width <= 0 {
		return None
	}
	fx, w := float64(x), float64(width)
	switch {
	case fx < w/3:
		return Retreat
	case fx > w*2/3:
		return Advance
	default:
		return TogglePause
	}
}

// DetectSwipe reports the swipe direction for a drag of (dx, dy) cells.
// Horizontal travel must reach distance and dominate vertical travel.
func DetectSwipe(dx, dy, distance int) Direction {
	adx, ady := abs(dx), abs(dy)
	if distance <= 0 || adx < distance || adx <= ady {
		return NoSwipe
	}
	if dx < 0 {
		return SwipeLeft
	}
	return SwipeRight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
