// Package audio is the background music side channel of the story.
// Real playback is not implemented; Silent stands in for a player.
package audio

// Interface defines the audio contract for dependency injection and testing.
type Interface interface {
	Play()
	Pause()
	Playing() bool
}

// Verify implementations at compile time.
var (
	_ Interface = (*Silent)(nil)
	_ Interface = (*Mock)(nil)
)

// Silent tracks play/pause without producing sound.
type Silent struct {
	playing bool
}

// NewSilent creates a silent player.
func NewSilent() *Silent {
	return &Silent{}
}

func (s *Silent) Play() { s.playing = true }

func (s *Silent) Pause() { s.playing = false }

func (s *Silent) Playing() bool { return s.playing }

// Sync plays or pauses p so that it matches active.
func Sync(p Interface, active bool) {
	if p == nil || p.Playing() == active {
		return
	}
	if active {
		p.Play()
	} else {
		p.Pause()
	}
}
