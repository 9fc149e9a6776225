package keymap

import "strconv"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "playback", "scenes", "rsvp"
}

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},

	// Playback
	{ActionPrev, []string{"left", "h"}, "Previous scene", "playback"},
	{ActionNext, []string{"right", "l"}, "Next scene", "playback"},
	{ActionPause, []string{" "}, "Pause/resume", "playback"},
	{ActionMute, []string{"m"}, "Mute/unmute music", "playback"},
	{ActionRestart, []string{"r"}, "Replay from the start", "playback"},
	{ActionJump, []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}, "Jump to scene (0 = 10th)", "playback"},

	// Scenes
	{ActionOpen, []string{"enter"}, "Open the envelope / RSVP", "scenes"},
	{ActionMap, []string{"o"}, "Show the venue map link", "scenes"},
	{ActionCalendar, []string{"c", "s"}, "Save the date (.ics)", "scenes"},
	{ActionShare, []string{"w"}, "Share on WhatsApp", "scenes"},
	{ActionScroll, []string{"up", "down", "k", "j"}, "Scroll long scenes", "scenes"},

	// RSVP form
	{ActionForm, []string{"tab", "shift+tab"}, "Next/previous field", "rsvp"},
	{ActionForm, []string{"y", "n"}, "Attending yes/no", "rsvp"},
	{ActionForm, []string{"enter"}, "Submit", "rsvp"},
	{ActionForm, []string{"esc"}, "Close the form", "rsvp"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// Global returns the bindings the host dispatches itself.
func Global() []Binding {
	return append(ByContext("global"), ByContext("playback")...)
}

// JumpIndex converts a jump key to a scene index: "1" is the first scene,
// "0" the tenth. Returns -1 for other keys.
func JumpIndex(key string) int {
	n, err := strconv.Atoi(key)
	if err != nil || len(key) != 1 {
		return -1
	}
	if n == 0 {
		return 9
	}
	return n - 1
}
