// Package keymap defines key bindings and action dispatch for the story.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit Action = "quit"
	ActionHelp Action = "help"

	// Playback actions
	ActionNext    Action = "next"
	ActionPrev    Action = "prev"
	ActionPause   Action = "pause"
	ActionMute    Action = "mute"
	ActionRestart Action = "restart"
	ActionJump    Action = "jump"

	// Scene actions, resolved by the scenes themselves
	ActionOpen     Action = "open"
	ActionMap      Action = "map"
	ActionCalendar Action = "calendar"
	ActionShare    Action = "share"
	ActionScroll   Action = "scroll"
	ActionForm     Action = "form"
)
