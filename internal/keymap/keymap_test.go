package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Global(t *testing.T) {
	r := NewResolver(Global())

	tests := []struct {
		key      string
		expected Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"?", ActionHelp},
		{"left", ActionPrev},
		{"h", ActionPrev},
		{"right", ActionNext},
		{"l", ActionNext},
		{" ", ActionPause},
		{"m", ActionMute},
		{"r", ActionRestart},
		{"7", ActionJump},
		{"0", ActionJump},
		{"enter", ""},
		{"x", ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.expected)
			}
		})
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionNext, []string{"right", "l"}, "Next", "playback"},
		{ActionNext, []string{"l", "pgdown"}, "Next", "other"},
	})

	got := r.KeysFor(ActionNext)
	want := []string{"right", "l", "pgdown"}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor() = %v, want %v", got, want)
	}
	if r.KeysFor(ActionQuit) != nil {
		t.Error("KeysFor() of unbound action should be nil")
	}
}

func TestJumpIndex(t *testing.T) {
	tests := []struct {
		key  string
		want int
	}{
		{"1", 0},
		{"9", 8},
		{"0", 9},
		{"10", -1},
		{"a", -1},
		{"", -1},
	}

	for _, tt := range tests {
		if got := JumpIndex(tt.key); got != tt.want {
			t.Errorf("JumpIndex(%q) = %d, want %d", tt.key, got, tt.want)
		}
	}
}

func TestByContext(t *testing.T) {
	for _, b := range ByContext("rsvp") {
		if b.Context != "rsvp" {
			t.Errorf("binding %v in wrong context", b.Keys)
		}
	}
	if len(ByContext("nope")) != 0 {
		t.Error("unknown context should be empty")
	}
}

func TestAllBindingsHaveDescriptions(t *testing.T) {
	for _, b := range All {
		if b.Description == "" || len(b.Keys) == 0 || b.Action == "" {
			t.Errorf("incomplete binding: %+v", b)
		}
	}
}
