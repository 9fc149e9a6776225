package scenes

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_OrderAndTitles(t *testing.T) {
	got := All(testInvitation(t), testDeps())

	want := []string{
		"Envelope", "Blessing", "Date", "Venue", "Schedule",
		"Dress code", "RSVP", "Scripture", "Thank you", "Journey",
	}
	require.Len(t, got, len(want))
	for i, s := range got {
		assert.Equal(t, want[i], s.Title(), "scene %d", i)
	}
}

func TestAll_ScenesRender(t *testing.T) {
	for i, s := range All(testInvitation(t), testDeps()) {
		s.SetSize(testWidth, testHeight)
		s.SetActive(true)

		out := view(s)
		assert.NotEmpty(t, strings.TrimSpace(out), "scene %d (%s) rendered nothing", i, s.Title())
		assert.Nil(t, s.Init())
	}
}

func TestAll_PresentationScenesContent(t *testing.T) {
	tests := []struct {
		index int
		want  []string
	}{
		{1, []string{"K & N", "covenant of love", "We invite you to our wedding"}},
		{2, []string{"06", "D E C E M B E R", "2025", "Dusty Blue & White"}},
		{3, []string{"Letsholathebe", "B O T S W A N A", "Open map"}},
		{4, []string{"5:00 AM", "Patlo", "Kgoroso"}},
		{5, []string{"Formal", "Dusty Blue", "Cream"}},
		{8, []string{"Koketso & Neo", "Save the date", "Share"}},
	}

	for _, tt := range tests {
		s := build(t, tt.index, testDeps())
		out := view(s)
		for _, w := range tt.want {
			assert.Contains(t, out, w, "scene %d (%s)", tt.index, s.Title())
		}
	}
}

func TestBase_NoDefaultInteraction(t *testing.T) {
	s := build(t, 1, testDeps())

	handled, cmd := s.HandleKey(key("x"))
	assert.False(t, handled)
	assert.Nil(t, cmd)

	handled, _ = s.Click(1, 1)
	assert.False(t, handled)
	assert.False(t, s.Capturing())
}

func TestBackdrop_DeferredUntilSized(t *testing.T) {
	b := newBase(3)
	require.False(t, b.backdrop.ready)

	b.SetSize(0, 0)
	assert.False(t, b.backdrop.ready, "zero size must not lay out decorations")

	b.SetSize(90, 30)
	require.True(t, b.backdrop.ready)
	stars := b.backdrop.stars
	assert.Len(t, stars, 90*30/density)

	b.SetSize(120, 40)
	assert.Equal(t, stars, b.backdrop.stars, "resize must keep the pattern")
}

func TestBackdrop_Deterministic(t *testing.T) {
	a, b := newBase(2), newBase(2)
	a.SetSize(80, 20)
	b.SetSize(80, 20)

	assert.Equal(t, a.backdrop.render(80, 20), b.backdrop.render(80, 20))
}

func TestBackdrop_RenderSize(t *testing.T) {
	b := newBase(0)
	b.SetSize(30, 5)

	rows := strings.Split(b.backdrop.render(30, 5), "\n")
	require.Len(t, rows, 5)
	for _, r := range rows {
		assert.Equal(t, 30, ansi.StringWidth(r))
	}
}

func TestHit(t *testing.T) {
	v := "line one\n  [ OK ]  "

	assert.True(t, hit(v, "[ OK ]", 2, 1))
	assert.True(t, hit(v, "[ OK ]", 7, 1))
	assert.False(t, hit(v, "[ OK ]", 8, 1))
	assert.False(t, hit(v, "[ OK ]", 3, 0))
	assert.False(t, hit(v, "missing", 0, 0))
}

func TestLines_SkipsEmpty(t *testing.T) {
	assert.Equal(t, "a\n\nb", lines("a", "", "b"))
}
