// Package segments renders the story progress indicator: one bar segment per
// scene, filled for past scenes, partially filled for the current one.
package segments

import (
	"strings"

	"github.com/llehouerou/weddingstory/internal/ui/styles"
)

const (
	filledBlock = "▓"
	emptyBlock  = "░"
	gap         = 1
)

// Span is the half-open column range [Start, End) of one segment.
type Span struct {
	Start, End int
}

// Layout splits width columns into count segments separated by a one-cell
// gap. Leftover columns go to the leading segments. Returns nil if a segment
// would be narrower than one cell.
func Layout(width, count int) []Span {
	if count <= 0 {
		return nil
	}
	usable := width - gap*(count-1)
	if usable < count {
		return nil
	}
	base, extra := usable/count, usable%count

	spans := make([]Span, count)
	x := 0
	for i := range spans {
		w := base
		if i < extra {
			w++
		}
		spans[i] = Span{Start: x, End: x + w}
		x += w + gap
	}
	return spans
}

// SegmentAt returns the scene index whose segment covers column x, or -1
// when x falls in a gap or outside the bar.
func SegmentAt(x, width, count int) int {
	for i, s := range Layout(width, count) {
		if x >= s.Start && x < s.End {
			return i
		}
	}
	return -1
}

// Render draws the bar. progress is the current scene's fill in [0,1].
func Render(count, index int, progress float64, width int) string {
	spans := Layout(width, count)
	if spans == nil {
		return strings.Repeat(" ", max(width, 0))
	}
	progress = min(max(progress, 0), 1)
	s := styles.T().S()

	var b strings.Builder
	for i, span := range spans {
		if i > 0 {
			b.WriteString(strings.Repeat(" ", gap))
		}
		w := span.End - span.Start
		filled := 0
		switch {
		case i < index:
			filled = w
		case i == index:
			filled = min(int(float64(w)*progress), w)
		}
		b.WriteString(s.Segment.Render(strings.Repeat(filledBlock, filled)))
		b.WriteString(s.Pending.Render(strings.Repeat(emptyBlock, w-filled)))
	}
	return b.String()
}
