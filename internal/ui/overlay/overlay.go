// Package overlay draws floating boxes, such as the pause badge, on top of a
// rendered screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Compose draws top over base, line by line from the top-left corner.
// On each line only the span between the first and last visible cell of
// top replaces base; cells outside that span show through. ANSI styling on
// either side is preserved.
func Compose(base, top string, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(top, "\n") {
		if i >= len(baseLines) {
			break
		}
		plain := ansi.Strip(line)
		trimmed := strings.TrimRight(plain, " ")
		lead := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
		if lead == len(trimmed) {
			continue
		}
		from := lead
		to := from + ansi.StringWidth(trimmed[lead:])

		under := baseLines[i]
		if w := ansi.StringWidth(under); w < width {
			under += strings.Repeat(" ", width-w)
		}

		out := ansi.Cut(under, 0, from) + ansi.Cut(line, from, to)
		if to < width {
			out += ansi.Cut(under, to, width)
		}
		baseLines[i] = out
	}

	return strings.Join(baseLines, "\n")
}

// Center draws box in the middle of a width x height base.
func Center(base, box string, width, height int) string {
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceChars(" "))
	return Compose(base, placed, width)
}
