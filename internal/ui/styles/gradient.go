package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// fallbackGray stands in for colors that are not #rrggbb hex.
var fallbackGray = colorful.Color{R: 0.5, G: 0.5, B: 0.5}

// Gradient renders text with a horizontal color ramp from one color to the
// other, one grapheme cluster at a time. Spaces are kept unstyled.
func Gradient(text string, from, to lipgloss.Color, bold bool) string {
	clusters := graphemes(text)
	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Foreground(from).Bold(bold).Render(text)
	}

	ramp := Ramp(len(clusters), from, to)
	var b strings.Builder
	for i, cluster := range clusters {
		if strings.TrimSpace(cluster) == "" {
			b.WriteString(cluster)
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(ramp[i]).Bold(bold).Render(cluster))
	}
	return b.String()
}

// TitleGradient renders a bold dusty blue to gold heading.
func TitleGradient(text string) string {
	t := T()
	return Gradient(text, t.Primary, t.Secondary, true)
}

// Ramp returns n colors blended in HCL space from one color to the other.
func Ramp(n int, from, to lipgloss.Color) []lipgloss.Color {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []lipgloss.Color{from}
	}
	c1 := parseHex(from)
	c2 := parseHex(to)
	out := make([]lipgloss.Color, n)
	for i := range n {
		t := float64(i) / float64(n-1)
		out[i] = lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
	}
	return out
}

func parseHex(c lipgloss.Color) colorful.Color {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return fallbackGray
	}
	return col
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}
