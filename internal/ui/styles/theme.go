package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the invitation palette and pre-built styles.
type Theme struct {
	// Dusty blue, the wedding color
	Primary     lipgloss.Color
	PrimaryDeep lipgloss.Color
	// Champagne gold accent
	Secondary lipgloss.Color

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color
	FgMuted  lipgloss.Color
	FgSubtle lipgloss.Color

	// Backgrounds
	BgBase  lipgloss.Color
	BgPaper lipgloss.Color // envelope and cards

	Border lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common patterns.
type Styles struct {
	Base     lipgloss.Style
	Muted    lipgloss.Style
	Subtle   lipgloss.Style
	Title    lipgloss.Style
	Heading  lipgloss.Style // section headings, spaced caps
	Accent   lipgloss.Style
	Italic   lipgloss.Style // quotes and poem lines
	Card     lipgloss.Style // bordered box
	Button   lipgloss.Style
	Focused  lipgloss.Style // focused form field or button
	Segment  lipgloss.Style // filled progress segment
	Pending  lipgloss.Style // unfilled progress segment
	Success  lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
	Hint     lipgloss.Style
	Overlay  lipgloss.Style // pause badge
	Disabled lipgloss.Style
}

var defaultTheme = Theme{
	Primary:     lipgloss.Color("#8fa9c4"),
	PrimaryDeep: lipgloss.Color("#5b7a99"),
	Secondary:   lipgloss.Color("#d4b483"),

	FgBase:   lipgloss.Color("#e8e4dc"),
	FgMuted:  lipgloss.Color("#a8a39a"),
	FgSubtle: lipgloss.Color("#6e6a63"),

	BgBase:  lipgloss.Color("#1c2230"),
	BgPaper: lipgloss.Color("#f4efe6"),

	Border: lipgloss.Color("#5b7a99"),

	Success: lipgloss.Color("#7fb59a"),
	Error:   lipgloss.Color("#e07a7a"),
	Warning: lipgloss.Color("#d4b483"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Accent:  lipgloss.NewStyle().Foreground(t.Secondary),
		Italic:  base.Italic(true),
		Card: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		Button: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.PrimaryDeep).
			Padding(0, 2),
		Focused: lipgloss.NewStyle().
			Foreground(t.BgBase).
			Background(t.Primary).
			Bold(true),
		Segment:  lipgloss.NewStyle().Foreground(t.FgBase),
		Pending:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Success:  lipgloss.NewStyle().Foreground(t.Success),
		Error:    lipgloss.NewStyle().Foreground(t.Error),
		Warning:  lipgloss.NewStyle().Foreground(t.Warning),
		Hint:     lipgloss.NewStyle().Foreground(t.FgSubtle).Italic(true),
		Disabled: lipgloss.NewStyle().Foreground(t.FgSubtle).Strikethrough(true),
		Overlay: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary).
			Foreground(t.FgBase).
			Padding(0, 3),
	}
}

// Swatch renders a block of the given hex color, width cells wide.
func Swatch(hex string, width int) string {
	if width <= 0 {
		return ""
	}
	block := make([]rune, width)
	for i := range block {
		block[i] = '█'
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(string(block))
}
