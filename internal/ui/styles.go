package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors the styles are built from.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Danger    lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Text      lipgloss.Color
}

// DarkPalette suits terminals with a dark background.
var DarkPalette = Palette{
	Primary:   lipgloss.Color("4"),   // Blue
	Secondary: lipgloss.Color("8"),   // Gray
	Success:   lipgloss.Color("2"),   // Green
	Warning:   lipgloss.Color("3"),   // Yellow
	Danger:    lipgloss.Color("1"),   // Red
	Muted:     lipgloss.Color("245"), // Light gray
	Highlight: lipgloss.Color("6"),   // Cyan
	Text:      lipgloss.Color("252"), // Light text
}

// LightPalette suits terminals with a light background.
var LightPalette = Palette{
	Primary:   lipgloss.Color("25"),  // Dark blue
	Secondary: lipgloss.Color("250"), // Pale gray
	Success:   lipgloss.Color("28"),  // Dark green
	Warning:   lipgloss.Color("130"), // Amber
	Danger:    lipgloss.Color("124"), // Dark red
	Muted:     lipgloss.Color("242"), // Mid gray
	Highlight: lipgloss.Color("30"),  // Teal
	Text:      lipgloss.Color("235"), // Dark text
}

// Colors
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorDanger    lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorHighlight lipgloss.Color
	ColorText      lipgloss.Color
)

// Styles
var (
	BoxStyle lipgloss.Style

	TitleStyle lipgloss.Style

	// Column titles
	HeaderStyle lipgloss.Style

	NormalStyle  lipgloss.Style
	DoneStyle    lipgloss.Style
	ActiveStyle  lipgloss.Style
	BlockedStyle lipgloss.Style
	TodoStyle    lipgloss.Style
	UrgentStyle  lipgloss.Style
	PathStyle    lipgloss.Style
	HelpStyle    lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style
	DividerStyle lipgloss.Style
)

// Symbols
const (
	SymbolDone    = "✓"
	SymbolOpen    = "·"
	SymbolUrgent  = "!"
	SymbolDivider = "─"
)

func init() {
	applyPalette(DarkPalette)
}

// PaletteFor returns the palette for a ui.theme setting. "auto" (or an
// unknown value) asks the terminal whether its background is dark.
func PaletteFor(theme string) Palette {
	switch theme {
	case "dark":
		return DarkPalette
	case "light":
		return LightPalette
	}
	if lipgloss.HasDarkBackground() {
		return DarkPalette
	}
	return LightPalette
}

// SetTheme rebuilds every style from the palette for theme.
func SetTheme(theme string) {
	applyPalette(PaletteFor(theme))
}

func applyPalette(p Palette) {
	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorDanger = p.Danger
	ColorMuted = p.Muted
	ColorHighlight = p.Highlight
	ColorText = p.Text

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorSecondary).
		Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorMuted)

	NormalStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	DoneStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		Strikethrough(true)

	ActiveStyle = lipgloss.NewStyle().
		Foreground(ColorHighlight)

	BlockedStyle = lipgloss.NewStyle().
		Foreground(ColorDanger)

	TodoStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	UrgentStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	PathStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorDanger)

	DividerStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary)
}
