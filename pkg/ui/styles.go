package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is the set of colors a theme assigns to the UI roles
type Palette struct {
	Primary lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Muted   lipgloss.TerminalColor
	Text    lipgloss.TerminalColor
}

// Themes accepted by SetTheme. "auto" lets lipgloss detect the background.
var Themes = map[string]Palette{
	"auto": {
		Primary: lipgloss.AdaptiveColor{Light: "5", Dark: "13"},
		Accent:  lipgloss.AdaptiveColor{Light: "4", Dark: "12"},
		Info:    lipgloss.AdaptiveColor{Light: "6", Dark: "14"},
		Success: lipgloss.AdaptiveColor{Light: "2", Dark: "10"},
		Warning: lipgloss.AdaptiveColor{Light: "3", Dark: "11"},
		Error:   lipgloss.AdaptiveColor{Light: "1", Dark: "9"},
		Muted:   lipgloss.AdaptiveColor{Light: "8", Dark: "8"},
		Text:    lipgloss.AdaptiveColor{Light: "0", Dark: "7"},
	},
	"dark": {
		Primary: lipgloss.Color("13"),
		Accent:  lipgloss.Color("12"),
		Info:    lipgloss.Color("14"),
		Success: lipgloss.Color("10"),
		Warning: lipgloss.Color("11"),
		Error:   lipgloss.Color("9"),
		Muted:   lipgloss.Color("8"),
		Text:    lipgloss.Color("7"),
	},
	"light": {
		Primary: lipgloss.Color("5"),
		Accent:  lipgloss.Color("4"),
		Info:    lipgloss.Color("6"),
		Success: lipgloss.Color("2"),
		Warning: lipgloss.Color("3"),
		Error:   lipgloss.Color("1"),
		Muted:   lipgloss.Color("8"),
		Text:    lipgloss.Color("0"),
	},
	"mono": {
		Primary: lipgloss.NoColor{},
		Accent:  lipgloss.NoColor{},
		Info:    lipgloss.NoColor{},
		Success: lipgloss.NoColor{},
		Warning: lipgloss.NoColor{},
		Error:   lipgloss.NoColor{},
		Muted:   lipgloss.NoColor{},
		Text:    lipgloss.NoColor{},
	},
}

var (
	// Colors of the active theme
	ColorPrimary lipgloss.TerminalColor
	ColorAccent  lipgloss.TerminalColor
	ColorInfo    lipgloss.TerminalColor
	ColorWarning lipgloss.TerminalColor
	ColorError   lipgloss.TerminalColor
	ColorMuted   lipgloss.TerminalColor
	ColorDefault lipgloss.TerminalColor

	// Message styles
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style

	// Component styles
	StyleTitle       lipgloss.Style
	StyleHeader      lipgloss.Style
	StyleBold        lipgloss.Style
	StyleSelected    lipgloss.Style
	StyleBanner      lipgloss.Style
	StyleTableHeader lipgloss.Style
	StyleTableRule   lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style

	// Status icons
	IconSuccess = "✔"
	IconError   = "✘"
	IconInfo    = "ℹ"
	IconWarning = "⚠"
	IconCheck   = "■"
	IconUncheck = "□"

	// File category icons
	IconImage    = "🖼"
	IconVideo    = "🎬"
	IconAudio    = "🎵"
	IconDocument = "📄"
	IconFile     = "📦"
)

func init() {
	SetTheme("auto")
}

// SetTheme switches every style to the named theme.
// Unknown names fall back to "auto" and it reports false.
func SetTheme(theme string) bool {
	p, ok := Themes[theme]
	if !ok {
		p = Themes["auto"]
	}

	switch theme {
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	case "light":
		lipgloss.SetHasDarkBackground(false)
	}

	apply(p)
	return ok
}

func apply(p Palette) {
	ColorPrimary = p.Primary
	ColorAccent = p.Accent
	ColorInfo = p.Info
	ColorWarning = p.Warning
	ColorError = p.Error
	ColorMuted = p.Muted
	ColorDefault = p.Text

	StyleSuccess = lipgloss.NewStyle().Foreground(p.Success).Bold(true)
	StyleError = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	StylePrimary = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	StyleInfo = lipgloss.NewStyle().Foreground(p.Info)
	StyleMuted = lipgloss.NewStyle().Foreground(p.Muted)
	StyleWarning = lipgloss.NewStyle().Foreground(p.Warning).Bold(true)
	StyleAccent = lipgloss.NewStyle().Foreground(p.Accent)

	StyleTitle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true)
	StyleHeader = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleSelected = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
	StyleBanner = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Error).
		Padding(0, 1)

	StyleTableHeader = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	StyleTableRule = lipgloss.NewStyle().Foreground(p.Muted)
	StyleTableRow = lipgloss.NewStyle().Foreground(p.Text)
	StyleTableRowAlt = lipgloss.NewStyle().Foreground(p.Text).Faint(true)
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string {
	return StyleSuccess.Render(IconSuccess + " " + msg)
}

// FormatError returns an error message with icon
func FormatError(msg string) string {
	return StyleError.Render(IconError + " " + msg)
}

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string {
	return StyleInfo.Render(IconInfo + " " + msg)
}

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string {
	return StyleWarning.Render(IconWarning + " " + msg)
}

// FormatBanner returns a bordered error banner for full-screen views
func FormatBanner(msg string) string {
	return StyleBanner.Render(IconError + " " + msg)
}

// FormatTitle returns a formatted title
func FormatTitle(title string) string {
	return StyleTitle.Render(title)
}

// FormatMuted returns muted text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// CategoryIcon returns the icon for a file category name
// ("image", "video", "audio", "document"); anything else gets the generic icon.
func CategoryIcon(category string) string {
	switch category {
	case "image":
		return IconImage
	case "video":
		return IconVideo
	case "audio":
		return IconAudio
	case "document":
		return IconDocument
	default:
		return IconFile
	}
}
