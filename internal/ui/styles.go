package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	ColorPrimary   = lipgloss.Color("205") // Pink
	ColorSecondary = lipgloss.Color("241") // Gray
	ColorSuccess   = lipgloss.Color("42")  // Green
	ColorError     = lipgloss.Color("160") // Red
	ColorText      = lipgloss.Color("252") // White/Gray

	StyleTitle   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)
	StyleSubtle  = lipgloss.NewStyle().Foreground(ColorSecondary)
	StylePrimary = lipgloss.NewStyle().Foreground(ColorPrimary)
	StyleError   = lipgloss.NewStyle().Foreground(ColorError)

	// Stage lines on stderr
	StylePrefixDone  = lipgloss.NewStyle().Foreground(ColorSuccess)          // Green for done
	StylePrefixError = lipgloss.NewStyle().Foreground(ColorError).Bold(true) // Red for errors
	StyleStageName   = lipgloss.NewStyle().Foreground(ColorText).Bold(true)

	// Usage summary box
	StyleSummaryBox = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(0, 1)
)

// Icon returns a styled icon string
func Icon(icon string, style lipgloss.Style) string {
	return style.Render(icon)
}
