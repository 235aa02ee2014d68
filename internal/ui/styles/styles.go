// Package styles defines the visual styling for the application.
package styles

import "github.com/charmbracelet/lipgloss"

// Color definitions for the wrapped theme.
var (
	// Primary colors
	Primary   = lipgloss.Color("205") // Pink
	Secondary = lipgloss.Color("63")  // Purple
	Subtle    = lipgloss.Color("240") // Gray

	// Accent colors
	Accent     = lipgloss.Color("208") // Orange
	AccentCool = lipgloss.Color("39")  // Blue

	// Status colors
	Success = lipgloss.Color("42")  // Green
	Error   = lipgloss.Color("196") // Red
	Warning = lipgloss.Color("220") // Yellow
	Info    = lipgloss.Color("39")  // Blue

	// Background colors
	BgDark  = lipgloss.Color("235")
	BgLight = lipgloss.Color("237")

	// Text colors
	TextPrimary   = lipgloss.Color("252")
	TextSecondary = lipgloss.Color("245")
	TextMuted     = lipgloss.Color("240")
)

// TitleStyle is used for main headings.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// SubTitleStyle is used for section headings.
var SubTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary).
	MarginBottom(1)

// BannerStyle frames the report header.
var BannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Secondary).
	Padding(0, 4)

// DocStyle provides consistent document margins.
var DocStyle = lipgloss.NewStyle().
	Margin(1, 2).
	Padding(0, 1)

// CardStyle creates a bordered card container.
var CardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Subtle).
	Padding(1, 2).
	MarginBottom(1)

// CardTitleStyle styles card headers.
var CardTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Primary).
	MarginBottom(1)

// StatLabelStyle styles the label half of a stat row.
var StatLabelStyle = lipgloss.NewStyle().
	Width(22).
	Foreground(TextMuted)

// StatValueStyle styles the value half of a stat row.
var StatValueStyle = lipgloss.NewStyle().
	Foreground(TextPrimary).
	Bold(true)

// HelpStyle is the base style for help text.
var HelpStyle = lipgloss.NewStyle().
	Foreground(TextMuted)

// HelpPanelStyle creates the help overlay panel.
var HelpPanelStyle = lipgloss.NewStyle().
	Border(lipgloss.DoubleBorder()).
	BorderForeground(Primary).
	Padding(1, 3).
	Background(BgDark)

// ErrorTextStyle for error messages.
var ErrorTextStyle = lipgloss.NewStyle().
	Foreground(Error)

// WarningTextStyle for warning messages.
var WarningTextStyle = lipgloss.NewStyle().
	Foreground(Warning)

// SuccessTextStyle for success messages.
var SuccessTextStyle = lipgloss.NewStyle().
	Foreground(Success)

// InfoTextStyle for info messages.
var InfoTextStyle = lipgloss.NewStyle().
	Foreground(Info)

// RankStyle highlights the position number in ranked lists.
var RankStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(Secondary)

// heatStyles maps heatmap intensity (0-3) to a style.
var heatStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(Subtle),
	lipgloss.NewStyle().Foreground(Success),
	lipgloss.NewStyle().Foreground(Warning),
	lipgloss.NewStyle().Foreground(Error),
}

// GetHeatStyle returns the style for a heatmap intensity level, clamping
// out-of-range values.
func GetHeatStyle(intensity int) lipgloss.Style {
	if intensity < 0 {
		intensity = 0
	}
	if intensity >= len(heatStyles) {
		intensity = len(heatStyles) - 1
	}
	return heatStyles[intensity]
}

// CenterHorizontal centers content horizontally within a given width.
func CenterHorizontal(content string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(content)
}
