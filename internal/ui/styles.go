package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// This file centralizes the lipgloss styles used by the console reports.

var (
	// Banners
	BannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("63")). // Purple-ish
			Foreground(lipgloss.Color("#FFF")).
			Bold(true).
			Width(60).
			Align(lipgloss.Center)

	// Section headers ("=== ... ===")
	SectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")). // Brand Color
			Bold(true)

	// Group headers inside a section
	GroupStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Light purple
			Bold(true)

	RuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // Dim gray

	// Result rows
	WinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
	TimeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")) // Light Gray
	SkippedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	// Status lines
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")). // Green
			Bold(true)
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Orange
			Bold(true)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// Recommendations
	ArrowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // Cyan/Teal
)

// ConfigureColor picks the colour profile for console output. Colour is
// disabled when noColor is set or NO_COLOR is present in the environment.
func ConfigureColor(noColor bool) {
	if noColor || termenv.EnvNoColor() {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}
