// Package cli provides styled terminal output and prompting helpers.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/homexpense/homexpense/internal/analysis"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#3b82f6") // Blue, the app's accent
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#10b981") // Green
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#f59e0b") // Amber
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#ef4444") // Red
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#6366f1") // Indigo
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// HeaderStyle formats table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or over-budget figures.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)
)

// BandStyle returns the style for a budget severity band.
func BandStyle(band string) lipgloss.Style {
	switch band {
	case analysis.BandOverBudget:
		return ErrorStyle
	case analysis.BandNearLimit:
		return WarningStyle
	default:
		return SuccessStyle
	}
}
