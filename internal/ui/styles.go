// Package ui holds the console styles for desksync output.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	Primary = lipgloss.Color("#66C2FF") // Steam blue
	Success = lipgloss.Color("#10B981") // Green
	Warning = lipgloss.Color("#F59E0B") // Amber
	Danger  = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Danger)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)
)
