// Package styles contains the shared styles for the ep terminal output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorDirectory = "#3b82f6"
	ColorError     = "#d75f6b"
	ColorSubtle    = "#a3a3a3"
	ColorSuccess   = "#22c55e"
)

var (
	Bold      = lipgloss.NewStyle().Bold(true).Render
	Directory = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDirectory)).Bold(true).Render
	Subtle    = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSubtle)).Render
	Success   = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render
	Error     = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render
)
