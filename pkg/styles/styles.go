// Package styles defines the shared lipgloss colors and text styles used by
// console output.
package styles

import "github.com/charmbracelet/lipgloss"

// Adaptive colors chosen to stay readable on both light and dark terminals.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F5F"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD75F"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#0057D7", Dark: "#5FAFFF"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#6C6C6C", Dark: "#8A8A8A"}
)

var (
	Error   = lipgloss.NewStyle().Foreground(ColorError)
	Warning = lipgloss.NewStyle().Foreground(ColorWarning)
	Success = lipgloss.NewStyle().Foreground(ColorSuccess)
	Info    = lipgloss.NewStyle().Foreground(ColorInfo)
	Muted   = lipgloss.NewStyle().Foreground(ColorMuted)
	Bold    = lipgloss.NewStyle().Bold(true)
)
