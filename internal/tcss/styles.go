package tcss

import "github.com/charmbracelet/lipgloss"

// Terminal styles for reports. Lipgloss degrades colors to what the terminal
// supports.
var (
	StyleLocation = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	StyleError    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	StyleCaret    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	StyleClean    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleMuted    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
