package report

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the CLI reporters.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleLabel is used for class names and section headers.
	StyleLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError is used for failed lookups.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleCaret marks the cursor under an echoed line prefix.
	StyleCaret = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleFramework is used for the active framework name.
	StyleFramework = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is used for descriptions and hints.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
