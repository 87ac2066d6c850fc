package shell

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"}).
			Bold(true)
	replyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "0", Dark: "15"})
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	greetingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"}).
			Bold(true)
)

// entryStyle returns the style for a transcript entry kind.
func entryStyle(k entryKind) lipgloss.Style {
	switch k {
	case entryInput:
		return promptStyle
	case entryError:
		return errorStyle
	case entryGreeting:
		return greetingStyle
	default:
		return replyStyle
	}
}
