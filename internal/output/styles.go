package output

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the listing renderer. The colors are chosen for dark
// terminal backgrounds with good contrast.
const (
	// colorCommand is blue, used for command names.
	colorCommand = lipgloss.Color("#3B82F6")
	// colorOption is gray, used for option lines beneath a command.
	colorOption = lipgloss.Color("#9CA3AF")
)

var (
	// commandStyle renders command names.
	commandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCommand)

	// optionStyle renders option lines, visually distinct from commands.
	optionStyle = lipgloss.NewStyle().
			Foreground(colorOption)
)
