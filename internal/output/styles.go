package output

import "github.com/charmbracelet/lipgloss"

var (
	// ColorCyan marks identifiable nouns such as module names and paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")
)

var (
	// StyleNoun styles module names and paths.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome such as file listings.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleWarning styles warning bullet lines.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)

	styleCheck = lipgloss.NewStyle().Foreground(ColorGreenCheck)
)

// Checkmark returns the styled completion mark.
func Checkmark() string {
	return styleCheck.Render("✔")
}
