package theme

import "github.com/charmbracelet/lipgloss"

// Theme names accepted by Use
const (
	Dark  = "dark"
	Light = "light"
)

// Chrome colours. The swatches carry the palette's own colours; these only
// paint the UI around them.
var (
	ColorPrimary   lipgloss.Color
	ColorSecondary lipgloss.Color
	ColorAccent    lipgloss.Color
	ColorSuccess   lipgloss.Color
	ColorWarning   lipgloss.Color
	ColorError     lipgloss.Color
	ColorMuted     lipgloss.Color
	ColorBorder    lipgloss.Color
	ColorText      lipgloss.Color
)

var current = Dark

func init() {
	Use(Dark)
}

// Use switches the chrome colours and rebuilds every shared style.
// Unknown names fall back to the dark theme.
func Use(name string) {
	switch name {
	case Light:
		ColorPrimary = lipgloss.Color("125")  // Deep magenta
		ColorSecondary = lipgloss.Color("25") // Blue
		ColorAccent = lipgloss.Color("30")    // Teal
		ColorSuccess = lipgloss.Color("28")   // Green
		ColorWarning = lipgloss.Color("130")  // Brown-orange
		ColorError = lipgloss.Color("160")    // Red
		ColorMuted = lipgloss.Color("244")    // Gray
		ColorBorder = lipgloss.Color("250")   // Light gray
		ColorText = lipgloss.Color("235")     // Near black
		current = Light
	default:
		ColorPrimary = lipgloss.Color("205")  // Pink
		ColorSecondary = lipgloss.Color("99") // Purple
		ColorAccent = lipgloss.Color("86")    // Cyan
		ColorSuccess = lipgloss.Color("42")   // Green
		ColorWarning = lipgloss.Color("214")  // Orange
		ColorError = lipgloss.Color("196")    // Red
		ColorMuted = lipgloss.Color("242")    // Gray
		ColorBorder = lipgloss.Color("238")   // Dark gray
		ColorText = lipgloss.Color("252")     // Off white
		current = Dark
	}

	rebuildStyles()
}

// Current returns the active theme name
func Current() string {
	return current
}
