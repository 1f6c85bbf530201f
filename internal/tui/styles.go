package tui

import (
	"strings"

	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	"github.com/charmbracelet/lipgloss"
)

// statusBarStyle follows the active theme, so it is built per render
func statusBarStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1)
	if theme.Current() == theme.Light {
		return style.
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("253"))
	}
	return style.
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("236"))
}

// GetStatusBarText formats a status bar message
func GetStatusBarText(width int, items ...string) string {
	style := statusBarStyle()
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.Join(items, " │ "))
}
