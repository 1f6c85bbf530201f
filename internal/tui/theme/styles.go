package theme

import "github.com/charmbracelet/lipgloss"

// Common styles used across all TUI views. They are rebuilt by Use, so
// read them at render time rather than caching copies.
var (
	// TitleStyle is used for view titles and headers
	TitleStyle lipgloss.Style

	// SectionStyle is used for section headers within views
	SectionStyle lipgloss.Style

	// HelpStyle is used for help text and keyboard shortcuts
	HelpStyle lipgloss.Style

	// MutedStyle is used for less important text
	MutedStyle lipgloss.Style

	// ValueStyle is used for displaying values in key-value pairs
	ValueStyle lipgloss.Style

	// SuccessStyle is used for success messages and indicators
	SuccessStyle lipgloss.Style

	// ErrorStyle is used for error messages
	ErrorStyle lipgloss.Style

	// WarningStyle is used for warnings
	WarningStyle lipgloss.Style

	// BoxStyle frames standalone panels such as the key help
	BoxStyle lipgloss.Style

	// SelectedStyle frames the swatch under the cursor
	SelectedStyle lipgloss.Style

	// UnselectedStyle reserves the same frame space for other swatches
	UnselectedStyle lipgloss.Style

	// InputStyle frames the hex editor
	InputStyle lipgloss.Style
)

func rebuildStyles() {
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	SectionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary).
		MarginTop(1)

	HelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
		Foreground(ColorAccent)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(1, 2)

	SelectedStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(ColorPrimary)

	UnselectedStyle = lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder())

	InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorAccent).
		Padding(0, 1)
}

// RenderKeyValue renders "key: value" with a muted key
func RenderKeyValue(key, value string) string {
	return MutedStyle.Render(key+": ") + ValueStyle.Render(value)
}

// RenderSection puts a section header above content
func RenderSection(title, content string) string {
	return SectionStyle.Render(title) + "\n" + content
}

// CenteredText centers a rendered block in a width x height area. Blocks
// with equal-width lines, such as a BoxStyle frame, stay aligned.
func CenteredText(width, height int, text string) string {
	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)
	return style.Render(text)
}
