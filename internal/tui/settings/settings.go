package settings

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Version is reported in the Application section
var Version = "0.1.0-dev"

var labelStyle = lipgloss.NewStyle().Width(20)

// ConfigReloadedMsg carries the result of reloading the config file
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// Model represents the settings view model
type Model struct {
	width  int
	height int

	config *config.Config
	load   func() (*config.Config, error)

	reloading  bool
	lastReload time.Time
	reloadErr  error
}

// NewModel creates a new settings model
func NewModel(cfg *config.Config) Model {
	return Model{
		config: cfg,
		load:   config.Load,
	}
}

// Init initializes the settings model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the settings view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r", "R":
			// Reload configuration
			m.reloading = true
			return m, m.reloadConfig
		}

	case ConfigReloadedMsg:
		m.reloading = false
		m.reloadErr = msg.Err
		m.lastReload = time.Now()
		if msg.Err == nil && msg.Config != nil {
			m.config = msg.Config
		}
		return m, nil
	}

	return m, nil
}

// View renders the settings view
func (m Model) View() string {
	var b strings.Builder

	// Header
	b.WriteString(theme.TitleStyle.Render("⚙️  Settings"))
	b.WriteString("\n")

	b.WriteString(m.renderPreferences())
	b.WriteString("\n")

	b.WriteString(m.renderLabels())
	b.WriteString("\n")

	b.WriteString(m.renderAppInfo())
	b.WriteString("\n")

	b.WriteString(m.renderReloadStatus())

	// Footer
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderPreferences renders the preferences section
func (m Model) renderPreferences() string {
	if m.config == nil {
		return theme.RenderSection("Preferences", theme.MutedStyle.Render("No configuration loaded"))
	}

	var b strings.Builder

	prefs := m.config.Preferences
	b.WriteString(m.renderConfigLine("Theme", prefs.Theme))
	b.WriteString(m.renderConfigLine("Language", prefs.Language))

	seed := "random"
	if m.config.HasFixedSeed() {
		seed = fmt.Sprintf("%d", prefs.Seed)
	}
	b.WriteString(m.renderConfigLine("Seed", seed))
	b.WriteString(m.renderConfigLine("Show HSL", fmt.Sprintf("%t", prefs.ShowHSL)))
	b.WriteString(m.renderConfigLine("Swatch Size", fmt.Sprintf("%dx%d", prefs.SwatchWidth, prefs.SwatchHeight)))

	return theme.RenderSection("Preferences", b.String())
}

// renderLabels renders the slot labels in slot order, marking overrides
func (m Model) renderLabels() string {
	if m.config == nil {
		return theme.RenderSection("Slot Labels", theme.MutedStyle.Render("Defaults"))
	}

	var b strings.Builder

	names := m.config.SlotNames()
	overridden := make(map[string]bool, len(m.config.Labels))
	for key := range m.config.Labels {
		overridden[strings.ToLower(key)] = true
	}

	for _, id := range palette.AllSlots() {
		value := names[id]
		if overridden[strings.ToLower(id.String())] {
			value += theme.MutedStyle.Render(" (custom)")
		}
		b.WriteString(m.renderConfigLine(id.String(), value))
	}

	if unknown := m.unknownLabelKeys(); len(unknown) > 0 {
		b.WriteString(theme.WarningStyle.Render("Ignored: " + strings.Join(unknown, ", ")))
		b.WriteString("\n")
	}

	b.WriteString(theme.MutedStyle.Render("Label changes apply to the next session"))
	b.WriteString("\n")

	return theme.RenderSection("Slot Labels", b.String())
}

func (m Model) unknownLabelKeys() []string {
	var unknown []string
	for key := range m.config.Labels {
		if !matchesSlot(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)
	return unknown
}

func matchesSlot(key string) bool {
	for _, id := range palette.AllSlots() {
		if strings.EqualFold(id.String(), key) {
			return true
		}
	}
	return false
}

// renderAppInfo renders the application info section
func (m Model) renderAppInfo() string {
	var b strings.Builder

	b.WriteString(m.renderConfigLine("Name", "Irodori"))
	b.WriteString(m.renderConfigLine("Version", Version))
	b.WriteString(m.renderConfigLine("Config Path", config.GetConfigPath()))
	if m.config != nil {
		b.WriteString(m.renderConfigLine("Debug Log", m.config.Paths.Log))
	}

	return theme.RenderSection("Application", b.String())
}

// renderReloadStatus reports the outcome of the last reload
func (m Model) renderReloadStatus() string {
	switch {
	case m.reloading:
		return theme.MutedStyle.Render("⟳ Reloading configuration...") + "\n"
	case m.reloadErr != nil:
		return theme.ErrorStyle.Render("✗ Reload failed") + "\n" +
			theme.MutedStyle.Render(fmt.Sprintf("Error: %v", m.reloadErr)) + "\n"
	case !m.lastReload.IsZero():
		return theme.SuccessStyle.Render("✓ Configuration reloaded") + " " +
			theme.MutedStyle.Render(m.formatRelativeTime(m.lastReload)) + "\n"
	}
	return ""
}

// renderConfigLine renders a configuration line
func (m Model) renderConfigLine(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		labelStyle.Inherit(theme.ValueStyle).Render(label+":"),
		lipgloss.NewStyle().Foreground(theme.ColorText).Render(value),
	) + "\n"
}

// renderFooter renders the footer with controls
func (m Model) renderFooter() string {
	controls := []string{
		"r: reload config",
		"Esc: back",
	}

	return theme.HelpStyle.Render(strings.Join(controls, " • "))
}

// formatRelativeTime formats a time relative to now
func (m Model) formatRelativeTime(t time.Time) string {
	duration := time.Since(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		minutes := int(duration.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	}

	hours := int(duration.Hours())
	if hours == 1 {
		return "1 hour ago"
	}
	return fmt.Sprintf("%d hours ago", hours)
}

// Commands

func (m Model) reloadConfig() tea.Msg {
	cfg, err := m.load()
	return ConfigReloadedMsg{Config: cfg, Err: err}
}
