package tui

import (
	"fmt"
	"log"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui/settings"
	"github.com/Justice-Caban/Irodori/internal/tui/swatches"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewType represents the current active view
type ViewType string

const (
	ViewPalette  ViewType = "palette"
	ViewSettings ViewType = "settings"
	ViewHelp     ViewType = "help"
)

// AppModel is the root model for the entire TUI application
type AppModel struct {
	currentView ViewType
	ready       bool
	width       int
	height      int

	// Dependencies
	config  *config.Config
	palette *palette.Palette

	notifications NotificationList

	// View models
	swatchesModel swatches.Model
	settingsModel settings.Model
}

// NewAppModel creates a new application model around an existing palette.
// Startup problems, such as a config file that failed to load, are passed
// in as notifications.
func NewAppModel(cfg *config.Config, p *palette.Palette, startup ...Notification) AppModel {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := AppModel{
		currentView:   ViewPalette,
		config:        cfg,
		palette:       p,
		swatchesModel: swatches.NewModel(p, cfg.Preferences),
		settingsModel: settings.NewModel(cfg),
	}
	for _, n := range startup {
		m.notifications.Add(n)
	}
	return m
}

// Init initializes the application
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages and routes them appropriately
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case swatches.ColorRejectedMsg:
		m.notifications.AddError(
			"Invalid colour",
			fmt.Errorf("%q for %s: %w", msg.Input, msg.Slot, msg.Err),
			"Use six hex digits, e.g. #3399cc",
			SeverityWarning,
		)
		return m, nil

	case settings.ConfigReloadedMsg:
		if msg.Err != nil {
			log.Printf("⚠️  config reload failed: %v", msg.Err)
			m.notifications.AddError("Config reload failed", msg.Err, "Fix "+config.GetConfigPath()+" and press r again", SeverityError)
		} else if msg.Config != nil {
			m.config = msg.Config
			theme.Use(msg.Config.Preferences.Theme)
			m.swatchesModel = m.swatchesModel.SetPreferences(msg.Config.Preferences)
			log.Printf("✓ config reloaded from %s", config.GetConfigPath())
		}
		m.settingsModel, cmd = m.settingsModel.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// The hex editor owns every other key while open
		if m.currentView == ViewPalette && m.swatchesModel.Editing() {
			m.swatchesModel, cmd = m.swatchesModel.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "q":
			if m.currentView == ViewPalette {
				return m, tea.Quit
			}
			m.currentView = ViewPalette
			return m, nil

		case "esc":
			if m.currentView != ViewPalette {
				m.currentView = ViewPalette
				return m, nil
			}
			m.notifications.Dismiss()
			return m, nil

		case "?":
			if m.currentView == ViewHelp {
				m.currentView = ViewPalette
			} else {
				m.currentView = ViewHelp
			}
			return m, nil

		case "s", "S":
			if m.currentView == ViewPalette {
				m.currentView = ViewSettings
				return m, nil
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.swatchesModel, _ = m.swatchesModel.Update(msg)
		m.settingsModel, _ = m.settingsModel.Update(msg)
		return m, nil
	}

	// Route messages to active view
	switch m.currentView {
	case ViewPalette:
		m.swatchesModel, cmd = m.swatchesModel.Update(msg)
		return m, cmd

	case ViewSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
		return m, cmd
	}

	return m, nil
}

// CurrentView returns the active view
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// Notifications returns the pending notifications
func (m AppModel) Notifications() []Notification {
	return m.notifications.All()
}

// View renders the current view
func (m AppModel) View() string {
	if !m.ready {
		return "Initializing Irodori..."
	}

	var content string

	switch m.currentView {
	case ViewSettings:
		content = m.settingsModel.View()
	case ViewHelp:
		content = m.renderHelpView()
	default:
		content = m.swatchesModel.View()
	}

	statusBar := m.renderStatusBar()
	notices := m.notifications.Render(m.width)

	reserved := lipgloss.Height(statusBar)
	if notices != "" {
		reserved += lipgloss.Height(notices)
	}

	main := lipgloss.NewStyle().Width(m.width)
	if m.height > reserved {
		main = main.Height(m.height - reserved)
	}

	parts := []string{main.Render(content)}
	if notices != "" {
		parts = append(parts, notices)
	}
	parts = append(parts, statusBar)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHelpView lists every key binding
func (m AppModel) renderHelpView() string {
	bindings := []struct{ keys, action string }{
		{"space / g", "generate a new palette"},
		{"← → / h l / tab", "move between swatches"},
		{"1-8", "jump to a swatch"},
		{"enter / x", "lock or unlock the selected swatch"},
		{"e", "edit the selected swatch as hex"},
		{"s", "settings"},
		{"esc", "dismiss notification / back"},
		{"?", "toggle this help"},
		{"q / ctrl+c", "quit"},
	}

	keyStyle := lipgloss.NewStyle().Width(18).Inherit(theme.ValueStyle)

	var b strings.Builder
	for _, binding := range bindings {
		b.WriteString(keyStyle.Render(binding.keys))
		b.WriteString(theme.MutedStyle.Render(binding.action))
		b.WriteString("\n")
	}

	content := theme.BoxStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		theme.TitleStyle.Render("Keys"),
		b.String(),
		theme.HelpStyle.Render("Locked swatches survive regeneration. Light, dark and complement follow the base."),
	))

	// Reserve space for status bar
	return theme.CenteredText(m.width, max(m.height-3, 0), content)
}

// renderStatusBar renders the bottom status bar
func (m AppModel) renderStatusBar() string {
	viewName := fmt.Sprintf("View: %s", m.currentView)

	locked := 0
	for _, slot := range m.palette.Slots() {
		if slot.Locked {
			locked++
		}
	}
	lockInfo := fmt.Sprintf("Locked: %d/%d", locked, len(palette.AllSlots()))

	seed := "Seed: random"
	if m.config.HasFixedSeed() {
		seed = fmt.Sprintf("Seed: %d", m.config.Preferences.Seed)
	}

	return GetStatusBarText(m.width, viewName, lockInfo, seed, "? help")
}
