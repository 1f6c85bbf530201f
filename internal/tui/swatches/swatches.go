package swatches

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ViewMode represents the current view mode
type ViewMode string

const (
	ViewModeBrowse ViewMode = "browse" // Move between swatches
	ViewModeEdit   ViewMode = "edit"   // Type a hex colour for the selected swatch
)

const (
	lockedGlyph   = "🔒"
	unlockedGlyph = "🔓"
	maxHexInput   = 7
)

// ColorRejectedMsg reports a colour edit that could not be applied as typed
type ColorRejectedMsg struct {
	Slot  palette.SlotID
	Input string
	Err   error
}

// Model represents the palette view model
type Model struct {
	width  int
	height int

	palette *palette.Palette
	prefs   config.PreferencesConfig

	cursor   int
	viewMode ViewMode

	// Input fields
	inputValue  string
	inputCursor int

	// Status
	message     string
	messageType string // "success", "error", ""
}

// NewModel creates a new palette view model
func NewModel(p *palette.Palette, prefs config.PreferencesConfig) Model {
	return Model{
		palette:  p,
		prefs:    prefs,
		viewMode: ViewModeBrowse,
	}
}

// Init initializes the palette view model
func (m Model) Init() tea.Cmd {
	return nil
}

// Editing reports whether the hex editor owns the keyboard
func (m Model) Editing() bool {
	return m.viewMode == ViewModeEdit
}

// Selected returns the slot under the cursor
func (m Model) Selected() palette.SlotID {
	return palette.SlotID(m.cursor)
}

// SetPreferences applies reloaded display preferences
func (m Model) SetPreferences(prefs config.PreferencesConfig) Model {
	m.prefs = prefs
	return m
}

// Update handles messages for the palette view
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch m.viewMode {
	case ViewModeEdit:
		return m.handleInputKeys(msg)
	default:
		return m.handleBrowseKeys(msg)
	}
}

// handleBrowseKeys handles keyboard input in browse mode
func (m Model) handleBrowseKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	slots := len(palette.AllSlots())

	switch key := msg.String(); key {
	case " ", "g", "G":
		m.palette.Regenerate()
		m.message = ""
		log.Printf("🎨 palette regenerated, base %s", m.slotHex(palette.Base))

	case "left", "h", "shift+tab":
		m.cursor = (m.cursor - 1 + slots) % slots

	case "right", "l", "tab":
		m.cursor = (m.cursor + 1) % slots

	case "1", "2", "3", "4", "5", "6", "7", "8":
		n, _ := strconv.Atoi(key)
		m.cursor = n - 1

	case "enter", "x", "X":
		if err := m.palette.ToggleLock(m.Selected()); err != nil {
			m.message = err.Error()
			m.messageType = "error"
			return m, nil
		}
		slot, _ := m.palette.Slot(m.Selected())
		if slot.Locked {
			m.message = fmt.Sprintf("%s locked", slot.Name)
		} else {
			m.message = fmt.Sprintf("%s unlocked", slot.Name)
		}
		m.messageType = "success"

	case "e", "E":
		m.viewMode = ViewModeEdit
		m.inputValue = m.slotHex(m.Selected())
		m.inputCursor = len(m.inputValue)
		m.message = ""
	}

	return m, nil
}

// handleInputKeys handles keyboard input in edit mode
func (m Model) handleInputKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancel
		m.viewMode = ViewModeBrowse
		m.message = ""
		return m, nil

	case "enter":
		return m.applyInput()

	case "backspace":
		if m.inputCursor > 0 {
			m.inputValue = m.inputValue[:m.inputCursor-1] + m.inputValue[m.inputCursor:]
			m.inputCursor--
		}

	case "left":
		if m.inputCursor > 0 {
			m.inputCursor--
		}

	case "right":
		if m.inputCursor < len(m.inputValue) {
			m.inputCursor++
		}

	default:
		// Insert character
		if len(msg.String()) == 1 && len(m.inputValue) < maxHexInput {
			m.inputValue = m.inputValue[:m.inputCursor] + msg.String() + m.inputValue[m.inputCursor:]
			m.inputCursor++
		}
	}

	return m, nil
}

// applyInput hands the typed hex to the palette
func (m Model) applyInput() (Model, tea.Cmd) {
	id := m.Selected()
	input := m.inputValue
	m.viewMode = ViewModeBrowse

	if err := m.palette.ApplyHex(id, input); err != nil {
		log.Printf("⚠️  colour %q for %s rejected: %v", input, id, err)
		m.message = fmt.Sprintf("%q is not a hex colour, using black", input)
		m.messageType = "error"
		return m, func() tea.Msg {
			return ColorRejectedMsg{Slot: id, Input: input, Err: err}
		}
	}

	slot, _ := m.palette.Slot(id)
	m.message = fmt.Sprintf("%s set to %s", slot.Name, m.slotHex(id))
	m.messageType = "success"
	return m, nil
}

func (m Model) slotHex(id palette.SlotID) string {
	hex, _ := m.palette.HexOf(id)
	return hex
}

// View renders the palette view
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleStyle.Render("🎨 Irodori"))
	b.WriteString("\n")

	b.WriteString(m.renderSwatches())
	b.WriteString("\n")

	if m.viewMode == ViewModeEdit {
		b.WriteString("\n")
		b.WriteString(m.renderInput())
		b.WriteString("\n")
	}

	// Message
	if m.message != "" {
		b.WriteString("\n")
		if m.messageType == "error" {
			b.WriteString(theme.ErrorStyle.Render(m.message))
		} else {
			b.WriteString(theme.SuccessStyle.Render(m.message))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.renderFooter())

	return b.String()
}

// renderSwatches lays the slots out in one row, or two rows of four when
// the terminal is too narrow
func (m Model) renderSwatches() string {
	slots := m.palette.Slots()

	columns := make([]string, len(slots))
	for i, slot := range slots {
		columns[i] = m.renderSwatch(slot, i == m.cursor)
	}

	perRow := len(columns)
	colWidth := m.swatchWidth() + 2
	if m.width > 0 && m.width < perRow*colWidth {
		perRow = (len(columns) + 1) / 2
	}

	var rows []string
	for start := 0; start < len(columns); start += perRow {
		end := min(start+perRow, len(columns))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, columns[start:end]...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSwatch renders one column: the colour block, then name, hex and
// lock state
func (m Model) renderSwatch(slot palette.Slot, selected bool) string {
	width := m.swatchWidth()
	hex := slot.Hex()

	block := lipgloss.NewStyle().
		Width(width).
		Height(m.swatchHeight()).
		Background(lipgloss.Color(hex)).
		Foreground(inkFor(hex)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(fmt.Sprintf("%d", int(slot.ID)+1))

	line := lipgloss.NewStyle().Width(width).MaxWidth(width)

	lock := unlockedGlyph
	lockStyle := theme.MutedStyle
	if slot.Locked {
		lock = lockedGlyph
		lockStyle = theme.ValueStyle
	}

	parts := []string{
		block,
		line.Bold(true).Render(slot.Name),
		line.Inherit(theme.ValueStyle).Render(hex),
	}
	if m.prefs.ShowHSL {
		parts = append(parts, line.Inherit(theme.MutedStyle).Render(slot.HSL().String()))
	}
	parts = append(parts, line.Inherit(lockStyle).Render(lock))

	frame := theme.UnselectedStyle
	if selected {
		frame = theme.SelectedStyle
	}

	return frame.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderInput renders the hex editor
func (m Model) renderInput() string {
	slot, _ := m.palette.Slot(m.Selected())

	var b strings.Builder
	b.WriteString(theme.RenderKeyValue("Edit", slot.Name))
	b.WriteString("\n")

	field := m.inputValue[:m.inputCursor] + "█" + m.inputValue[m.inputCursor:]
	b.WriteString(theme.InputStyle.Render(field))

	return b.String()
}

// renderFooter renders key hints for the current mode
func (m Model) renderFooter() string {
	if m.viewMode == ViewModeEdit {
		return theme.HelpStyle.Render("enter: apply • esc: cancel • ←/→: move cursor")
	}
	return theme.HelpStyle.Render("space: generate • ←/→ or 1-8: select • enter/x: lock • e: edit hex • s: settings • ?: help • q: quit")
}

func (m Model) swatchWidth() int {
	if m.prefs.SwatchWidth > 0 {
		return m.prefs.SwatchWidth
	}
	return config.DefaultConfig().Preferences.SwatchWidth
}

func (m Model) swatchHeight() int {
	if m.prefs.SwatchHeight > 0 {
		return m.prefs.SwatchHeight
	}
	return config.DefaultConfig().Preferences.SwatchHeight
}
