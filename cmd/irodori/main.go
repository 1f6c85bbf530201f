package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/Justice-Caban/Irodori/internal/colormath"
	"github.com/Justice-Caban/Irodori/internal/config"
	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/Justice-Caban/Irodori/internal/tui"
	"github.com/Justice-Caban/Irodori/internal/tui/theme"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func main() {
	// Load config, falling back to defaults
	cfg, loadErr := config.Load()
	if loadErr != nil {
		cfg = config.DefaultConfig()
	}

	closeLog := setupLogging(cfg)
	defer closeLog()

	theme.Use(cfg.Preferences.Theme)

	// Check if we're being invoked in print mode
	if len(os.Args) > 1 && os.Args[1] == "print" {
		if err := runPrintMode(cfg, os.Args[2:], os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Normal TUI mode
	runTUIMode(cfg, loadErr)
}

// setupLogging sends log output to the debug log when IRODORI_DEBUG is set
// and discards it otherwise, since the TUI owns the terminal
func setupLogging(cfg *config.Config) func() {
	if os.Getenv("IRODORI_DEBUG") == "" || cfg.Paths.Log == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := tea.LogToFile(cfg.Paths.Log, "irodori")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}

// newSource picks a reproducible source when a seed is configured
func newSource(seed uint64) colormath.Source {
	if seed != 0 {
		return colormath.NewSource(seed)
	}
	return colormath.DefaultSource()
}

// runTUIMode runs the main TUI application with alt-screen
func runTUIMode(cfg *config.Config, loadErr error) {
	var startup []tui.Notification
	if loadErr != nil {
		log.Printf("⚠️  using default config: %v", loadErr)
		startup = append(startup, tui.Notification{
			Title:       "Config Error",
			Message:     loadErr.Error(),
			Severity:    tui.SeverityError,
			Suggestion:  "Using defaults. Fix " + config.GetConfigPath() + " and reload from settings",
			Dismissible: true,
		})
	}

	p := palette.New(newSource(cfg.Preferences.Seed), cfg.SlotNames())
	log.Printf("🎨 starting with base %s", p.Slots()[palette.Base].Hex())

	m := tui.NewAppModel(cfg, p, startup...)

	// Run the TUI program with alt-screen
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running Irodori: %v\n", err)
		os.Exit(1)
	}
}

// runPrintMode generates one palette and writes it as styled lines
func runPrintMode(cfg *config.Config, args []string, out io.Writer) error {
	printFlags := flag.NewFlagSet("print", flag.ContinueOnError)
	printFlags.SetOutput(out)
	seed := printFlags.Uint64("seed", cfg.Preferences.Seed, "Seed for a reproducible palette (0 = random)")
	lang := printFlags.String("lang", cfg.Preferences.Language, "Slot label language (en, fr)")

	if err := printFlags.Parse(args); err != nil {
		return fmt.Errorf("parsing print flags: %w", err)
	}

	names := cfg.SlotNames()
	if *lang != cfg.Preferences.Language {
		names = palette.DefaultNames(*lang)
	}

	p := palette.New(newSource(*seed), names)
	for _, line := range renderPaletteLines(p, cfg.Preferences.ShowHSL) {
		fmt.Fprintln(out, line)
	}
	return nil
}

// renderPaletteLines renders one line per slot: a colour chip, the name and
// the hex value
func renderPaletteLines(p *palette.Palette, showHSL bool) []string {
	nameStyle := lipgloss.NewStyle().Width(20)

	lines := make([]string, 0, len(palette.AllSlots()))
	for _, slot := range p.Slots() {
		hex := slot.Hex()
		chip := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")

		line := chip + " " + nameStyle.Render(slot.Name) + theme.ValueStyle.Render(hex)
		if showHSL {
			line += "  " + theme.MutedStyle.Render(slot.HSL().String())
		}
		lines = append(lines, line)
	}
	return lines
}
