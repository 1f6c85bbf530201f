package config

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/palette"
)

// Swatch size limits, in terminal cells
const (
	MinSwatchWidth  = 6
	MaxSwatchWidth  = 40
	MinSwatchHeight = 1
	MaxSwatchHeight = 12
)

// Validate validates the configuration
func Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("config is nil")
	}

	// Validate preferences
	if err := validatePreferences(&config.Preferences); err != nil {
		return fmt.Errorf("invalid preferences: %w", err)
	}

	// Validate labels
	if err := validateLabels(config.Labels); err != nil {
		return fmt.Errorf("invalid labels: %w", err)
	}

	// Validate paths
	if err := validatePaths(&config.Paths); err != nil {
		return fmt.Errorf("invalid paths: %w", err)
	}

	return nil
}

// validatePreferences validates preferences configuration
func validatePreferences(prefs *PreferencesConfig) error {
	if prefs == nil {
		return fmt.Errorf("preferences is nil")
	}

	// Validate theme
	validThemes := map[string]bool{
		"dark":  true,
		"light": true,
	}

	if !validThemes[prefs.Theme] {
		return fmt.Errorf("invalid theme: %s (must be 'dark' or 'light')", prefs.Theme)
	}

	// Validate language
	validLanguages := map[string]bool{
		palette.LanguageEnglish: true,
		palette.LanguageFrench:  true,
	}

	if !validLanguages[prefs.Language] {
		return fmt.Errorf("invalid language: %s (must be 'en' or 'fr')", prefs.Language)
	}

	// Validate swatch size
	if prefs.SwatchWidth < MinSwatchWidth || prefs.SwatchWidth > MaxSwatchWidth {
		return fmt.Errorf("swatch width must be between %d and %d, got: %d", MinSwatchWidth, MaxSwatchWidth, prefs.SwatchWidth)
	}

	if prefs.SwatchHeight < MinSwatchHeight || prefs.SwatchHeight > MaxSwatchHeight {
		return fmt.Errorf("swatch height must be between %d and %d, got: %d", MinSwatchHeight, MaxSwatchHeight, prefs.SwatchHeight)
	}

	return nil
}

// validateLabels checks that every label override names a known slot
func validateLabels(labels map[string]string) error {
	for key, label := range labels {
		if _, ok := lookupSlot(key); !ok {
			return fmt.Errorf("unknown slot %q", key)
		}
		if strings.TrimSpace(label) == "" {
			return fmt.Errorf("label for %q cannot be empty", key)
		}
	}
	return nil
}

// validatePaths validates path configuration
func validatePaths(paths *PathsConfig) error {
	if paths == nil {
		return fmt.Errorf("paths is nil")
	}

	// Paths can be empty (will be set to defaults)
	// Just ensure they are valid if set
	if paths.Log != "" {
		if !isValidPath(paths.Log) {
			return fmt.Errorf("invalid log path: %s", paths.Log)
		}
	}

	return nil
}

// isValidPath checks if a path string is valid
func isValidPath(path string) bool {
	// Basic validation - just check it's not empty and doesn't contain null bytes
	if strings.TrimSpace(path) == "" {
		return false
	}

	if strings.Contains(path, "\x00") {
		return false
	}

	return true
}
