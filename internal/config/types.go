package config

import (
	"strings"

	"github.com/Justice-Caban/Irodori/internal/palette"
)

// Config represents the application configuration
type Config struct {
	Preferences PreferencesConfig `mapstructure:"preferences" yaml:"preferences"`
	Labels      map[string]string `mapstructure:"labels" yaml:"labels"` // slot id -> display label
	Paths       PathsConfig       `mapstructure:"paths" yaml:"paths"`
}

// PreferencesConfig represents user preferences
type PreferencesConfig struct {
	Theme        string `mapstructure:"theme" yaml:"theme"`       // "dark", "light"
	Language     string `mapstructure:"language" yaml:"language"` // "en", "fr"
	Seed         uint64 `mapstructure:"seed" yaml:"seed"`         // 0 = random every session
	ShowHSL      bool   `mapstructure:"show_hsl" yaml:"show_hsl"`
	SwatchWidth  int    `mapstructure:"swatch_width" yaml:"swatch_width"`
	SwatchHeight int    `mapstructure:"swatch_height" yaml:"swatch_height"`
}

// PathsConfig represents path configurations
type PathsConfig struct {
	Log string `mapstructure:"log" yaml:"log"` // debug log, only written when IRODORI_DEBUG is set
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Preferences: PreferencesConfig{
			Theme:        "dark",
			Language:     palette.LanguageEnglish,
			Seed:         0,
			ShowHSL:      true,
			SwatchWidth:  16,
			SwatchHeight: 5,
		},
		Labels: map[string]string{},
		Paths: PathsConfig{
			Log: "", // Will be set to default location
		},
	}
}

// SlotNames returns the slot labels for the configured language with any
// label overrides applied.
//
// Viper lowercases map keys, so label keys match slot ids case-insensitively.
func (c *Config) SlotNames() palette.Names {
	overrides := make(map[palette.SlotID]string, len(c.Labels))
	for key, label := range c.Labels {
		if id, ok := lookupSlot(key); ok {
			overrides[id] = label
		}
	}
	return palette.DefaultNames(c.Preferences.Language).With(overrides)
}

// HasFixedSeed reports whether palettes should be reproducible across runs
func (c *Config) HasFixedSeed() bool {
	return c.Preferences.Seed != 0
}

func lookupSlot(key string) (palette.SlotID, bool) {
	for _, id := range palette.AllSlots() {
		if strings.EqualFold(id.String(), key) {
			return id, true
		}
	}
	return 0, false
}
