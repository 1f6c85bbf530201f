package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Justice-Caban/Irodori/internal/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempConfigDir points the package at a fresh directory for one test
func useTempConfigDir(t *testing.T) string {
	t.Helper()
	prev := configDir
	dir := filepath.Join(t.TempDir(), configDirName)
	setConfigDir(dir)
	t.Cleanup(func() { setConfigDir(prev) })
	return dir
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := useTempConfigDir(t)
	require.False(t, Exists())

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, Exists())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), GetConfigPath())
	assert.Equal(t, dir, GetConfigDir())
	assert.Equal(t, "dark", cfg.Preferences.Theme)
	assert.Equal(t, palette.LanguageEnglish, cfg.Preferences.Language)
	assert.Equal(t, filepath.Join(dir, "irodori.log"), cfg.Paths.Log)
	assert.False(t, cfg.HasFixedSeed())
}

func TestSaveAndLoad(t *testing.T) {
	useTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.Preferences.Theme = "light"
	cfg.Preferences.Language = palette.LanguageFrench
	cfg.Preferences.Seed = 1234
	cfg.Preferences.ShowHSL = false
	cfg.Preferences.SwatchWidth = 20
	cfg.Labels = map[string]string{"pureWhite": "Paper"}
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "light", loaded.Preferences.Theme)
	assert.Equal(t, palette.LanguageFrench, loaded.Preferences.Language)
	assert.Equal(t, uint64(1234), loaded.Preferences.Seed)
	assert.False(t, loaded.Preferences.ShowHSL)
	assert.Equal(t, 20, loaded.Preferences.SwatchWidth)
	assert.True(t, loaded.HasFixedSeed())

	names := loaded.SlotNames()
	assert.Equal(t, "Paper", names[palette.PureWhite])
	assert.Equal(t, "Couleur de base", names[palette.Base])
}

func TestLoad_EnvironmentOverride(t *testing.T) {
	useTempConfigDir(t)
	require.NoError(t, Save(DefaultConfig()))

	t.Setenv("IRODORI_PREFERENCES_SEED", "77")
	t.Setenv("IRODORI_PREFERENCES_THEME", "light")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint64(77), cfg.Preferences.Seed)
	assert.Equal(t, "light", cfg.Preferences.Theme)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := useTempConfigDir(t)
	require.NoError(t, os.MkdirAll(dir, 0755))

	t.Run("unparseable yaml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(GetConfigPath(), []byte("preferences: [\n"), 0644))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config")
	})

	t.Run("fails validation", func(t *testing.T) {
		body := "preferences:\n  theme: neon\n"
		require.NoError(t, os.WriteFile(GetConfigPath(), []byte(body), 0644))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid theme")
	})

	t.Run("unknown label", func(t *testing.T) {
		body := "labels:\n  accent: Pink\n"
		require.NoError(t, os.WriteFile(GetConfigPath(), []byte(body), 0644))
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown slot")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		errorContains string
	}{
		{"defaults", func(*Config) {}, ""},
		{"light theme", func(c *Config) { c.Preferences.Theme = "light" }, ""},
		{"bad theme", func(c *Config) { c.Preferences.Theme = "blue" }, "invalid theme"},
		{"bad language", func(c *Config) { c.Preferences.Language = "jp" }, "invalid language"},
		{"narrow swatch", func(c *Config) { c.Preferences.SwatchWidth = 2 }, "swatch width"},
		{"tall swatch", func(c *Config) { c.Preferences.SwatchHeight = 50 }, "swatch height"},
		{"label ok", func(c *Config) { c.Labels["titleblack"] = "Headline" }, ""},
		{"empty label", func(c *Config) { c.Labels["base"] = " " }, "cannot be empty"},
		{"unknown label", func(c *Config) { c.Labels["accent"] = "x" }, "unknown slot"},
		{"null byte path", func(c *Config) { c.Paths.Log = "a\x00b" }, "invalid log path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}

	assert.Error(t, Validate(nil))
}

func TestSlotNames(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Labels = map[string]string{"paragraphblack": "Body", "bogus": "ignored"}

	names := cfg.SlotNames()
	assert.Equal(t, "Body", names[palette.ParagraphBlack])
	assert.Equal(t, "Base color", names[palette.Base])
	assert.Len(t, names, 8)
}
