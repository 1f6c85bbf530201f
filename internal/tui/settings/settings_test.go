package settings

import (
	"errors"
	"testing"
	"time"

	"github.com/Justice-Caban/Irodori/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_ShowsConfiguration(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Preferences.Seed = 42
	cfg.Labels = map[string]string{"base": "Brand", "accent": "Nope"}

	view := NewModel(cfg).View()

	for _, section := range []string{"Preferences", "Slot Labels", "Application"} {
		assert.Contains(t, view, section)
	}
	assert.Contains(t, view, "dark")
	assert.Contains(t, view, "42")
	assert.Contains(t, view, "16x5")
	assert.Contains(t, view, "Brand")
	assert.Contains(t, view, "(custom)")
	assert.Contains(t, view, "Ignored: accent")
	assert.Contains(t, view, "Paragraph black")
	assert.Contains(t, view, config.GetConfigPath())
	assert.Contains(t, view, "r: reload config")
}

func TestView_RandomSeed(t *testing.T) {
	view := NewModel(config.DefaultConfig()).View()
	assert.Contains(t, view, "random")
	assert.NotContains(t, view, "Ignored:")
}

func TestView_NilConfig(t *testing.T) {
	view := NewModel(nil).View()
	assert.Contains(t, view, "No configuration loaded")
	assert.Contains(t, view, "Slot Labels")
	assert.Contains(t, view, "Defaults")
}

func TestReload(t *testing.T) {
	reloaded := config.DefaultConfig()
	reloaded.Preferences.Theme = "light"

	tests := []struct {
		name      string
		cfg       *config.Config
		err       error
		wantTheme string
		wantView  string
	}{
		{
			name:      "success",
			cfg:       reloaded,
			wantTheme: "light",
			wantView:  "Configuration reloaded",
		},
		{
			name:      "failure keeps previous config",
			err:       errors.New("invalid theme"),
			wantTheme: "dark",
			wantView:  "Reload failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewModel(config.DefaultConfig())
			m.load = func() (*config.Config, error) { return tt.cfg, tt.err }

			m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
			require.NotNil(t, cmd)
			assert.Contains(t, m.View(), "Reloading configuration")

			msg, ok := cmd().(ConfigReloadedMsg)
			require.True(t, ok, "expected ConfigReloadedMsg")
			assert.Equal(t, tt.err, msg.Err)

			m, cmd = m.Update(msg)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.wantTheme, m.config.Preferences.Theme)
			assert.Contains(t, m.View(), tt.wantView)
		})
	}
}

func TestFormatRelativeTime(t *testing.T) {
	m := Model{}

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{10 * time.Second, "just now"},
		{90 * time.Second, "1 minute ago"},
		{5 * time.Minute, "5 minutes ago"},
		{61 * time.Minute, "1 hour ago"},
		{3 * time.Hour, "3 hours ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, m.formatRelativeTime(time.Now().Add(-tt.ago)))
		})
	}
}
