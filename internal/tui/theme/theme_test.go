package theme

import (
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUse(t *testing.T) {
	t.Cleanup(func() { Use(Dark) })

	tests := []struct {
		name    string
		want    string
		primary lipgloss.Color
	}{
		{Light, Light, lipgloss.Color("125")},
		{Dark, Dark, lipgloss.Color("205")},
		{"solarized", Dark, lipgloss.Color("205")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Use(tt.name)
			assert.Equal(t, tt.want, Current())
			assert.Equal(t, tt.primary, ColorPrimary)
			assert.Equal(t, tt.primary, SelectedStyle.GetBorderTopForeground())
		})
	}
}

func TestRenderKeyValue(t *testing.T) {
	assert.Contains(t, RenderKeyValue("Edit", "Base color"), "Edit: ")
	assert.Contains(t, RenderKeyValue("Edit", "Base color"), "Base color")
}

func TestRenderSection(t *testing.T) {
	out := RenderSection("Preferences", "Theme: dark")

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, out, "Preferences")
	assert.Equal(t, "Theme: dark", lines[len(lines)-1])
}

func TestCenteredText(t *testing.T) {
	box := BoxStyle.Render("Keys")
	out := CenteredText(40, 9, box)

	assert.Equal(t, 40, lipgloss.Width(out))
	assert.Equal(t, 9, lipgloss.Height(out))
	assert.Contains(t, out, "╭")
	assert.Contains(t, out, "Keys")

	// Every box line keeps the same left edge once centered
	var edges []int
	for _, line := range strings.Split(out, "\n") {
		if i := strings.IndexAny(line, "╭│╰"); i >= 0 {
			edges = append(edges, i)
		}
	}
	require.NotEmpty(t, edges)
	for _, e := range edges {
		assert.Equal(t, edges[0], e)
	}
}

func TestSourcesAreFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	require.NoError(t, err)

	for _, name := range files {
		src, err := os.ReadFile(name)
		require.NoError(t, err)

		formatted, err := format.Source(src)
		require.NoError(t, err, name)
		assert.Equal(t, string(formatted), string(src), "%s is not gofmt-clean", name)
	}
}
