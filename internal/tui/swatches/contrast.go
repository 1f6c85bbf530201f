package swatches

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	inkDark  = lipgloss.Color("#111111")
	inkLight = lipgloss.Color("#f5f5f5")
)

// relativeLuminance follows the WCAG definition on linear RGB
func relativeLuminance(c colorful.Color) float64 {
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// contrastRatio is the WCAG contrast ratio between two colours, 1..21
func contrastRatio(a, b colorful.Color) float64 {
	la, lb := relativeLuminance(a), relativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// inkFor picks the text colour that reads best on top of a swatch.
// Unparseable hex gets light ink, matching the black fallback.
func inkFor(hex string) lipgloss.Color {
	bg, err := colorful.Hex(hex)
	if err != nil {
		return inkLight
	}

	dark, _ := colorful.Hex(string(inkDark))
	light, _ := colorful.Hex(string(inkLight))
	if contrastRatio(bg, dark) >= contrastRatio(bg, light) {
		return inkDark
	}
	return inkLight
}
