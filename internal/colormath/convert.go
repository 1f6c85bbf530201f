package colormath

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformedColor is returned for colour strings that are neither six hex
// digits (optionally prefixed with '#') nor hsl(H, S%, L%).
var ErrMalformedColor = errors.New("malformed color string")

// MaxChannelDrift bounds how far any RGB channel of a hex colour can move
// after a trip through HexToHSL and back through HSLToHex. Integer HSL has
// 101 saturation/lightness levels against 256 per channel, so the trip is
// lossy.
const MaxChannelDrift = 5

var hslPattern = regexp.MustCompile(`(?i)^hsl\(\s*(\d+)\s*,\s*(\d+)%\s*,\s*(\d+)%\s*\)$`)

// HexToHSL parses a "#rrggbb" or "rrggbb" string and converts it to HSL,
// rounding each component to the nearest integer.
func HexToHSL(hex string) (HSL, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return Black, err
	}
	return rgbToHSL(r, g, b), nil
}

// HexToHSLOrBlack is HexToHSL with the documented fallback: malformed input
// yields Black.
func HexToHSLOrBlack(hex string) HSL {
	c, err := HexToHSL(hex)
	if err != nil {
		return Black
	}
	return c
}

// HSLToHex converts a colour to a lowercase "#rrggbb" string.
func HSLToHex(c HSL) string {
	r, g, b := hslToRGB(Normalize(c))
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// ParseHSL parses the hsl(H, S%, L%) form produced by HSL.String.
// Out-of-range components are wrapped or clamped.
func ParseHSL(s string) (HSL, error) {
	m := hslPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Black, fmt.Errorf("%w: %q", ErrMalformedColor, s)
	}

	var parts [3]int
	for i := range parts {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return Black, fmt.Errorf("%w: %q", ErrMalformedColor, s)
		}
		parts[i] = v
	}

	return Normalize(HSL{H: parts[0], S: parts[1], L: parts[2]}), nil
}

// Parse accepts either stored representation of a slot colour: an hsl()
// string or a hex string.
func Parse(s string) (HSL, error) {
	trimmed := strings.TrimSpace(s)
	if isHSLString(trimmed) {
		return ParseHSL(trimmed)
	}
	return HexToHSL(trimmed)
}

// ParseOrBlack is Parse with the Black fallback.
func ParseOrBlack(s string) HSL {
	c, err := Parse(s)
	if err != nil {
		return Black
	}
	return c
}

// ToHex renders either stored representation as lowercase hex. Hex input
// is passed through without a trip through HSL.
func ToHex(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if !isHSLString(trimmed) {
		r, g, b, err := parseHex(trimmed)
		if err != nil {
			return HSLToHex(Black), err
		}
		return fmt.Sprintf("#%02x%02x%02x", r, g, b), nil
	}

	c, err := ParseHSL(trimmed)
	if err != nil {
		return HSLToHex(Black), err
	}
	return HSLToHex(c), nil
}

// isHSLString reports whether s uses the hsl() form, in any letter case.
func isHSLString(s string) bool {
	return len(s) >= 3 && strings.EqualFold(s[:3], "hsl")
}

func parseHex(hex string) (r, g, b uint8, err error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return 0, 0, 0, fmt.Errorf("%w: %q: want 6 hex digits, got %d", ErrMalformedColor, hex, len(digits))
	}

	var channels [3]uint8
	for i := range channels {
		pair := digits[i*2 : i*2+2]
		if !isHexDigit(pair[0]) || !isHexDigit(pair[1]) {
			return 0, 0, 0, fmt.Errorf("%w: %q: invalid hex digits %q", ErrMalformedColor, hex, pair)
		}
		v, perr := strconv.ParseUint(pair, 16, 8)
		if perr != nil {
			return 0, 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedColor, hex, perr)
		}
		channels[i] = uint8(v)
	}

	return channels[0], channels[1], channels[2], nil
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func rgbToHSL(ri, gi, bi uint8) HSL {
	r := float64(ri) / 255
	g := float64(gi) / 255
	b := float64(bi) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l := (maxC + minC) / 2

	var h, s float64
	if maxC != minC {
		d := maxC - minC
		if l > 0.5 {
			s = d / (2 - maxC - minC)
		} else {
			s = d / (maxC + minC)
		}

		switch maxC {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	// A hue just under 1 can round up to 360.
	return Normalize(HSL{
		H: int(math.Round(h * HueMax)),
		S: int(math.Round(s * SaturationMax)),
		L: int(math.Round(l * LightnessMax)),
	})
}

func hslToRGB(c HSL) (r, g, b uint8) {
	h := float64(c.H) / HueMax
	s := float64(c.S) / SaturationMax
	l := float64(c.L) / LightnessMax

	if s == 0 {
		v := toChannel(l)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return toChannel(hueToRGB(p, q, h+1.0/3)),
		toChannel(hueToRGB(p, q, h)),
		toChannel(hueToRGB(p, q, h-1.0/3))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

func toChannel(v float64) uint8 {
	return uint8(clampInt(int(math.Round(v*255)), 0, 255))
}
