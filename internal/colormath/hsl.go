// Package colormath converts between hex and HSL colours and derives the
// related shades a palette is built from.
package colormath

import "fmt"

// HSL component limits.
const (
	// HueMax is exclusive: hues wrap modulo 360.
	HueMax = 360
	// SaturationMax is the largest saturation percentage.
	SaturationMax = 100
	// LightnessMax is the largest lightness percentage.
	LightnessMax = 100

	shadeStep    = 20
	lighterLimit = 90
	darkerLimit  = 10
)

// HSL is an integer hue/saturation/lightness triple. Hue is in degrees
// [0,360), saturation and lightness are percentages [0,100].
type HSL struct {
	H int
	S int
	L int
}

// Black is the fallback colour for strings that cannot be parsed.
var Black = HSL{H: 0, S: 0, L: 0}

// Normalize wraps the hue into [0,360) and clamps saturation and lightness
// into [0,100].
func Normalize(c HSL) HSL {
	h := c.H % HueMax
	if h < 0 {
		h += HueMax
	}
	return HSL{
		H: h,
		S: clampInt(c.S, 0, SaturationMax),
		L: clampInt(c.L, 0, LightnessMax),
	}
}

// String formats the colour as hsl(H, S%, L%).
func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// ToDisplayString is the function form of HSL.String.
func ToDisplayString(c HSL) string {
	return c.String()
}

// Complementary rotates the hue by 180 degrees.
func Complementary(c HSL) HSL {
	c = Normalize(c)
	c.H = (c.H + 180) % HueMax
	return c
}

// Lighter raises lightness by 20, capped at 90.
func Lighter(c HSL) HSL {
	c = Normalize(c)
	c.L = min(c.L+shadeStep, lighterLimit)
	return c
}

// Darker lowers lightness by 20, floored at 10.
func Darker(c HSL) HSL {
	c = Normalize(c)
	c.L = max(c.L-shadeStep, darkerLimit)
	return c
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
