package colormath

import (
	"math/rand/v2"
)

// Source supplies random integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for the given seed.
func NewSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the runtime-seeded global generator.
func DefaultSource() Source {
	return globalSource{}
}

// Range is a half-open integer interval [Min, Max).
type Range struct {
	Min int
	Max int
}

func (r Range) draw(src Source) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + src.IntN(r.Max-r.Min)
}

// Contains reports whether v is in [Min, Max).
func (r Range) Contains(v int) bool {
	return v >= r.Min && v < r.Max
}

// Profile constrains each HSL component of a randomly drawn colour.
type Profile struct {
	Hue        Range
	Saturation Range
	Lightness  Range
}

// Draw picks a colour uniformly inside the profile.
func (p Profile) Draw(src Source) HSL {
	return Normalize(HSL{
		H: p.Hue.draw(src),
		S: p.Saturation.draw(src),
		L: p.Lightness.draw(src),
	})
}

// Contains reports whether c lies inside the profile.
func (p Profile) Contains(c HSL) bool {
	return p.Hue.Contains(c.H) && p.Saturation.Contains(c.S) && p.Lightness.Contains(c.L)
}

var anyHue = Range{Min: 0, Max: HueMax}

// Generator profiles.
var (
	VividProfile          = Profile{Hue: anyHue, Saturation: Range{60, 100}, Lightness: Range{40, 60}}
	PureWhiteProfile      = Profile{Hue: anyHue, Saturation: Range{0, 10}, Lightness: Range{98, 100}}
	OffWhiteProfile       = Profile{Hue: anyHue, Saturation: Range{0, 15}, Lightness: Range{95, 98}}
	TitleBlackProfile     = Profile{Hue: anyHue, Saturation: Range{0, 15}, Lightness: Range{10, 15}}
	ParagraphBlackProfile = Profile{Hue: anyHue, Saturation: Range{0, 10}, Lightness: Range{15, 23}}
)

// RandomVivid draws a saturated mid-lightness colour for a palette base.
func RandomVivid(src Source) HSL { return VividProfile.Draw(src) }

// RandomPureWhite draws a near-pure white.
func RandomPureWhite(src Source) HSL { return PureWhiteProfile.Draw(src) }

// RandomOffWhite draws a slightly tinted white.
func RandomOffWhite(src Source) HSL { return OffWhiteProfile.Draw(src) }

// RandomTitleBlack draws a very dark tone for headings.
func RandomTitleBlack(src Source) HSL { return TitleBlackProfile.Draw(src) }

// RandomParagraphBlack draws a dark tone for body text.
func RandomParagraphBlack(src Source) HSL { return ParagraphBlackProfile.Draw(src) }
