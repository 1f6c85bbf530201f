package colormath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerators_StayInRange(t *testing.T) {
	tests := []struct {
		name    string
		gen     func(Source) HSL
		profile Profile
	}{
		{"vivid", RandomVivid, VividProfile},
		{"pure white", RandomPureWhite, PureWhiteProfile},
		{"off white", RandomOffWhite, OffWhiteProfile},
		{"title black", RandomTitleBlack, TitleBlackProfile},
		{"paragraph black", RandomParagraphBlack, ParagraphBlackProfile},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := NewSource(42)
			for i := 0; i < 1000; i++ {
				c := tt.gen(src)
				require.True(t, tt.profile.Contains(c), "%v outside %+v", c, tt.profile)
			}
		})
	}
}

func TestRandomPureWhite_Bounds(t *testing.T) {
	src := NewSource(1)
	for i := 0; i < 1000; i++ {
		c := RandomPureWhite(src)
		assert.GreaterOrEqual(t, c.L, 98)
		assert.Less(t, c.L, 100)
		assert.GreaterOrEqual(t, c.S, 0)
		assert.Less(t, c.S, 10)
	}
}

func TestRandomVivid_CoversRange(t *testing.T) {
	src := NewSource(3)
	seenS := map[int]bool{}
	seenL := map[int]bool{}
	for i := 0; i < 5000; i++ {
		c := RandomVivid(src)
		seenS[c.S] = true
		seenL[c.L] = true
	}

	assert.True(t, seenS[60], "lower saturation bound is inclusive")
	assert.False(t, seenS[100], "upper saturation bound is exclusive")
	assert.True(t, seenL[40])
	assert.True(t, seenL[59])
	assert.False(t, seenL[60])
}

func TestNewSource_Deterministic(t *testing.T) {
	a, b := NewSource(99), NewSource(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, RandomVivid(a), RandomVivid(b))
	}
}

type fixedSource int

func (f fixedSource) IntN(n int) int { return int(f) % n }

func TestProfile_DrawUsesSource(t *testing.T) {
	assert.Equal(t, HSL{0, 60, 40}, RandomVivid(fixedSource(0)))
	assert.Equal(t, HSL{5, 5, 99}, RandomPureWhite(fixedSource(5)))
}

func TestRange_Degenerate(t *testing.T) {
	r := Range{Min: 7, Max: 7}
	assert.Equal(t, 7, r.draw(fixedSource(3)))
	assert.False(t, r.Contains(7))
}

func TestDefaultSource(t *testing.T) {
	src := DefaultSource()
	for i := 0; i < 100; i++ {
		assert.True(t, OffWhiteProfile.Contains(RandomOffWhite(src)))
	}
}
