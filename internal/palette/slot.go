package palette

import (
	"errors"
	"fmt"

	"github.com/Justice-Caban/Irodori/internal/colormath"
)

// ErrUnknownSlot is returned when an operation names a slot outside the
// fixed set.
var ErrUnknownSlot = errors.New("unknown slot")

// SlotID selects one of the eight fixed palette slots and, with it, the rule
// that colours the slot.
type SlotID int

const (
	Base SlotID = iota
	Light
	Dark
	Complement
	PureWhite
	OffWhite
	TitleBlack
	ParagraphBlack

	slotCount
)

var slotKeys = [slotCount]string{
	Base:           "base",
	Light:          "light",
	Dark:           "dark",
	Complement:     "complement",
	PureWhite:      "pureWhite",
	OffWhite:       "offWhite",
	TitleBlack:     "titleBlack",
	ParagraphBlack: "paragraphBlack",
}

// String returns the stable identifier used in config files and logs.
func (id SlotID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("SlotID(%d)", int(id))
	}
	return slotKeys[id]
}

// Valid reports whether id is one of the eight slots.
func (id SlotID) Valid() bool {
	return id >= Base && id < slotCount
}

// DerivesFromBase reports whether the slot is recomputed from the base
// colour (light, dark and complement).
func (id SlotID) DerivesFromBase() bool {
	return id.Valid() && rules[id].derive != nil
}

// ParseSlotID maps an identifier such as "pureWhite" to its SlotID.
func ParseSlotID(s string) (SlotID, error) {
	for id, key := range slotKeys {
		if key == s {
			return SlotID(id), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSlot, s)
}

// AllSlots returns every slot in display order.
func AllSlots() []SlotID {
	ids := make([]SlotID, 0, slotCount)
	for id := Base; id < slotCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// rule colours one slot kind. Base-derived slots set derive; the base and
// the independent white/black slots set generate.
type rule struct {
	derive   func(colormath.HSL) colormath.HSL
	generate func(colormath.Source) colormath.HSL
}

var rules = [slotCount]rule{
	Base:           {generate: colormath.RandomVivid},
	Light:          {derive: colormath.Lighter},
	Dark:           {derive: colormath.Darker},
	Complement:     {derive: colormath.Complementary},
	PureWhite:      {generate: colormath.RandomPureWhite},
	OffWhite:       {generate: colormath.RandomOffWhite},
	TitleBlack:     {generate: colormath.RandomTitleBlack},
	ParagraphBlack: {generate: colormath.RandomParagraphBlack},
}

// Slot is one named, lockable swatch. Color holds either an hsl() string or
// a hex string.
type Slot struct {
	ID     SlotID
	Name   string
	Color  string
	Locked bool
}

// HSL parses the stored colour, falling back to black.
func (s Slot) HSL() colormath.HSL {
	return colormath.ParseOrBlack(s.Color)
}

// Hex renders the stored colour as hex, whichever form it is stored in.
func (s Slot) Hex() string {
	hex, _ := colormath.ToHex(s.Color)
	return hex
}
