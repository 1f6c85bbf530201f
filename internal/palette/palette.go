// Package palette holds the eight-slot palette and the rules that refresh
// it: regeneration, manual edits with base cascades, and per-slot locks.
//
// A Palette is owned by a single caller and is not safe for concurrent use.
package palette

import (
	"fmt"
	"strings"

	"github.com/Justice-Caban/Irodori/internal/colormath"
)

// Palette is the ordered set of slots plus the random source used to
// refresh them.
type Palette struct {
	slots [slotCount]Slot
	src   colormath.Source
}

// New builds a palette with every slot freshly generated and unlocked.
// A nil source uses colormath.DefaultSource; a nil names map uses English
// labels.
func New(src colormath.Source, names Names) *Palette {
	if src == nil {
		src = colormath.DefaultSource()
	}
	if names == nil {
		names = DefaultNames(LanguageEnglish)
	}

	p := &Palette{src: src}
	for _, id := range AllSlots() {
		p.slots[id] = Slot{ID: id, Name: names.lookup(id)}
	}
	p.Regenerate()

	return p
}

// Regenerate refreshes every unlocked slot. A locked base keeps its colour
// and still acts as the reference for the unlocked derived slots.
func (p *Palette) Regenerate() {
	base := &p.slots[Base]

	var ref colormath.HSL
	if base.Locked {
		ref = base.HSL()
	} else {
		ref = rules[Base].generate(p.src)
		base.Color = ref.String()
	}

	p.cascade(ref)

	for _, id := range AllSlots() {
		slot := &p.slots[id]
		if id == Base || slot.Locked || rules[id].generate == nil {
			continue
		}
		slot.Color = rules[id].generate(p.src).String()
	}
}

// SetColor overwrites a slot's colour regardless of its lock. Setting the
// base recomputes each unlocked derived slot from the new colour.
//
// The colour is stored even when it cannot be parsed; the returned error
// then wraps colormath.ErrMalformedColor and the base cascade uses black.
func (p *Palette) SetColor(id SlotID, color string) error {
	if !id.Valid() {
		return fmt.Errorf("set color: %w: %s", ErrUnknownSlot, id)
	}

	p.slots[id].Color = color

	c, err := colormath.Parse(color)
	if id == Base {
		p.cascade(c)
	}
	if err != nil {
		return fmt.Errorf("set color of %s: %w", id, err)
	}

	return nil
}

// SetColorByName is SetColor keyed by the slot identifier string.
func (p *Palette) SetColorByName(name, color string) error {
	id, err := ParseSlotID(name)
	if err != nil {
		return fmt.Errorf("set color: %w", err)
	}
	return p.SetColor(id, color)
}

// ApplyHex handles a colour picked as hex: it is converted to HSL and
// stored in display form. Malformed input stores black and returns the
// parse error.
func (p *Palette) ApplyHex(id SlotID, hex string) error {
	c, parseErr := colormath.HexToHSL(strings.TrimSpace(hex))
	if err := p.SetColor(id, colormath.ToDisplayString(c)); err != nil {
		return err
	}
	return parseErr
}

// ToggleLock flips the lock of one slot.
func (p *Palette) ToggleLock(id SlotID) error {
	if !id.Valid() {
		return fmt.Errorf("toggle lock: %w: %s", ErrUnknownSlot, id)
	}
	p.slots[id].Locked = !p.slots[id].Locked
	return nil
}

// ToggleLockByName is ToggleLock keyed by the slot identifier string.
func (p *Palette) ToggleLockByName(name string) error {
	id, err := ParseSlotID(name)
	if err != nil {
		return fmt.Errorf("toggle lock: %w", err)
	}
	return p.ToggleLock(id)
}

// Slots returns a copy of the slots in display order.
func (p *Palette) Slots() []Slot {
	out := make([]Slot, len(p.slots))
	copy(out, p.slots[:])
	return out
}

// Slot returns a copy of one slot.
func (p *Palette) Slot(id SlotID) (Slot, error) {
	if !id.Valid() {
		return Slot{}, fmt.Errorf("%w: %s", ErrUnknownSlot, id)
	}
	return p.slots[id], nil
}

// HexOf returns the hex rendering of a slot's colour.
func (p *Palette) HexOf(id SlotID) (string, error) {
	s, err := p.Slot(id)
	if err != nil {
		return "", err
	}
	return colormath.ToHex(s.Color)
}

// cascade recomputes the unlocked base-derived slots from base.
func (p *Palette) cascade(base colormath.HSL) {
	for _, id := range AllSlots() {
		slot := &p.slots[id]
		if slot.Locked || rules[id].derive == nil {
			continue
		}
		slot.Color = rules[id].derive(base).String()
	}
}
