package pad

import "github.com/hajimehoshi/ebiten/v2"

// SlotCount is the number of controller slots the selector cycles through.
const SlotCount = 2

// ToggleKey flips the active slot.
const ToggleKey = ebiten.KeySpace

// Selector holds the active controller slot.
type Selector struct {
	slot int
}

func NewSelector() *Selector {
	return &Selector{}
}

func (s *Selector) Slot() int {
	return s.slot
}

// Toggle flips between slot 0 and slot 1.
func (s *Selector) Toggle() int {
	s.slot = (s.slot + 1) % SlotCount
	return s.slot
}

// Update toggles the slot when ToggleKey was pressed this frame and reports
// whether it did.
func (s *Selector) Update(kb Keyboard) bool {
	if kb == nil || !kb.KeyJustPressed(ToggleKey) {
		return false
	}
	s.Toggle()
	return true
}
