package pad

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads gamepads and keyboard through ebiten. Slot n is the
// n-th connected gamepad ordered by ascending ID.
type EbitenSource struct {
	ids []ebiten.GamepadID
}

func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

func (s *EbitenSource) Poll() {
	s.ids = ebiten.AppendGamepadIDs(s.ids[:0])
	slices.Sort(s.ids)
}

func (s *EbitenSource) gamepad(slot int) (ebiten.GamepadID, bool) {
	if slot < 0 || slot >= len(s.ids) {
		return 0, false
	}
	return s.ids[slot], true
}

func (s *EbitenSource) Connected(slot int) bool {
	_, ok := s.gamepad(slot)
	return ok
}

func (s *EbitenSource) Name(slot int) string {
	id, ok := s.gamepad(slot)
	if !ok {
		return ""
	}
	return ebiten.GamepadName(id)
}

func (s *EbitenSource) ButtonDown(slot int, b Button) bool {
	id, ok := s.gamepad(slot)
	if !ok || b < 0 || b >= ButtonCount {
		return false
	}

	std := Buttons[b].Standard
	if ebiten.IsStandardGamepadLayoutAvailable(id) {
		return ebiten.IsStandardGamepadButtonPressed(id, std)
	}

	// Controllers without a standard mapping: fall back to the raw button
	// sharing the standard index, which matches most XInput style pads.
	return ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(std))
}

func (s *EbitenSource) AxisValue(slot int, a Axis) float64 {
	id, ok := s.gamepad(slot)
	if !ok {
		return 0
	}

	standard := ebiten.IsStandardGamepadLayoutAvailable(id)

	switch a {
	case AxisLeftX:
		return s.stick(id, standard, ebiten.StandardGamepadAxisLeftStickHorizontal)
	case AxisLeftY:
		return s.stick(id, standard, ebiten.StandardGamepadAxisLeftStickVertical)
	case AxisRightX:
		return s.stick(id, standard, ebiten.StandardGamepadAxisRightStickHorizontal)
	case AxisRightY:
		return s.stick(id, standard, ebiten.StandardGamepadAxisRightStickVertical)
	case AxisLeftTrigger:
		return s.trigger(id, standard, ebiten.StandardGamepadButtonFrontBottomLeft)
	case AxisRightTrigger:
		return s.trigger(id, standard, ebiten.StandardGamepadButtonFrontBottomRight)
	}
	return 0
}

func (s *EbitenSource) stick(id ebiten.GamepadID, standard bool, axis ebiten.StandardGamepadAxis) float64 {
	if standard {
		return ebiten.StandardGamepadAxisValue(id, axis)
	}
	if int(axis) >= ebiten.GamepadAxisCount(id) {
		return 0
	}
	return ebiten.GamepadAxisValue(id, int(axis))
}

func (s *EbitenSource) trigger(id ebiten.GamepadID, standard bool, button ebiten.StandardGamepadButton) float64 {
	if standard {
		return ebiten.StandardGamepadButtonValue(id, button)
	}
	if ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton(button)) {
		return 1
	}
	return 0
}

func (s *EbitenSource) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
