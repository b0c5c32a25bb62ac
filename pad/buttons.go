package pad

import "github.com/hajimehoshi/ebiten/v2"

// Button identifies one of the sixteen logical buttons shown by the viewer.
type Button int

const (
	ButtonLeftFaceLeft Button = iota
	ButtonLeftFaceUp
	ButtonLeftFaceRight
	ButtonLeftFaceDown
	ButtonMiddleLeft
	ButtonMiddleRight
	ButtonLeftThumb
	ButtonRightThumb
	ButtonRightFaceLeft
	ButtonRightFaceUp
	ButtonRightFaceRight
	ButtonRightFaceDown
	ButtonLeftTrigger1
	ButtonLeftTrigger2
	ButtonRightTrigger1
	ButtonRightTrigger2

	ButtonCount
)

// ButtonInfo describes a button: its display label and the ebiten standard
// layout button it is read from.
type ButtonInfo struct {
	Button   Button
	Label    string
	Standard ebiten.StandardGamepadButton
}

// Buttons is indexed by Button. Buttons[b].Button == b for every entry.
var Buttons = [ButtonCount]ButtonInfo{
	{ButtonLeftFaceLeft, "left", ebiten.StandardGamepadButtonLeftLeft},
	{ButtonLeftFaceUp, "up", ebiten.StandardGamepadButtonLeftTop},
	{ButtonLeftFaceRight, "right", ebiten.StandardGamepadButtonLeftRight},
	{ButtonLeftFaceDown, "down", ebiten.StandardGamepadButtonLeftBottom},
	{ButtonMiddleLeft, "select", ebiten.StandardGamepadButtonCenterLeft},
	{ButtonMiddleRight, "start", ebiten.StandardGamepadButtonCenterRight},
	{ButtonLeftThumb, "left thumb", ebiten.StandardGamepadButtonLeftStick},
	{ButtonRightThumb, "right thumb", ebiten.StandardGamepadButtonRightStick},
	{ButtonRightFaceLeft, "Square/X", ebiten.StandardGamepadButtonRightLeft},
	{ButtonRightFaceUp, "Triangle/Y", ebiten.StandardGamepadButtonRightTop},
	{ButtonRightFaceRight, "Circle/B", ebiten.StandardGamepadButtonRightRight},
	{ButtonRightFaceDown, "Cross/A", ebiten.StandardGamepadButtonRightBottom},
	{ButtonLeftTrigger1, "L1/LB", ebiten.StandardGamepadButtonFrontTopLeft},
	{ButtonLeftTrigger2, "L2/LT", ebiten.StandardGamepadButtonFrontBottomLeft},
	{ButtonRightTrigger1, "R1/RB", ebiten.StandardGamepadButtonFrontTopRight},
	{ButtonRightTrigger2, "R2/RT", ebiten.StandardGamepadButtonFrontBottomRight},
}

func (b Button) String() string {
	if b < 0 || b >= ButtonCount {
		return "unknown"
	}
	return Buttons[b].Label
}

// Semantic is one of the four per-button states shown in the grid columns.
type Semantic int

const (
	Pressed Semantic = iota
	Released
	Down
	Up

	SemanticCount
)

var semanticNames = [SemanticCount]string{"pressed", "released", "down", "up"}

func (s Semantic) String() string {
	if s < 0 || s >= SemanticCount {
		return "unknown"
	}
	return semanticNames[s]
}

// Axis identifies one of the six analog channels.
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger

	AxisCount
)

var axisNames = [AxisCount]string{"lx", "ly", "rx", "ry", "lt", "rt"}

func (a Axis) String() string {
	if a < 0 || a >= AxisCount {
		return "unknown"
	}
	return axisNames[a]
}

// IsTrigger reports whether the axis is a trigger, which rests at 0.
func (a Axis) IsTrigger() bool {
	return a == AxisLeftTrigger || a == AxisRightTrigger
}

// Range returns the inclusive bounds of the axis value.
func (a Axis) Range() (lo, hi float64) {
	if a.IsTrigger() {
		return 0, 1
	}
	return -1, 1
}
