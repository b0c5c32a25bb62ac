package render

import (
	"github.com/milk9111/gamepadview/common"
	"github.com/milk9111/gamepadview/pad"
)

// Fixed screen layout, in pixels.
const (
	triggerWidth  = 60
	triggerHeight = 30

	zBarX      = 160
	zBarY      = 60
	zBarWidth  = 100
	zBarHeight = 30

	dpadSize = 40

	stickRingRadius  = 40
	stickThumbRadius = 20
	stickDotRadius   = 15
	stickTravel      = 25

	faceRadius = 20

	GridX    = 530
	GridY    = 60
	GridCell = 20

	labelSize  = 14
	zLabelSize = 20
)

var (
	leftTrigger2  = Rect{X: 40, Y: 60, Width: triggerWidth, Height: triggerHeight}
	leftTrigger1  = Rect{X: 40, Y: 110, Width: triggerWidth, Height: triggerHeight}
	rightTrigger2 = Rect{X: 320, Y: 60, Width: triggerWidth, Height: triggerHeight}
	rightTrigger1 = Rect{X: 320, Y: 110, Width: triggerWidth, Height: triggerHeight}

	dpad = map[pad.Button]Rect{
		pad.ButtonLeftFaceLeft:  {X: 10, Y: 210, Width: dpadSize, Height: dpadSize},
		pad.ButtonLeftFaceUp:    {X: 50, Y: 170, Width: dpadSize, Height: dpadSize},
		pad.ButtonLeftFaceRight: {X: 90, Y: 210, Width: dpadSize, Height: dpadSize},
		pad.ButtonLeftFaceDown:  {X: 50, Y: 250, Width: dpadSize, Height: dpadSize},
	}

	selectButton = Rect{X: 160, Y: 220, Width: 40, Height: 20}
	startButton  = Rect{X: 220, Y: 220, Width: 40, Height: 20}
)

type point struct {
	X, Y float32
}

var (
	leftStick  = point{135, 340}
	rightStick = point{285, 340}

	squareCenter   = point{310, 230}
	triangleCenter = point{350, 190}
	circleCenter   = point{390, 230}
	crossCenter    = point{350, 270}
)

// TriggerFill returns the part of a trigger block covered by pressure,
// growing upward from the block's bottom edge.
func TriggerFill(block Rect, pressure float64) Rect {
	p := float32(common.Clamp(pressure, 0, 1))
	h := block.Height * p
	return Rect{X: block.X, Y: block.Y + block.Height - h, Width: block.Width, Height: h}
}

// ZBarWidth maps a [-1,1] value onto the z bar width.
func ZBarWidth(z float64) float32 {
	t := float32((common.Clamp(z, -1, 1) + 1) / 2)
	return common.Lerp(0, zBarWidth, t)
}

// StickDot returns the deflection dot position for a stick centred at (cx, cy).
func StickDot(cx, cy float32, x, y float64) (float32, float32) {
	return cx + stickTravel*float32(common.Clamp(x, -1, 1)), cy + stickTravel*float32(common.Clamp(y, -1, 1))
}

// GridCellRect returns the indicator cell for button row and semantic column.
func GridCellRect(b pad.Button, sem pad.Semantic) Rect {
	return Rect{
		X:      GridX + GridCell*float32(sem),
		Y:      GridY + GridCell*float32(b),
		Width:  GridCell,
		Height: GridCell,
	}
}

// GridBounds covers every indicator cell.
func GridBounds() Rect {
	return Rect{
		X:      GridX,
		Y:      GridY,
		Width:  GridCell * float32(pad.SemanticCount),
		Height: GridCell * float32(pad.ButtonCount),
	}
}
