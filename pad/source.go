package pad

import "github.com/hajimehoshi/ebiten/v2"

// Source is the hardware side of the sampler. Every query is total: a slot
// with nothing plugged in reports neutral values.
type Source interface {
	// Poll is called once at the start of every sample.
	Poll()
	Connected(slot int) bool
	Name(slot int) string
	ButtonDown(slot int, b Button) bool
	AxisValue(slot int, a Axis) float64
}

// Keyboard reports key press edges for the current frame.
type Keyboard interface {
	KeyJustPressed(key ebiten.Key) bool
}
