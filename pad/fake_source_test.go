package pad

import "github.com/hajimehoshi/ebiten/v2"

type fakeSource struct {
	polls     int
	connected [SlotCount]bool
	down      [SlotCount][ButtonCount]bool
	axes      [SlotCount][AxisCount]float64
	keys      map[ebiten.Key]bool
}

func newFakeSource() *fakeSource {
	f := &fakeSource{keys: map[ebiten.Key]bool{}}
	f.connected[0] = true
	return f
}

func (f *fakeSource) Poll() { f.polls++ }

func (f *fakeSource) Connected(slot int) bool {
	if slot < 0 || slot >= SlotCount {
		return false
	}
	return f.connected[slot]
}

func (f *fakeSource) Name(slot int) string {
	if !f.Connected(slot) {
		return ""
	}
	return "fake pad"
}

func (f *fakeSource) ButtonDown(slot int, b Button) bool {
	if !f.Connected(slot) {
		return false
	}
	return f.down[slot][b]
}

func (f *fakeSource) AxisValue(slot int, a Axis) float64 {
	if !f.Connected(slot) {
		return 0
	}
	return f.axes[slot][a]
}

func (f *fakeSource) KeyJustPressed(key ebiten.Key) bool {
	return f.keys[key]
}
