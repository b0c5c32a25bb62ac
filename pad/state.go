package pad

import (
	"fmt"
	"strings"

	"github.com/milk9111/gamepadview/common"
)

// ButtonState holds the four per-frame semantics of a single button.
// Down and Up are always complementary. Pressed and Released are edges.
type ButtonState struct {
	Pressed  bool
	Released bool
	Down     bool
	Up       bool
}

func (s ButtonState) Get(sem Semantic) bool {
	switch sem {
	case Pressed:
		return s.Pressed
	case Released:
		return s.Released
	case Down:
		return s.Down
	case Up:
		return s.Up
	}
	return false
}

// AxisState holds the clamped value of every axis for the frame.
type AxisState [AxisCount]float64

func (a AxisState) Get(axis Axis) float64 {
	if axis < 0 || axis >= AxisCount {
		return 0
	}
	return a[axis]
}

// Combined folds both triggers into a single [-1,1] value, right minus left.
func (a AxisState) Combined() float64 {
	return common.Clamp(a[AxisRightTrigger]-a[AxisLeftTrigger], -1, 1)
}

// FrameState is everything sampled for one frame. The sampler overwrites it
// fully and the renderer only reads it.
type FrameState struct {
	Frame     uint64
	Slot      int
	Connected bool
	Name      string
	Buttons   [ButtonCount]ButtonState
	Axes      AxisState
}

func (st *FrameState) Button(b Button) ButtonState {
	if b < 0 || b >= ButtonCount {
		return ButtonState{Up: true}
	}
	return st.Buttons[b]
}

func (st *FrameState) IsDown(b Button) bool {
	return st.Button(b).Down
}

// Snapshot renders the frame as a plain text table.
func (st *FrameState) Snapshot() string {
	var sb strings.Builder

	name := st.Name
	if !st.Connected {
		name = "no controller"
	}
	fmt.Fprintf(&sb, "frame %d  slot %d  %s\n", st.Frame, st.Slot, name)

	fmt.Fprintf(&sb, "%-12s", "")
	for sem := Semantic(0); sem < SemanticCount; sem++ {
		fmt.Fprintf(&sb, " %-8s", sem)
	}
	sb.WriteByte('\n')

	for b := Button(0); b < ButtonCount; b++ {
		fmt.Fprintf(&sb, "%-12s", b)
		for sem := Semantic(0); sem < SemanticCount; sem++ {
			mark := "."
			if st.Buttons[b].Get(sem) {
				mark = "x"
			}
			fmt.Fprintf(&sb, " %-8s", mark)
		}
		sb.WriteByte('\n')
	}

	for a := Axis(0); a < AxisCount; a++ {
		fmt.Fprintf(&sb, "%s=%+.3f ", a, st.Axes[a])
	}
	fmt.Fprintf(&sb, "z=%+.3f\n", st.Axes.Combined())

	return sb.String()
}
