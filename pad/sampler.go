package pad

import (
	"github.com/milk9111/gamepadview/common"
	"go.uber.org/zap"
)

// Sampler fills a FrameState from a Source once per frame. Pressed and
// Released are derived from the level seen on the previous sample of the
// same slot, so Pressed implies Down and Released implies Up.
type Sampler struct {
	src    Source
	logger *zap.SugaredLogger

	prevDown      [ButtonCount]bool
	prevSlot      int
	prevConnected bool
	primed        bool
	frame         uint64
}

func NewSampler(src Source, logger *zap.SugaredLogger) *Sampler {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Sampler{src: src, logger: logger.Named("input")}
}

// Sample overwrites st with the live state of the given slot.
func (s *Sampler) Sample(slot int, st *FrameState) {
	if s == nil || st == nil {
		return
	}

	s.src.Poll()
	s.frame++

	connected := s.src.Connected(slot)

	var down [ButtonCount]bool
	if connected {
		for b := Button(0); b < ButtonCount; b++ {
			down[b] = s.src.ButtonDown(slot, b)
		}
	}

	// A different controller has no history; seed from its current levels.
	if !s.primed || slot != s.prevSlot {
		s.prevDown = down
	}

	if s.primed && slot == s.prevSlot && connected != s.prevConnected {
		if connected {
			s.logger.Infow("controller connected", "slot", slot, "name", s.src.Name(slot))
		} else {
			s.logger.Infow("controller disconnected", "slot", slot)
		}
	}

	*st = FrameState{
		Frame:     s.frame,
		Slot:      slot,
		Connected: connected,
	}
	if connected {
		st.Name = s.src.Name(slot)
	}

	for b := Button(0); b < ButtonCount; b++ {
		st.Buttons[b] = ButtonState{
			Pressed:  down[b] && !s.prevDown[b],
			Released: !down[b] && s.prevDown[b],
			Down:     down[b],
			Up:       !down[b],
		}
	}

	if connected {
		for a := Axis(0); a < AxisCount; a++ {
			lo, hi := a.Range()
			st.Axes[a] = common.Clamp(s.src.AxisValue(slot, a), lo, hi)
		}
	}

	s.prevDown = down
	s.prevSlot = slot
	s.prevConnected = connected
	s.primed = true
}
