package pad

import "testing"

func TestSelectorToggleParity(t *testing.T) {
	for n := 0; n <= 7; n++ {
		s := NewSelector()
		for i := 0; i < n; i++ {
			s.Toggle()
		}
		want := n % 2
		if s.Slot() != want {
			t.Fatalf("after %d toggles expected slot %d, got %d", n, want, s.Slot())
		}
	}
}

func TestSelectorUpdate(t *testing.T) {
	src := newFakeSource()
	s := NewSelector()

	steps := []struct {
		name     string
		pressed  bool
		wantSlot int
	}{
		{"idle", false, 0},
		{"first_press", true, 1},
		{"no_edge", false, 1},
		{"second_press", true, 0},
	}

	for _, step := range steps {
		t.Run(step.name, func(t *testing.T) {
			src.keys[ToggleKey] = step.pressed
			changed := s.Update(src)
			if changed != step.pressed {
				t.Fatalf("expected changed=%v, got %v", step.pressed, changed)
			}
			if s.Slot() != step.wantSlot {
				t.Fatalf("expected slot %d, got %d", step.wantSlot, s.Slot())
			}
		})
	}
}

func TestSelectorNilKeyboard(t *testing.T) {
	s := NewSelector()
	if s.Update(nil) {
		t.Fatalf("nil keyboard should never toggle")
	}
	if s.Slot() != 0 {
		t.Fatalf("expected slot 0, got %d", s.Slot())
	}
}
