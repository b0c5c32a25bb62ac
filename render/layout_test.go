package render

import (
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/gamepadview/common"
	"github.com/milk9111/gamepadview/pad"
	"github.com/milk9111/gamepadview/theme"
)

func TestFillFor(t *testing.T) {
	on := color.RGBA{R: 255, A: 255}
	off := color.RGBA{B: 255, A: 255}
	if FillFor(true, on, off) != on {
		t.Fatalf("active input should use the highlight colour")
	}
	if FillFor(false, on, off) != off {
		t.Fatalf("idle input should use the neutral colour")
	}
}

func TestTriggerFill(t *testing.T) {
	block := Rect{X: 40, Y: 60, Width: 60, Height: 30}
	cases := []struct {
		name     string
		pressure float64
		wantY    float32
		wantH    float32
	}{
		{"rest", 0, 90, 0},
		{"half", 0.5, 75, 15},
		{"full", 1, 60, 30},
		{"over", 3, 60, 30},
		{"negative", -1, 90, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := TriggerFill(block, c.pressure)
			if got.X != block.X || got.Width != block.Width {
				t.Fatalf("fill must keep the block's columns, got %+v", got)
			}
			if got.Y != c.wantY || got.Height != c.wantH {
				t.Fatalf("expected y=%v h=%v, got %+v", c.wantY, c.wantH, got)
			}
			if got.Y+got.Height != block.Y+block.Height {
				t.Fatalf("fill must sit on the block's bottom edge, got %+v", got)
			}
		})
	}
}

func TestZBarWidth(t *testing.T) {
	cases := map[float64]float32{-1: 0, 0: 50, 1: 100, 2: 100, -5: 0}
	for z, want := range cases {
		if got := ZBarWidth(z); got != want {
			t.Fatalf("ZBarWidth(%v) = %v, want %v", z, got, want)
		}
	}
}

func TestStickDot(t *testing.T) {
	x, y := StickDot(135, 340, 1, -1)
	if x != 160 || y != 315 {
		t.Fatalf("unexpected dot (%v, %v)", x, y)
	}
	x, y = StickDot(135, 340, 4, 0)
	if x != 160 || y != 340 {
		t.Fatalf("deflection must be clamped, got (%v, %v)", x, y)
	}
}

func TestGridCells(t *testing.T) {
	bounds := GridBounds()
	for b := pad.Button(0); b < pad.ButtonCount; b++ {
		for sem := pad.Semantic(0); sem < pad.SemanticCount; sem++ {
			cell := GridCellRect(b, sem)
			if !bounds.Contains(cell.X, cell.Y) || !bounds.Contains(cell.X+cell.Width, cell.Y+cell.Height) {
				t.Fatalf("cell %v/%v outside grid bounds: %+v", b, sem, cell)
			}
			if sem > 0 {
				prev := GridCellRect(b, sem-1)
				if prev.Intersects(&cell) {
					t.Fatalf("cells %v/%v and %v/%v overlap", b, sem-1, b, sem)
				}
			}
		}
	}
	if bounds.X+bounds.Width > common.BaseWidth || bounds.Y+bounds.Height > common.BaseHeight {
		t.Fatalf("grid does not fit the base screen: %+v", bounds)
	}
}

func TestLayoutDoesNotOverlapGrid(t *testing.T) {
	grid := GridBounds()
	shapes := []Rect{leftTrigger1, leftTrigger2, rightTrigger1, rightTrigger2, selectButton, startButton}
	for _, r := range dpad {
		shapes = append(shapes, r)
	}
	for _, s := range shapes {
		if s.Intersects(&grid) {
			t.Fatalf("%+v overlaps the state grid", s)
		}
	}
}

func TestPolygonVertices(t *testing.T) {
	pts := polygonVertices(0, 0, 4, 10, 45)
	if len(pts) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(pts))
	}
	for _, p := range pts {
		d := math.Hypot(float64(p.X), float64(p.Y))
		if math.Abs(d-10) > 1e-4 {
			t.Fatalf("vertex %+v not on radius 10", p)
		}
	}
	// rotated by 45 degrees the square is axis aligned
	if math.Abs(float64(pts[0].X)-float64(pts[0].Y)) > 1e-4 {
		t.Fatalf("first vertex should lie on the diagonal, got %+v", pts[0])
	}
	if got := polygonVertices(0, 0, 1, 5, 0); len(got) != 3 {
		t.Fatalf("degenerate side count should become a triangle, got %d", len(got))
	}
}

func TestRendererSetTheme(t *testing.T) {
	r := NewRenderer(nil, nil)
	if r.theme == nil {
		t.Fatalf("nil theme should fall back to the built-in palette")
	}

	def := r.theme
	r.SetTheme(nil)
	if r.theme != def {
		t.Fatalf("nil theme must not replace the current one")
	}

	next := theme.Default()
	r.SetTheme(next)
	if r.theme != next {
		t.Fatalf("SetTheme did not swap the palette")
	}
}
