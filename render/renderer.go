package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/gamepadview/pad"
	"github.com/milk9111/gamepadview/theme"
)

// FillFor picks on when the input is active and neutral otherwise.
func FillFor(active bool, on, neutral color.Color) color.Color {
	if active {
		return on
	}
	return neutral
}

// Renderer draws the controller layout and the state grid for one frame.
type Renderer struct {
	fonts *Fonts
	theme *theme.Theme
}

func NewRenderer(fonts *Fonts, th *theme.Theme) *Renderer {
	if th == nil {
		th = theme.Default()
	}
	return &Renderer{fonts: fonts, theme: th}
}

func (r *Renderer) SetTheme(th *theme.Theme) {
	if th != nil {
		r.theme = th
	}
}

// Draw renders st onto screen. It only reads st.
func (r *Renderer) Draw(screen *ebiten.Image, st *pad.FrameState) {
	if r == nil || screen == nil || st == nil {
		return
	}

	screen.Fill(r.theme.Background)

	r.drawTriggers(screen, st)
	r.drawZBar(screen, st)
	r.drawDPad(screen, st)
	r.drawSticks(screen, st)
	r.drawFaceButtons(screen, st)
	r.drawGrid(screen, st)
}

func (r *Renderer) fill(screen *ebiten.Image, rect Rect, clr color.Color) {
	if rect.Width <= 0 || rect.Height <= 0 {
		return
	}
	vector.FillRect(screen, rect.X, rect.Y, rect.Width, rect.Height, clr, false)
}

func (r *Renderer) stroke(screen *ebiten.Image, rect Rect, clr color.Color) {
	vector.StrokeRect(screen, rect.X, rect.Y, rect.Width, rect.Height, 1, clr, false)
}

func (r *Renderer) held(st *pad.FrameState, b pad.Button) color.Color {
	return FillFor(st.IsDown(b), r.theme.Highlight, r.theme.Neutral)
}

func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, r.fonts.Face(size), op)
}

func (r *Renderer) drawTriggers(screen *ebiten.Image, st *pad.FrameState) {
	sides := []struct {
		top, bottom Rect
		upper       pad.Button
		lower       pad.Button
		pressure    float64
	}{
		{leftTrigger2, leftTrigger1, pad.ButtonLeftTrigger2, pad.ButtonLeftTrigger1, st.Axes[pad.AxisLeftTrigger]},
		{rightTrigger2, rightTrigger1, pad.ButtonRightTrigger2, pad.ButtonRightTrigger1, st.Axes[pad.AxisRightTrigger]},
	}

	for _, s := range sides {
		r.fill(screen, s.top, r.held(st, s.upper))
		r.fill(screen, TriggerFill(s.top, s.pressure), r.theme.Pressure)
		r.fill(screen, s.bottom, r.held(st, s.lower))
		r.drawText(screen, fmt.Sprintf("%.3f", s.pressure), float64(s.top.X), float64(s.top.Y)-20, labelSize, r.theme.Ink)
	}
}

func (r *Renderer) drawZBar(screen *ebiten.Image, st *pad.FrameState) {
	z := st.Axes.Combined()
	r.fill(screen, Rect{X: zBarX, Y: zBarY, Width: ZBarWidth(z), Height: zBarHeight}, r.theme.Pressure)
	r.stroke(screen, Rect{X: zBarX, Y: zBarY, Width: zBarWidth, Height: zBarHeight - 1}, r.theme.Ink)
	r.drawText(screen, fmt.Sprintf("%+.3f", z), zBarX+15, zBarY+4, zLabelSize, r.theme.Ink)
}

func (r *Renderer) drawDPad(screen *ebiten.Image, st *pad.FrameState) {
	for b, rect := range dpad {
		r.fill(screen, rect, r.held(st, b))
	}
	r.fill(screen, selectButton, r.held(st, pad.ButtonMiddleLeft))
	r.fill(screen, startButton, r.held(st, pad.ButtonMiddleRight))
}

func (r *Renderer) drawSticks(screen *ebiten.Image, st *pad.FrameState) {
	sticks := []struct {
		center point
		thumb  pad.Button
		x, y   pad.Axis
	}{
		{leftStick, pad.ButtonLeftThumb, pad.AxisLeftX, pad.AxisLeftY},
		{rightStick, pad.ButtonRightThumb, pad.AxisRightX, pad.AxisRightY},
	}

	for _, s := range sticks {
		vector.FillCircle(screen, s.center.X, s.center.Y, stickRingRadius, r.theme.StickRing, true)
		vector.FillCircle(screen, s.center.X, s.center.Y, stickThumbRadius, r.held(st, s.thumb), true)
		dx, dy := StickDot(s.center.X, s.center.Y, st.Axes[s.x], st.Axes[s.y])
		vector.FillCircle(screen, dx, dy, stickDotRadius, r.theme.Ink, true)
	}
}

func (r *Renderer) drawFaceButtons(screen *ebiten.Image, st *pad.FrameState) {
	th := r.theme
	ink := th.Ink

	vector.FillCircle(screen, squareCenter.X, squareCenter.Y, faceRadius, FillFor(st.IsDown(pad.ButtonRightFaceLeft), th.Square, th.Neutral), true)
	vector.FillCircle(screen, triangleCenter.X, triangleCenter.Y, faceRadius, FillFor(st.IsDown(pad.ButtonRightFaceUp), th.Triangle, th.Neutral), true)
	vector.FillCircle(screen, circleCenter.X, circleCenter.Y, faceRadius, FillFor(st.IsDown(pad.ButtonRightFaceRight), th.Circle, th.Neutral), true)
	vector.FillCircle(screen, crossCenter.X, crossCenter.Y, faceRadius, FillFor(st.IsDown(pad.ButtonRightFaceDown), th.Cross, th.Neutral), true)

	fillPolygon(screen, squareCenter, 4, 15, 45, ink)
	fillPolygon(screen, triangleCenter, 3, 12, 30, ink)
	vector.StrokeCircle(screen, circleCenter.X, circleCenter.Y-2, 12, 1, ink, true)
	vector.StrokeLine(screen, crossCenter.X-8, crossCenter.Y-8, crossCenter.X+8, crossCenter.Y+8, 1, ink, true)
	vector.StrokeLine(screen, crossCenter.X-8, crossCenter.Y+8, crossCenter.X+8, crossCenter.Y-8, 1, ink, true)
}

func (r *Renderer) drawGrid(screen *ebiten.Image, st *pad.FrameState) {
	th := r.theme

	face := r.fonts.Face(labelSize)
	for sem := pad.Semantic(0); sem < pad.SemanticCount; sem++ {
		op := &text.DrawOptions{}
		op.GeoM.Rotate(-math.Pi / 4)
		op.GeoM.Translate(GridX+5+GridCell*float64(sem), GridY-10)
		op.ColorScale.ScaleWithColor(th.Ink)
		text.Draw(screen, sem.String(), face, op)
	}

	for b := pad.Button(0); b < pad.ButtonCount; b++ {
		label := pad.Buttons[b].Label
		lx := GridX - 10 - r.fonts.Measure(label, labelSize)
		r.drawText(screen, label, lx, GridY+2+GridCell*float64(b), labelSize, th.Ink)

		for sem := pad.Semantic(0); sem < pad.SemanticCount; sem++ {
			cell := GridCellRect(b, sem)
			r.fill(screen, cell, FillFor(st.Buttons[b].Get(sem), th.Highlight, th.Neutral))
			r.stroke(screen, cell, th.Ink)
		}
	}
}

// fillPolygon draws a regular polygon of the given radius, rotated by
// rotation degrees.
func fillPolygon(screen *ebiten.Image, c point, sides int, radius, rotation float64, clr color.Color) {
	var path vector.Path
	for i, p := range polygonVertices(float64(c.X), float64(c.Y), sides, radius, rotation) {
		if i == 0 {
			path.MoveTo(p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.Close()

	op := &vector.DrawPathOptions{AntiAlias: true}
	op.ColorScale.ScaleWithColor(clr)
	vector.FillPath(screen, &path, &vector.FillOptions{}, op)
}

func polygonVertices(cx, cy float64, sides int, radius, rotation float64) []point {
	if sides < 3 {
		sides = 3
	}
	pts := make([]point, sides)
	step := 2 * math.Pi / float64(sides)
	start := rotation * math.Pi / 180
	for i := range pts {
		a := start + step*float64(i)
		pts[i] = point{
			X: float32(cx + radius*math.Cos(a)),
			Y: float32(cy + radius*math.Sin(a)),
		}
	}
	return pts
}
