package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/gamepadview/common"
	"github.com/milk9111/gamepadview/pad"
	"github.com/milk9111/gamepadview/render"
	"github.com/milk9111/gamepadview/theme"
)

const hudHeight = 36

// HUD is the status strip along the bottom edge: active slot, controller
// name and a button that switches slots like the space key does.
type HUD struct {
	ui       *ebitenui.UI
	fonts    *render.Fonts
	onSwitch func()

	status *widget.Text
	panel  *widget.Container

	lastStatus string
}

// NewHUD builds the status strip. onSwitch runs when the button is clicked.
func NewHUD(fonts *render.Fonts, th *theme.Theme, onSwitch func()) (*ebitenui.UI, *HUD) {
	h := &HUD{ui: &ebitenui.UI{}, fonts: fonts, onSwitch: onSwitch}
	h.lastStatus = statusLine(&pad.FrameState{})
	h.build(th)
	return h.ui, h
}

// build replaces the widget tree with one coloured by th, keeping the
// current status text.
func (h *HUD) build(th *theme.Theme) {
	var face ebtext.Face = h.fonts.Face(14)

	btnImg := imageui.NewNineSliceColor(th.HUDButton)
	btnHover := imageui.NewNineSliceColor(th.HUDHover)
	btnTextColor := &widget.ButtonTextColor{Idle: th.HUDText}

	status := widget.NewText(
		widget.TextOpts.Text(h.lastStatus, &face, th.HUDText),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	switchBtn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnImg, Hover: btnHover, Pressed: btnHover}),
		widget.ButtonOpts.Text("switch controller (space)", &face, btnTextColor),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if h.onSwitch != nil {
				h.onSwitch()
			}
		}),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(th.HUD)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(16),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 10, Right: 10}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth, hudHeight),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
				StretchHorizontal:  true,
			}),
		),
	)
	panel.AddChild(status)
	panel.AddChild(switchBtn)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.status = status
	h.panel = panel
	h.ui.Container = root
}

// Refresh updates the status text when it changes.
func (h *HUD) Refresh(st *pad.FrameState) {
	line := statusLine(st)
	if line == h.lastStatus {
		return
	}
	h.lastStatus = line
	h.status.Label = line
}

// SetTheme recolours the whole strip.
func (h *HUD) SetTheme(th *theme.Theme) {
	if th == nil {
		return
	}
	h.build(th)
}

func statusLine(st *pad.FrameState) string {
	if !st.Connected {
		return fmt.Sprintf("slot %d: no controller", st.Slot)
	}
	name := st.Name
	if name == "" {
		name = "unnamed controller"
	}
	return fmt.Sprintf("slot %d: %s", st.Slot, name)
}
