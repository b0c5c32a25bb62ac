package main

import (
	"fmt"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/gamepadview/common"
	"github.com/milk9111/gamepadview/config"
	"github.com/milk9111/gamepadview/pad"
	"github.com/milk9111/gamepadview/render"
	"github.com/milk9111/gamepadview/theme"
	"go.uber.org/zap"
)

type Game struct {
	state pad.FrameState

	source   *pad.EbitenSource
	sampler  *pad.Sampler
	selector *pad.Selector
	renderer *render.Renderer
	themes   *theme.Reloader
	clip     *Clipboard

	ui  *ebitenui.UI
	hud *HUD

	logger *zap.SugaredLogger
	debug  bool
}

func NewGame(cfg *config.Config, logger *zap.SugaredLogger) (*Game, error) {
	themes, err := theme.NewReloader(cfg.ThemePath, cfg.WatchTheme, logger)
	if err != nil {
		return nil, err
	}

	fonts, err := render.NewFonts()
	if err != nil {
		_ = themes.Close()
		return nil, err
	}

	source := pad.NewEbitenSource()
	g := &Game{
		source:   source,
		sampler:  pad.NewSampler(source, logger),
		selector: pad.NewSelector(),
		renderer: render.NewRenderer(fonts, themes.Theme()),
		themes:   themes,
		clip:     NewClipboard(logger),
		logger:   logger.Named("game"),
		debug:    cfg.Debug,
	}
	g.ui, g.hud = NewHUD(fonts, themes.Theme(), g.toggleSlot)

	return g, nil
}

func (g *Game) toggleSlot() {
	slot := g.selector.Toggle()
	g.logger.Infow("switched controller slot", "slot", slot)
}

func (g *Game) applyTheme(th *theme.Theme) {
	g.renderer.SetTheme(th)
	g.hud.SetTheme(th)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.themes.Poll() {
		g.applyTheme(g.themes.Theme())
	}

	g.sampler.Sample(g.selector.Slot(), &g.state)

	if g.selector.Update(g.source) {
		g.logger.Infow("switched controller slot", "slot", g.selector.Slot())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyC) && (ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)) {
		g.clip.Copy(g.state.Snapshot())
	}

	g.hud.Refresh(&g.state)
	g.ui.Update()

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, &g.state)
	g.ui.Draw(screen)

	msg := fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS())
	if g.debug {
		msg += fmt.Sprintf("  TPS: %.0f  frame: %d", ebiten.ActualTPS(), g.state.Frame)
	}
	ebitenutil.DebugPrintAt(screen, msg, 10, 10)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() error {
	return g.themes.Close()
}
