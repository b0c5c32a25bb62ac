package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/gamepadview/config"
)

func main() {
	configPath := flag.String("config", "", "config file (default ./gamepadview.yaml if present)")
	themePath := flag.String("theme", "", "theme file, overrides the config")
	debug := flag.Bool("debug", false, "enable debug mode")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *themePath != "" {
		cfg.ThemePath = *themePath
	}
	if *debug {
		cfg.Debug = true
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Infow("starting", "config", cfg.File, "theme", cfg.ThemePath, "debug", cfg.Debug)

	if cfg.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.TPS)

	game, err := NewGame(cfg, logger)
	if err != nil {
		logger.Fatalw("failed to start", "error", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorw("game loop stopped", "error", err)
	}
}
