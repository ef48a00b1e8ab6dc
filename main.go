package main

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	_ "github.com/ebitengine/hideconsole"
	"github.com/hajimehoshi/ebiten/v2"

	"balloon/internal/config"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "balloon",
	})

	// 1. Config
	cfg, err := config.Load(config.GetEnv("BALLOON_ENV_FILE", ".env"))
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	logger.SetLevel(cfg.Level())

	// 2. Window Setup
	ebiten.SetWindowSize(int(float64(cfg.Width)*cfg.WindowScale), int(float64(cfg.Height)*cfg.WindowScale))
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	// 3. Initialize Game
	game := NewGame(cfg, logger)
	logger.Info("starting", "width", cfg.Width, "height", cfg.Height, "tps", cfg.TPS, "audio", cfg.Audio)

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("game loop", "err", err)
	}
}
