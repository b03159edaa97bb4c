//go:build ebiten

package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"

	"lifecanvas/internal/app"
	"lifecanvas/internal/core"
)

func main() {
	cfg := app.NewConfig()
	flaggy.SetName("lifecanvas")
	flaggy.SetDescription("Conway's Game of Life on a toroidal, pannable, zoomable canvas")
	cfg.Bind(flaggy.DefaultParser)
	flaggy.Parse()

	logger := cfg.Logger(os.Stderr)
	queue := core.NewFrameQueue(nil)
	s, err := cfg.NewSession(queue, logger)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	game := app.New(s, queue, logger)

	ebiten.SetWindowTitle("lifecanvas")
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(core.MaxFPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Errorf("%v", err)
		os.Exit(1)
	}
}
