package main

import (
	"io"
	"os"
	"time"

	"github.com/integrii/flaggy"

	"lifecanvas/internal/app"
	"lifecanvas/internal/core"
	"lifecanvas/internal/log"
	"lifecanvas/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Unit = term.DefaultUnit
	cfg.Cols, cfg.Rows = 48, 24
	// The surface follows the terminal size; these only cover the first layout.
	cfg.Width, cfg.Height = 80, 48
	logFile := ""

	flaggy.SetName("lifeterm")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid, in the terminal")
	cfg.Bind(flaggy.DefaultParser)
	flaggy.String(&logFile, "", "log-file", "append logs to this file; without it logs are discarded")
	flaggy.Parse()

	fatal := log.New(os.Stderr, log.LevelError, !cfg.NoColor).With("LIFETERM")

	// The terminal UI owns the screen, so logs only go to a file.
	var out io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fatal.Errorf("open log file: %v", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.New(out, level, false)

	queue := core.NewFrameQueue(nil)
	s, err := cfg.NewSession(queue, logger)
	if err != nil {
		fatal.Errorf("%v", err)
		os.Exit(1)
	}
	console, err := term.NewConsole(s, queue, !cfg.NoColor, cfg.Seed, logger)
	if err != nil {
		fatal.Errorf("%v", err)
		os.Exit(1)
	}
	if cfg.Density > 0 {
		console.Density = cfg.Density
	}
	if err := console.Run(time.Second / core.MaxFPS); err != nil {
		fatal.Errorf("%v", err)
		os.Exit(1)
	}
}
