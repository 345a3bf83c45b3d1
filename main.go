package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"sketchboard/internal/board"
	"sketchboard/internal/logging"
	"sketchboard/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	width := flag.Float64("width", 0, "canvas width, overrides the config")
	height := flag.Float64("height", 0, "canvas height, overrides the config")
	debug := flag.Bool("debug", false, "log render passes and gesture details")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*configPath, *width, *height); err != nil {
		fmt.Fprintln(os.Stderr, "sketchboard:", err)
		os.Exit(1)
	}
}

func run(configPath string, width, height float64) error {
	cfg := board.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = board.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if width > 0 || height > 0 {
		w, h := cfg.CanvasWidth, cfg.CanvasHeight
		if width > 0 {
			w = width
		}
		if height > 0 {
			h = height
		}
		board.WithCanvasSize(w, h)(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logging.Logger().Info("starting sketchboard",
		"canvas", fmt.Sprintf("%vx%v", cfg.CanvasWidth, cfg.CanvasHeight),
		"frame_rate", cfg.FrameRate)
	return ui.RunApp(cfg)
}
