package main

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/kelseyhightower/envconfig"
)

// config holds the demo settings. Environment variables prefixed with
// SWRDEMO_ provide the defaults and command line flags override them.
type config struct {
	Width   int    `envconfig:"WIDTH" default:"256"`
	Height  int    `envconfig:"HEIGHT" default:"256"`
	Zoom    int    `envconfig:"ZOOM" default:"1"`
	Scene   string `envconfig:"SCENE" default:"all"`
	Output  string `envconfig:"OUTPUT" default:"swrdemo.png"`
	Verbose bool   `envconfig:"VERBOSE" default:"false"`
}

func loadConfig(args []string) (*config, error) {
	var cfg config
	if err := envconfig.Process("swrdemo", &cfg); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	fs := flag.NewFlagSet("swrdemo", flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "image width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "image height")
	fs.IntVar(&cfg.Zoom, "zoom", cfg.Zoom, "nearest-neighbor magnification of the output")
	fs.StringVar(&cfg.Scene, "scene", cfg.Scene, "scene to draw: "+sceneNames())
	fs.StringVar(&cfg.Output, "output", cfg.Output, "output PNG file")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Zoom < 1 {
		cfg.Zoom = 1
	}
	if _, ok := scenes[cfg.Scene]; !ok {
		return nil, fmt.Errorf("unknown scene %q (want one of %s)", cfg.Scene, sceneNames())
	}
	return &cfg, nil
}

func (c *config) logLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
