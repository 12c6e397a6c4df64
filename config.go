package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
)

type Config struct {
	// Controls opens the GTK controls window next to the render window.
	Controls bool
	// Debug enables OpenGL debug output.
	Debug bool

	Save SaveOptions
}

func parseConfig(args []string, output io.Writer) (Config, error) {
	cfg := Config{}

	fs := flag.NewFlagSet("duofractal", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&cfg.Controls, "controls", false, "open the GTK controls window")
	fs.BoolVar(&cfg.Debug, "debug", false, "log OpenGL debug messages")
	fs.StringVar(&cfg.Save.Dir, "save-dir", ".", "directory snapshots are written to")
	fs.IntVar(&cfg.Save.Size, "save-size", 1920, "snapshot width and height in pixels")
	fs.Float64Var(&cfg.Save.Antialias, "save-antialias", 0.5, "antialiasing sample distance in pixels, 0 disables")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	if cfg.Save.Size <= 0 {
		return cfg, errors.New("snapshot size must be positive")
	}
	if cfg.Save.Antialias < 0 {
		return cfg, errors.New("antialias distance must not be negative")
	}

	return cfg, nil
}
