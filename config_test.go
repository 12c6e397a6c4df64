package main

import (
	"errors"
	"flag"
	"io"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Controls || cfg.Debug {
		t.Errorf("optional features enabled by default: %+v", cfg)
	}
	if cfg.Save.Dir != "." || cfg.Save.Size != 1920 || cfg.Save.Antialias != 0.5 {
		t.Errorf("save options = %+v", cfg.Save)
	}
}

func TestParseConfigFlags(t *testing.T) {
	cfg, err := parseConfig([]string{
		"-controls",
		"-debug",
		"-save-dir", "/tmp/shots",
		"-save-size", "512",
		"-save-antialias", "0",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}

	want := Config{
		Controls: true,
		Debug:    true,
		Save:     SaveOptions{Dir: "/tmp/shots", Size: 512, Antialias: 0},
	}
	if cfg != want {
		t.Fatalf("config = %+v, want %+v", cfg, want)
	}
}

func TestParseConfigErrors(t *testing.T) {
	cases := map[string][]string{
		"zero size":          {"-save-size", "0"},
		"negative size":      {"-save-size", "-5"},
		"negative antialias": {"-save-antialias", "-1"},
		"stray argument":     {"extra"},
		"unknown flag":       {"-fullscreen"},
	}
	for name, args := range cases {
		if _, err := parseConfig(args, io.Discard); err == nil {
			t.Errorf("%s: parseConfig(%q) succeeded", name, args)
		}
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
}

func TestRunBadFlags(t *testing.T) {
	if code := run([]string{"-save-size", "0"}, io.Discard); code != 2 {
		t.Fatalf("exit code = %v, want 2", code)
	}
	if code := run([]string{"-h"}, io.Discard); code != 0 {
		t.Fatalf("help exit code = %v, want 0", code)
	}
}
