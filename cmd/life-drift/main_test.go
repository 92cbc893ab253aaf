package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"life-drift/internal/trajectory"
)

func TestParseArgsFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input_gol.dat")
	data := `{"x dimension": 30, "y dimension": 40, "system type": "oscillator", "create animation": "True"}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	opts, err := parseArgs([]string{"-config", path, "-h", "12", "-steps", "9"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := opts.cfg
	if cfg.Width != 30 || cfg.Height != 12 || cfg.Pattern != "oscillator" || !cfg.Animate || cfg.Steps != 9 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestParseArgsDefaults(t *testing.T) {
	opts, err := parseArgs(nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if opts.cfg.Width != 50 || opts.cfg.Pattern != "glider" || opts.configPath != "" {
		t.Fatalf("unexpected options %+v", opts)
	}
	if _, err := parseArgs([]string{"-config", filepath.Join(t.TempDir(), "missing")}, io.Discard); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestSimulateWritesLog(t *testing.T) {
	dir := t.TempDir()
	opts, err := parseArgs([]string{
		"-w", "12", "-h", "12", "-steps", "60",
		"-log", filepath.Join(dir, "glider.dat"),
	}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := simulate(opts.cfg); err != nil {
		t.Fatalf("simulate: %v", err)
	}
	samples, err := trajectory.ReadLogFile(filepath.Join(dir, "glider.dat"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(samples) == 0 {
		t.Fatal("expected trajectory samples in the log")
	}

	var out bytes.Buffer
	if err := analyze(&out, filepath.Join(dir, "glider.dat")); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if !strings.Contains(out.String(), "glider's speed along the x-axis: ") {
		t.Fatalf("unexpected analysis output:\n%s", out.String())
	}
}

func TestAnalyzeShortLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.dat")
	if err := os.WriteFile(path, []byte("0 1 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := analyze(io.Discard, path); !errors.Is(err, trajectory.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
