package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"life-drift/internal/sim"
	"life-drift/internal/trajectory"
)

func gliderResult() sim.Result {
	cfg := sim.DefaultConfig()
	cfg.Width, cfg.Height = 10, 10
	cfg.Steps = 6
	return sim.Result{
		ID:         "test",
		Config:     cfg,
		Steps:      6,
		Population: 5,
		Samples: []trajectory.Sample{
			{Step: 0, X: 5.2, Y: 5.8},
			{Step: 1, X: 5.4, Y: 6.2},
			{Step: 2, X: 5.8, Y: 6.2},
			{Step: 3, X: 6.2, Y: 6.4},
			{Step: 4, X: 6.2, Y: 6.8},
		},
	}
}

func TestPrintVelocity(t *testing.T) {
	res := gliderResult()
	v, err := res.Velocity()
	if err != nil {
		t.Fatalf("velocity: %v", err)
	}
	var buf bytes.Buffer
	if err := Print(&buf, res, v, nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"run test: 10x10 glider, 6 steps, final population 5",
		"recorded 5 trajectory samples",
		"glider's speed along the x-axis: ",
		"glider's speed along the y-axis: ",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintVelocityError(t *testing.T) {
	res := gliderResult()
	res.Samples = nil
	res.SinkErr = errors.New("disk full")
	_, verr := res.Velocity()
	var buf bytes.Buffer
	if err := Print(&buf, res, trajectory.Velocity{}, verr); err != nil {
		t.Fatalf("print: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "velocity unavailable") || !strings.Contains(out, "disk full") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestPrintUntrackedRun(t *testing.T) {
	res := gliderResult()
	res.Config.Pattern = "random"
	var buf bytes.Buffer
	if err := Print(&buf, res, trajectory.Velocity{}, nil); err != nil {
		t.Fatalf("print: %v", err)
	}
	if strings.Contains(buf.String(), "speed") {
		t.Fatalf("untracked runs should not report a speed:\n%s", buf.String())
	}
}

func TestPlotFileWritesPNG(t *testing.T) {
	res := gliderResult()
	v, err := res.Velocity()
	if err != nil {
		t.Fatalf("velocity: %v", err)
	}
	path := filepath.Join(t.TempDir(), "trajectory.png")
	if err := PlotFile(path, res, &v); err != nil {
		t.Fatalf("plot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Fatal("plot output is not a PNG")
	}
}

func TestPlotNeedsSamples(t *testing.T) {
	res := gliderResult()
	res.Samples = res.Samples[:1]
	if err := Plot(&bytes.Buffer{}, res, nil); !errors.Is(err, trajectory.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
