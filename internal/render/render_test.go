package render

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"life-drift/internal/core"
)

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{1, 0}
	buf := make([]byte, 8)
	fillBinaryRGBA(buf, cells, color.White, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	want := []byte{255, 255, 255, 255, 10, 20, 30, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("got %v, expected %v", buf, want)
	}
}

func TestTerminalDisplayFrame(t *testing.T) {
	g := core.NewGrid(3, 2)
	g.Set(0, 0, core.Alive)
	g.Set(2, 1, core.Alive)

	var out bytes.Buffer
	d := NewTerminalDisplay(&out, 0, false)
	if err := d.Show(g, 4); err != nil {
		t.Fatalf("show: %v", err)
	}
	want := "step 4  population 2\n" +
		"██    \n" +
		"    ██\n"
	if out.String() != want {
		t.Fatalf("frame = %q, expected %q", out.String(), want)
	}

	out.Reset()
	d = NewTerminalDisplay(&out, 0, true)
	if err := d.Show(g, 5); err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.HasPrefix(out.String(), clearScreen) {
		t.Fatal("clearing display should start with the clear sequence")
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestTerminalDisplayReportsWriteErrors(t *testing.T) {
	d := NewTerminalDisplay(failingWriter{}, 0, false)
	if err := d.Show(core.NewGrid(2, 2), 0); err == nil {
		t.Fatal("expected the write error to surface")
	}
}
