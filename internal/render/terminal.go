package render

import (
	"bufio"
	"fmt"
	"io"

	"life-drift/internal/core"
)

const clearScreen = "\x1b[H\x1b[2J"

// TerminalDisplay draws each step as text, two characters per cell.
type TerminalDisplay struct {
	w     *bufio.Writer
	pace  *core.FixedStep
	clear bool
}

// NewTerminalDisplay writes frames to w. A positive tps throttles output to
// that many frames per second; clear redraws in place using ANSI escapes.
func NewTerminalDisplay(w io.Writer, tps int, clear bool) *TerminalDisplay {
	d := &TerminalDisplay{w: bufio.NewWriter(w), clear: clear}
	if tps > 0 {
		d.pace = core.NewFixedStep(tps)
	}
	return d
}

// Show renders g. Write errors are returned to the caller.
func (d *TerminalDisplay) Show(g *core.Grid, step int) error {
	if d.pace != nil {
		d.pace.Wait()
	}
	if d.clear {
		d.w.WriteString(clearScreen)
	}
	fmt.Fprintf(d.w, "step %d  population %d\n", step, g.Population())
	w, h := g.Width(), g.Height()
	cells := g.Cells()
	for y := 0; y < h; y++ {
		for _, c := range cells[y*w : (y+1)*w] {
			if c == core.Alive {
				d.w.WriteString("██")
			} else {
				d.w.WriteString("  ")
			}
		}
		d.w.WriteByte('\n')
	}
	return d.w.Flush()
}
