//go:build ebiten

package app

import (
	"errors"
	"fmt"
	"image/color"

	"life-drift/internal/render"
	"life-drift/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Available reports whether this build can open a window.
const Available = true

// Game adapts a simulation run to the ebiten.Game interface. Each tick
// advances the run by one step.
type Game struct {
	run     *sim.Run
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
}

// New constructs a Game for the provided run.
func New(run *sim.Run, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		run:      run,
		painter:  render.NewGridPainter(run.Grid().Size()),
		onColor:  render.AliveColor,
		offColor: render.DeadColor,
		scale:    scale,
		showHUD:  true,
	}
}

// Update handles per-frame input and advances the run.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}

	if !g.paused || g.tickOnce {
		g.tickOnce = false
		if !g.run.Step() {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current generation and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.run.Grid(), g.onColor, g.offColor, g.scale)
	if !g.showHUD {
		return
	}
	status := fmt.Sprintf("step %d/%d  pop %d", g.run.Steps(), g.run.Total(), g.run.Grid().Population())
	if samples := g.run.Samples(); len(samples) > 0 {
		last := samples[len(samples)-1]
		status += fmt.Sprintf("\ncom (%.2f, %.2f)", last.X, last.Y)
	}
	if g.paused {
		status += "\npaused"
	}
	text.Draw(screen, status, basicfont.Face7x13, 4, 14, color.White)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.run.Grid().Size()
	return s.W * g.scale, s.H * g.scale
}

// Play opens a window and drives run until it completes or the window is
// closed.
func Play(run *sim.Run, scale, tps int) error {
	game := New(run, scale)
	size := run.Grid().Size()

	ebiten.SetWindowTitle("life-drift: " + run.Config().Pattern)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(size.W*game.scale, size.H*game.scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
