//go:build ebiten

package render

import (
	"image/color"

	"life-drift/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image based on binary cell data.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of the given size.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{w: size.W, h: size.H, buf: make([]byte, 4*size.W*size.H)}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int) {
	cells := g.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
