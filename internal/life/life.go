// Package life implements Conway's Game of Life on a toroidal grid.
package life

import "life-drift/internal/core"

// Counts holds the live-neighbour count of every cell, row-major, in [0, 8].
type Counts struct {
	w, h int
	n    []uint8
}

// At returns the neighbour count at (x, y), wrapping out-of-range coordinates.
func (c Counts) At(x, y int) int {
	x = (x%c.w + c.w) % c.w
	y = (y%c.h + c.h) % c.h
	return int(c.n[y*c.w+x])
}

// Size returns the dimensions the counts were computed for.
func (c Counts) Size() core.Size { return core.Size{W: c.w, H: c.h} }

// CountAll counts the eight toroidal neighbours of every cell in g. The grid
// is only read.
func CountAll(g *core.Grid) Counts {
	w, h := g.Width(), g.Height()
	c := Counts{w: w, h: h, n: make([]uint8, w*h)}
	countInto(c.n, g.Cells(), w, h)
	return c
}

func countInto(dst, cells []uint8, w, h int) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := uint8(0)
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					nx := (x + dx + w) % w
					ny := (y + dy + h) % h
					neighbors += cells[ny*w+nx]
				}
			}
			dst[y*w+x] = neighbors
		}
	}
}

// NextState applies Conway's rule to a single cell.
func NextState(state uint8, neighbors int) uint8 {
	alive := state == core.Alive
	if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
		return core.Alive
	}
	return core.Dead
}

// Advance returns the grid for the following generation. g is not modified.
func Advance(g *core.Grid) *core.Grid {
	counts := CountAll(g)
	next := core.NewGrid(g.Width(), g.Height())
	apply(next.Cells(), g.Cells(), counts.n)
	return next
}

func apply(dst, cur, counts []uint8) {
	for i, state := range cur {
		dst[i] = NextState(state, int(counts[i]))
	}
}

// Life steps a grid in place using two alternating buffers, so repeated steps
// do not allocate. Neighbour counts for a generation are taken entirely from
// that generation before any cell transitions.
type Life struct {
	w, h   int
	cur    *core.Grid
	nxt    *core.Grid
	counts []uint8
	gen    int
}

// New returns a Life simulation starting from a copy of seed.
func New(seed *core.Grid) *Life {
	w, h := seed.Width(), seed.Height()
	return &Life{
		w:      w,
		h:      h,
		cur:    seed.Clone(),
		nxt:    core.NewGrid(w, h),
		counts: make([]uint8, w*h),
	}
}

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Grid returns the current generation. The buffer is reused by later steps;
// Clone it to keep a snapshot.
func (l *Life) Grid() *core.Grid { return l.cur }

// Generation returns how many steps have been applied.
func (l *Life) Generation() int { return l.gen }

// Step advances the simulation by one generation.
func (l *Life) Step() {
	countInto(l.counts, l.cur.Cells(), l.w, l.h)
	apply(l.nxt.Cells(), l.cur.Cells(), l.counts)
	l.cur, l.nxt = l.nxt, l.cur
	l.gen++
}
