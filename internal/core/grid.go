package core

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

// Grid stores a toroidal 2D grid of binary cell states in row-major order.
// Its dimensions are fixed at construction.
type Grid struct {
	w, h int
	data []uint8
}

// NewGrid allocates an all-dead grid with the given dimensions. Dimensions
// below one are clamped to one.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{w: w, h: h, data: make([]uint8, w*h)}
}

// Size returns the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.w, H: g.h} }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Cells exposes the backing slice for renderers. Callers must not write
// values other than Dead or Alive.
func (g *Grid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for in-range coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.w + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.w + g.w) % g.w
	y = (y%g.h + g.h) % g.h
	return x, y
}

// Get returns the state at (x, y), wrapping out-of-range coordinates.
func (g *Grid) Get(x, y int) uint8 {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores state at (x, y), wrapping out-of-range coordinates. Any non-zero
// state is stored as Alive.
func (g *Grid) Set(x, y int, state uint8) {
	x, y = g.Wrap(x, y)
	if state != Dead {
		state = Alive
	}
	g.data[g.Index(x, y)] = state
}

// Clear fills the grid with dead cells.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{w: g.w, h: g.h, data: make([]uint8, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g.w != o.w || g.h != o.h {
		return false
	}
	for i, v := range g.data {
		if o.data[i] != v {
			return false
		}
	}
	return true
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.data {
		if v == Alive {
			n++
		}
	}
	return n
}

// LiveCells returns the coordinates of every live cell in row-major order.
func (g *Grid) LiveCells() []Point {
	var pts []Point
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			if g.data[y*g.w+x] == Alive {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}
