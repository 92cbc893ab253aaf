// Package pattern builds the initial grids a run can start from.
package pattern

import (
	"errors"
	"fmt"
	"sort"

	"life-drift/internal/core"
)

var (
	// ErrInvalidDimensions reports a grid too small for the requested pattern.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrUnknownPattern reports a pattern name with no registered seeder.
	ErrUnknownPattern = errors.New("unknown pattern")
)

// Pattern names accepted by New.
const (
	NameRandom     = "random"
	NameOscillator = "oscillator"
	NameGlider     = "glider"
)

// Seeder constructs an initial grid of the given dimensions.
type Seeder func(w, h int, seed int64) (*core.Grid, error)

var seeders = map[string]Seeder{
	NameRandom: Random,
	NameOscillator: func(w, h int, _ int64) (*core.Grid, error) {
		return Oscillator(w, h)
	},
	NameGlider: func(w, h int, _ int64) (*core.Grid, error) {
		return Glider(w, h)
	},
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Known reports whether name is a registered pattern.
func Known(name string) bool {
	_, ok := seeders[name]
	return ok
}

// New seeds a grid using the named pattern. The seed only affects random grids.
func New(name string, w, h int, seed int64) (*core.Grid, error) {
	s, ok := seeders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPattern, name)
	}
	return s(w, h, seed)
}

// Random sets every cell independently alive or dead with probability 0.5.
func Random(w, h int, seed int64) (*core.Grid, error) {
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("random pattern needs at least 1x1, got %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	g := core.NewGrid(w, h)
	core.NewRNG(seed).FillBinary(g)
	return g, nil
}

// Oscillator places a vertical three-cell blinker at the grid centre.
func Oscillator(w, h int) (*core.Grid, error) {
	if w <= 3 || h <= 3 {
		return nil, fmt.Errorf("oscillator needs a grid larger than 3x3, got %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	g := core.NewGrid(w, h)
	cx, cy := w/2, h/2
	g.Set(cx, cy-1, core.Alive)
	g.Set(cx, cy, core.Alive)
	g.Set(cx, cy+1, core.Alive)
	return g, nil
}

// gliderOffsets are (dx, dy) offsets from the centre of a south-east glider.
var gliderOffsets = [5]core.Point{
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Glider places a five-cell glider travelling towards +x,+y at the grid centre.
func Glider(w, h int) (*core.Grid, error) {
	if w <= 4 || h <= 4 {
		return nil, fmt.Errorf("glider needs a grid larger than 4x4, got %dx%d: %w", w, h, ErrInvalidDimensions)
	}
	g := core.NewGrid(w, h)
	cx, cy := w/2, h/2
	for _, o := range gliderOffsets {
		g.Set(cx+o.X, cy+o.Y, core.Alive)
	}
	return g, nil
}
