// Package trajectory follows the centre of mass of a live pattern and
// estimates its drift velocity.
package trajectory

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"life-drift/internal/core"
)

// MaxExtent is the default bound on a pattern's bounding-box extent. A glider
// spans at most three cells per axis (extent 2); anything reaching MaxExtent is
// taken to be split across a grid edge.
const MaxExtent = 4

// Sample is the centroid of the live cells after a step.
type Sample struct {
	Step int
	X    float64
	Y    float64
}

// Tracker turns grid snapshots into trajectory samples.
type Tracker struct {
	// MaxExtent rejects frames whose bounding extent on either axis is at
	// least this large. Zero means the package default.
	MaxExtent int

	xs, ys []float64
}

// NewTracker returns a tracker using the default extent bound.
func NewTracker() *Tracker { return &Tracker{MaxExtent: MaxExtent} }

// Sample returns the centroid of the live cells in g, labelled with step. It
// reports false when no cell is alive or when the pattern is wrapping across
// an edge, since the centroid of a split pattern is meaningless.
func (t *Tracker) Sample(g *core.Grid, step int) (Sample, bool) {
	t.xs, t.ys = t.xs[:0], t.ys[:0]
	w := g.Width()
	for i, v := range g.Cells() {
		if v != core.Alive {
			continue
		}
		t.xs = append(t.xs, float64(i%w))
		t.ys = append(t.ys, float64(i/w))
	}
	if len(t.xs) == 0 {
		return Sample{}, false
	}

	limit := float64(t.limit())
	if floats.Max(t.xs)-floats.Min(t.xs) >= limit || floats.Max(t.ys)-floats.Min(t.ys) >= limit {
		return Sample{}, false
	}
	return Sample{Step: step, X: stat.Mean(t.xs, nil), Y: stat.Mean(t.ys, nil)}, true
}

func (t *Tracker) limit() int {
	if t.MaxExtent <= 0 {
		return MaxExtent
	}
	return t.MaxExtent
}
