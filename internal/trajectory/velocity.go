package trajectory

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// ErrInsufficientData reports a trajectory too short to fit a drift line.
var ErrInsufficientData = errors.New("insufficient trajectory data")

// Fit is a least-squares line through one axis of a trajectory window.
type Fit struct {
	// Start and End bound the window of samples used, End exclusive.
	Start, End int
	Slope      float64
	Intercept  float64
}

// At evaluates the fitted line at step.
func (f Fit) At(step float64) float64 { return f.Intercept + f.Slope*step }

// Velocity is the drift per step along each axis.
type Velocity struct {
	VX, VY float64
	FitX   Fit
	FitY   Fit
}

// EstimateVelocity fits a line of position against step on each axis,
// restricted to the leading monotonic window of that axis. The window ends at
// the first sample whose coordinate drops, which is where the pattern
// re-entered from the opposite edge.
func EstimateVelocity(samples []Sample) (Velocity, error) {
	if len(samples) < 2 {
		return Velocity{}, fmt.Errorf("%d samples: %w", len(samples), ErrInsufficientData)
	}
	steps := make([]float64, len(samples))
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		steps[i] = float64(s.Step)
		xs[i] = s.X
		ys[i] = s.Y
	}

	fx, err := fitAxis(steps, xs)
	if err != nil {
		return Velocity{}, fmt.Errorf("x axis: %w", err)
	}
	fy, err := fitAxis(steps, ys)
	if err != nil {
		return Velocity{}, fmt.Errorf("y axis: %w", err)
	}
	return Velocity{VX: fx.Slope, VY: fy.Slope, FitX: fx, FitY: fy}, nil
}

// MonotonicWindow returns the leading run [start, end) of values that never
// decreases. The scan is bounded by len(values).
func MonotonicWindow(values []float64) (start, end int) {
	if len(values) == 0 {
		return 0, 0
	}
	end = 1
	for end < len(values) && values[end] >= values[end-1] {
		end++
	}
	return 0, end
}

func fitAxis(steps, coords []float64) (Fit, error) {
	start, end := MonotonicWindow(coords)
	if end-start < 2 {
		return Fit{}, fmt.Errorf("monotonic window of %d samples: %w", end-start, ErrInsufficientData)
	}
	xs, ys := steps[start:end], coords[start:end]
	if xs[0] == xs[len(xs)-1] {
		return Fit{}, fmt.Errorf("window covers a single step: %w", ErrInsufficientData)
	}
	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	return Fit{Start: start, End: end, Slope: beta, Intercept: alpha}, nil
}
