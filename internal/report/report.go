// Package report prints and plots the outcome of a run.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"life-drift/internal/sim"
	"life-drift/internal/trajectory"
)

// Print writes a human-readable summary of res. v and verr are the result of
// res.Velocity(); they are ignored for runs that do not track a trajectory.
func Print(w io.Writer, res sim.Result, v trajectory.Velocity, verr error) error {
	cfg := res.Config
	if _, err := fmt.Fprintf(w, "run %s: %dx%d %s, %d steps, final population %d\n",
		res.ID, cfg.Width, cfg.Height, cfg.Pattern, res.Steps, res.Population); err != nil {
		return err
	}
	if res.DisplayFaults > 0 {
		fmt.Fprintf(w, "display failed on %d steps\n", res.DisplayFaults)
	}
	if !cfg.Tracks() {
		return nil
	}
	if res.SinkErr != nil {
		fmt.Fprintf(w, "trajectory log incomplete: %v\n", res.SinkErr)
	}
	fmt.Fprintf(w, "recorded %d trajectory samples\n", len(res.Samples))
	if verr != nil {
		_, err := fmt.Fprintf(w, "velocity unavailable: %v\n", verr)
		return err
	}
	fmt.Fprintf(w, "glider's speed along the x-axis: %g\n", v.VX)
	_, err := fmt.Fprintf(w, "glider's speed along the y-axis: %g\n", v.VY)
	return err
}

var (
	xColor = drawing.Color{R: 31, G: 119, B: 180, A: 255}
	yColor = drawing.Color{R: 255, G: 127, B: 14, A: 255}
)

// Plot renders the centre-of-mass trajectory as a PNG, with time measured in
// sweeps of the grid. When fit is non-nil the fitted drift lines are drawn
// over their windows.
func Plot(w io.Writer, res sim.Result, fit *trajectory.Velocity) error {
	if len(res.Samples) < 2 {
		return fmt.Errorf("plot needs at least 2 samples, got %d: %w", len(res.Samples), trajectory.ErrInsufficientData)
	}
	sweep := float64(res.Config.Width * res.Config.Height)
	ts := make([]float64, len(res.Samples))
	xs := make([]float64, len(res.Samples))
	ys := make([]float64, len(res.Samples))
	for i, s := range res.Samples {
		ts[i] = float64(s.Step) / sweep
		xs[i] = s.X
		ys[i] = s.Y
	}

	series := []chart.Series{
		chart.ContinuousSeries{
			Name:    "x",
			XValues: ts,
			YValues: xs,
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 2, DotColor: xColor},
		},
		chart.ContinuousSeries{
			Name:    "y",
			XValues: ts,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 2, DotColor: yColor},
		},
	}
	if fit != nil {
		series = append(series,
			fitSeries("x fit", res.Samples, fit.FitX, sweep, xColor),
			fitSeries("y fit", res.Samples, fit.FitY, sweep, yColor),
		)
	}

	graph := chart.Chart{
		Title:  fmt.Sprintf("%s %dx%d (run %s)", res.Config.Pattern, res.Config.Width, res.Config.Height, res.ID),
		Width:  800,
		Height: 480,
		XAxis: chart.XAxis{
			Name:  "time (sweeps)",
			Style: chart.Style{FontSize: 10.0},
		},
		YAxis: chart.YAxis{
			Name:  "centre of mass",
			Style: chart.Style{FontSize: 10.0},
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	return graph.Render(chart.PNG, w)
}

func fitSeries(name string, samples []trajectory.Sample, f trajectory.Fit, sweep float64, c drawing.Color) chart.Series {
	first := float64(samples[f.Start].Step)
	last := float64(samples[f.End-1].Step)
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{first / sweep, last / sweep},
		YValues: []float64{f.At(first), f.At(last)},
		Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: c},
	}
}

// PlotFile writes the chart produced by Plot to path.
func PlotFile(path string, res sim.Result, fit *trajectory.Velocity) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Plot(f, res, fit); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
