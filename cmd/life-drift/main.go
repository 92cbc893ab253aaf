package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"life-drift/internal/app"
	"life-drift/internal/render"
	"life-drift/internal/report"
	"life-drift/internal/sim"
	"life-drift/internal/trajectory"
)

type options struct {
	cfg        sim.Config
	configPath string
	analyze    string
}

// parseArgs applies defaults, then the optional -config file, then any
// explicit flags, so flags always win over the file.
func parseArgs(args []string, stderr io.Writer) (options, error) {
	var opts options
	bind := func(cfg *sim.Config) *flag.FlagSet {
		fs := flag.NewFlagSet("life-drift", flag.ContinueOnError)
		fs.SetOutput(stderr)
		fs.StringVar(&opts.configPath, "config", opts.configPath, "JSON input file with x dimension, y dimension, system type and create animation")
		fs.StringVar(&opts.analyze, "analyze", opts.analyze, "estimate the velocity recorded in an existing trajectory log and exit")
		cfg.Bind(fs)
		return fs
	}

	opts.cfg = sim.DefaultConfig()
	if err := bind(&opts.cfg).Parse(args); err != nil {
		return opts, err
	}
	if opts.configPath == "" {
		return opts, nil
	}

	loaded, err := sim.LoadFile(opts.configPath, sim.DefaultConfig())
	if err != nil {
		return opts, fmt.Errorf("load %s: %w", opts.configPath, err)
	}
	opts.cfg = loaded
	fs := bind(&opts.cfg)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	return opts, nil
}

func main() {
	log.SetFlags(0)
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatal(err)
	}

	if opts.analyze != "" {
		if err := analyze(os.Stdout, opts.analyze); err != nil {
			log.Fatal(err)
		}
		return
	}
	if err := simulate(opts.cfg); err != nil {
		log.Fatal(err)
	}
}

func simulate(cfg sim.Config) error {
	log.Printf("creating a %d x %d %s system...", cfg.Width, cfg.Height, cfg.Pattern)

	var runOpts []sim.Option
	if cfg.Tracks() {
		path := cfg.LogPath
		if path == "" {
			path = trajectory.DefaultLogName(time.Now())
		}
		sink, err := trajectory.CreateLog(path)
		if err != nil {
			return err
		}
		defer sink.Close()
		log.Printf("writing the glider trajectory to %s", path)
		runOpts = append(runOpts, sim.WithTrajectorySink(sink))
	}
	windowed := cfg.Animate && app.Available
	if cfg.Animate && !windowed {
		runOpts = append(runOpts, sim.WithDisplay(render.NewTerminalDisplay(os.Stdout, cfg.TPS, true)))
	}

	run, err := sim.NewRun(cfg, runOpts...)
	if err != nil {
		return err
	}

	log.Printf("running the simulation for %d steps...", run.Total())
	if windowed {
		if err := app.Play(run, cfg.Scale, cfg.TPS); err != nil {
			return err
		}
	} else {
		run.Execute()
	}

	res := run.Result()
	if !run.Done() {
		log.Printf("stopped early after %d of %d steps", res.Steps, run.Total())
	}
	var v trajectory.Velocity
	var verr error
	if cfg.Tracks() {
		v, verr = res.Velocity()
	}
	if err := report.Print(os.Stdout, res, v, verr); err != nil {
		return err
	}

	if cfg.PlotPath != "" && cfg.Tracks() {
		var fit *trajectory.Velocity
		if verr == nil {
			fit = &v
		}
		if err := report.PlotFile(cfg.PlotPath, res, fit); err != nil {
			log.Printf("plot: %v", err)
		} else {
			log.Printf("trajectory chart written to %s", cfg.PlotPath)
		}
	}
	return nil
}

func analyze(w io.Writer, path string) error {
	samples, err := trajectory.ReadLogFile(path)
	if err != nil {
		return err
	}
	v, err := trajectory.EstimateVelocity(samples)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	fmt.Fprintf(w, "%d samples, fitted over steps %d-%d (x) and %d-%d (y)\n", len(samples),
		samples[v.FitX.Start].Step, samples[v.FitX.End-1].Step,
		samples[v.FitY.Start].Step, samples[v.FitY.End-1].Step)
	fmt.Fprintf(w, "glider's speed along the x-axis: %g\n", v.VX)
	fmt.Fprintf(w, "glider's speed along the y-axis: %g\n", v.VY)
	return nil
}
