// Package sim drives a Game of Life run: seeding, stepping, trajectory
// sampling, and handing snapshots to display and trajectory sinks.
package sim

import (
	"log"

	"github.com/google/uuid"

	"life-drift/internal/core"
	"life-drift/internal/life"
	"life-drift/internal/pattern"
	"life-drift/internal/trajectory"
)

// DisplaySink receives the grid after every step. Errors are logged and do
// not stop the run.
type DisplaySink interface {
	Show(g *core.Grid, step int) error
}

// TrajectorySink receives every recorded trajectory sample in step order.
// Errors are logged and do not stop the run.
type TrajectorySink interface {
	Record(s trajectory.Sample) error
}

// Option customises a Run.
type Option func(*Run)

// WithDisplay sends each step's grid to d.
func WithDisplay(d DisplaySink) Option { return func(r *Run) { r.display = d } }

// WithTrajectorySink appends recorded samples to s.
func WithTrajectorySink(s TrajectorySink) Option { return func(r *Run) { r.sink = s } }

// WithLogger replaces the logger used for sink failures.
func WithLogger(l *log.Logger) Option { return func(r *Run) { r.logger = l } }

// Run owns the grid of a single simulation. It is not safe for concurrent use.
type Run struct {
	id      string
	cfg     Config
	life    *life.Life
	tracker *trajectory.Tracker
	samples []trajectory.Sample

	display DisplaySink
	sink    TrajectorySink
	logger  *log.Logger

	step  int
	total int

	sinkErr       error
	displayErr    error
	displayFaults int
}

// NewRun validates cfg and seeds the initial grid.
func NewRun(cfg Config, opts ...Option) (*Run, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed, err := pattern.New(cfg.Pattern, cfg.Width, cfg.Height, cfg.Seed)
	if err != nil {
		return nil, err
	}
	r := &Run{
		id:      uuid.NewString(),
		cfg:     cfg,
		life:    life.New(seed),
		tracker: trajectory.NewTracker(),
		total:   cfg.TotalSteps(),
		logger:  log.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// ID returns the unique identifier of the run.
func (r *Run) ID() string { return r.id }

// Config returns the configuration the run was created with.
func (r *Run) Config() Config { return r.cfg }

// Grid returns the current generation. The buffer is reused by later steps.
func (r *Run) Grid() *core.Grid { return r.life.Grid() }

// Steps returns how many steps have completed.
func (r *Run) Steps() int { return r.step }

// Total returns the number of steps the run will execute.
func (r *Run) Total() int { return r.total }

// Done reports whether every step has been executed.
func (r *Run) Done() bool { return r.step >= r.total }

// Samples returns the trajectory recorded so far.
func (r *Run) Samples() []trajectory.Sample { return r.samples }

// Step advances one generation, shows it, and samples the trajectory. It
// reports false without stepping once the run is complete.
func (r *Run) Step() bool {
	if r.Done() {
		return false
	}
	i := r.step
	r.life.Step()
	r.step++

	g := r.life.Grid()
	if r.display != nil {
		if err := r.display.Show(g, i); err != nil {
			r.displayFault(err)
		}
	}
	if r.cfg.Tracks() {
		if s, ok := r.tracker.Sample(g, i); ok {
			r.samples = append(r.samples, s)
			if r.sink != nil {
				if err := r.sink.Record(s); err != nil && r.sinkErr == nil {
					r.sinkErr = err
					r.logger.Printf("run %s: trajectory sink failed at step %d: %v", r.id, i, err)
				}
			}
		}
	}
	return true
}

func (r *Run) displayFault(err error) {
	r.displayFaults++
	if r.displayErr == nil {
		r.displayErr = err
		r.logger.Printf("run %s: display failed: %v", r.id, err)
	}
}

// Execute runs every remaining step and returns the result.
func (r *Run) Execute() Result {
	for r.Step() {
	}
	return r.Result()
}

// Result summarises the run so far.
func (r *Run) Result() Result {
	return Result{
		ID:            r.id,
		Config:        r.cfg,
		Steps:         r.step,
		Population:    r.life.Grid().Population(),
		Samples:       r.samples,
		SinkErr:       r.sinkErr,
		DisplayFaults: r.displayFaults,
	}
}

// Result is the outcome of a run.
type Result struct {
	ID         string
	Config     Config
	Steps      int
	Population int
	Samples    []trajectory.Sample

	// SinkErr is the first trajectory sink failure, if any.
	SinkErr error
	// DisplayFaults counts steps whose display failed.
	DisplayFaults int
}

// Velocity estimates the drift of the tracked pattern.
func (res Result) Velocity() (trajectory.Velocity, error) {
	return trajectory.EstimateVelocity(res.Samples)
}
