package sim

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"life-drift/internal/pattern"
)

// ErrInvalidConfig reports a configuration that cannot start a run.
var ErrInvalidConfig = errors.New("invalid config")

// SweepsPerRun is the default run length in sweeps; one sweep is as many
// steps as the grid has cells.
const SweepsPerRun = 100

// Config describes a single simulation run. It is fixed once the run starts.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Animate bool

	// Steps is the run length; zero selects SweepsPerRun sweeps.
	Steps int
	Seed  int64

	// Display settings for animated runs.
	TPS   int
	Scale int

	// LogPath receives the glider trajectory; empty selects a timestamped
	// name. PlotPath, when set, receives a PNG chart of the trajectory.
	LogPath  string
	PlotPath string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   50,
		Height:  50,
		Pattern: pattern.NameGlider,
		Seed:    42,
		TPS:     30,
		Scale:   8,
	}
}

// TotalSteps returns the number of steps the run will execute.
func (c Config) TotalSteps() int {
	if c.Steps > 0 {
		return c.Steps
	}
	return SweepsPerRun * c.Width * c.Height
}

// Tracks reports whether the run records a trajectory.
func (c Config) Tracks() bool { return c.Pattern == pattern.NameGlider }

// Validate checks that the configuration can seed a run.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if !pattern.Known(c.Pattern) {
		return fmt.Errorf("%w: pattern %q not one of %s", ErrInvalidConfig, c.Pattern, strings.Join(pattern.Names(), ", "))
	}
	if c.Steps < 0 {
		return fmt.Errorf("%w: negative step count %d", ErrInvalidConfig, c.Steps)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width")
	fs.IntVar(&c.Height, "h", c.Height, "grid height")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: "+strings.Join(pattern.Names(), ", "))
	fs.BoolVar(&c.Animate, "animate", c.Animate, "display every step")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps to simulate (0 = 100 sweeps)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random patterns")
	fs.IntVar(&c.TPS, "tps", c.TPS, "animation steps per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "trajectory log path (default glider_<timestamp>)")
	fs.StringVar(&c.PlotPath, "plot", c.PlotPath, "write a PNG trajectory chart to this path")
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparsable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && pattern.Known(v) {
		c.Pattern = v
	}
	if v, ok := cfg["animate"]; ok {
		if parsed, err := parseBool(v); err == nil {
			c.Animate = parsed
		}
	}
	if v, ok := cfg["steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Steps = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// fileConfig mirrors the JSON input file.
type fileConfig struct {
	Width   *int      `json:"x dimension"`
	Height  *int      `json:"y dimension"`
	Pattern *string   `json:"system type"`
	Animate *flexBool `json:"create animation"`
	Steps   *int      `json:"steps"`
	Seed    *int64    `json:"seed"`
}

// LoadFile reads a JSON configuration such as
//
//	{"x dimension": 50, "y dimension": 50, "system type": "glider", "create animation": "False"}
//
// on top of base. Keys absent from the file keep the base values.
func LoadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, err
	}
	return Parse(data, base)
}

// Parse decodes a JSON configuration on top of base.
func Parse(data []byte, base Config) (Config, error) {
	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return base, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c := base
	if fc.Width != nil {
		c.Width = *fc.Width
	}
	if fc.Height != nil {
		c.Height = *fc.Height
	}
	if fc.Pattern != nil {
		c.Pattern = *fc.Pattern
	}
	if fc.Animate != nil {
		c.Animate = bool(*fc.Animate)
	}
	if fc.Steps != nil {
		c.Steps = *fc.Steps
	}
	if fc.Seed != nil {
		c.Seed = *fc.Seed
	}
	return c, nil
}

// flexBool accepts JSON booleans as well as "True"/"False" style strings.
type flexBool bool

func (b *flexBool) UnmarshalJSON(data []byte) error {
	var v bool
	if err := json.Unmarshal(data, &v); err == nil {
		*b = flexBool(v)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("create animation: expected bool or string, got %s", data)
	}
	v, err := parseBool(s)
	if err != nil {
		return fmt.Errorf("create animation: %w", err)
	}
	*b = flexBool(v)
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes":
		return true, nil
	case "false", "0", "no":
		return false, nil
	}
	return false, fmt.Errorf("not a boolean: %q", s)
}
