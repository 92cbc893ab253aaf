package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultLogName names a trajectory log after the moment the run started.
func DefaultLogName(t time.Time) string {
	return "glider_" + t.Format("2006-01-02-15-04-05")
}

// LogWriter appends samples as whitespace-separated "step x y" lines.
type LogWriter struct {
	w io.Writer
	c io.Closer
}

// NewLogWriter writes samples to w.
func NewLogWriter(w io.Writer) *LogWriter { return &LogWriter{w: w} }

// CreateLog opens path for appending, creating it if needed.
func CreateLog(path string) (*LogWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trajectory log: %w", err)
	}
	return &LogWriter{w: f, c: f}, nil
}

// Record appends a single sample.
func (l *LogWriter) Record(s Sample) error {
	line := strconv.Itoa(s.Step) + " " +
		strconv.FormatFloat(s.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(s.Y, 'g', -1, 64) + "\n"
	_, err := io.WriteString(l.w, line)
	return err
}

// Close closes the underlying file when the writer owns one.
func (l *LogWriter) Close() error {
	if l.c == nil {
		return nil
	}
	return l.c.Close()
}

// ReadLog parses a log written by LogWriter. Blank lines are ignored.
func ReadLog(r io.Reader) ([]Sample, error) {
	var samples []Sample
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: expected 3 fields, got %d", line, len(fields))
		}
		step, err := parseStep(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: step: %w", line, err)
		}
		x, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: x: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: y: %w", line, err)
		}
		samples = append(samples, Sample{Step: step, X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

// ReadLogFile parses the log stored at path.
func ReadLogFile(path string) ([]Sample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLog(f)
}

// parseStep accepts integral steps written either as integers or as floats
// such as "12.0".
func parseStep(s string) (int, error) {
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative step %d", n)
		}
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f < 0 || f != float64(int(f)) {
		return 0, fmt.Errorf("step %q is not a non-negative integer", s)
	}
	return int(f), nil
}
