package runner

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/abelmx/affirm/packages/check"
	"github.com/abelmx/affirm/packages/marker"
	"github.com/google/uuid"
)

type Config struct {
	Bail       bool
	NameFilter string
	Verbose    bool
}

type Runner struct {
	config *Config
}

func NewRunner(cfg *Config) *Runner {
	if cfg == nil {
		cfg = &Config{}
	}
	return &Runner{config: cfg}
}

type RunResult struct {
	ID        string
	Suite     string
	Results   []*RoutineResult
	StartedAt time.Time
	Duration  time.Duration
	Passed    int
	Failed    int
	Skipped   int
	Stats     *Stats
}

type RoutineResult struct {
	Name       string
	Passed     bool
	Skipped    bool
	SkipReason string
	XFail      bool
	Duration   time.Duration
	Failure    *check.Failure
}

// Stats summarizes routine durations for the run.
type Stats struct {
	P50 time.Duration
	P95 time.Duration
	P99 time.Duration
	Max time.Duration
}

// Run executes the suite's routines in registration order. It returns
// an error only for configuration problems; assertion failures are
// reported inside the RunResult.
func (r *Runner) Run(suite *Suite) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{
		ID:        uuid.New().String(),
		Suite:     suite.Name,
		StartedAt: start,
	}

	// Durations in microseconds, 1us to 60s, 3 significant digits.
	hist := hdrhistogram.New(1, 60_000_000, 3)

	for _, rt := range suite.routines {
		name := rt.Name
		if suite.markers != nil {
			if display, ok := suite.markers.Payload(rt.Name, marker.Name); ok {
				name = display
			}
		}

		if r.config.NameFilter != "" && !strings.Contains(name, r.config.NameFilter) {
			result.Results = append(result.Results, &RoutineResult{
				Name:       name,
				Skipped:    true,
				SkipReason: "filtered out",
			})
			result.Skipped++
			continue
		}

		if suite.markers != nil && suite.markers.Has(rt.Name, marker.Skip) {
			reason, _ := suite.markers.Payload(rt.Name, marker.Skip)
			if reason == "" {
				reason = "skipped"
			}
			result.Results = append(result.Results, &RoutineResult{
				Name:       name,
				Skipped:    true,
				SkipReason: reason,
			})
			result.Skipped++
			continue
		}

		rr, err := r.runRoutine(name, rt, suite.markers)
		if err != nil {
			return nil, err
		}
		recordDuration(hist, rr.Duration)

		result.Results = append(result.Results, rr)
		if rr.Passed {
			result.Passed++
		} else {
			result.Failed++
		}

		if r.config.Bail && !rr.Passed {
			break
		}
	}

	result.Duration = time.Since(start)
	result.Stats = &Stats{
		P50: time.Duration(hist.ValueAtQuantile(50)) * time.Microsecond,
		P95: time.Duration(hist.ValueAtQuantile(95)) * time.Microsecond,
		P99: time.Duration(hist.ValueAtQuantile(99)) * time.Microsecond,
		Max: time.Duration(hist.Max()) * time.Microsecond,
	}
	return result, nil
}

func (r *Runner) runRoutine(name string, rt Routine, markers *marker.Table) (*RoutineResult, error) {
	start := time.Now()
	err := rt.Fn()
	rr := &RoutineResult{
		Name:     name,
		Duration: time.Since(start),
	}

	var failure *check.Failure
	if err != nil && !errors.As(err, &failure) {
		// Configuration errors must surface, never be counted as a
		// failed check.
		return nil, fmt.Errorf("routine %s: %w", name, err)
	}

	xfail := markers != nil && markers.Has(rt.Name, marker.XFail)
	rr.XFail = xfail

	switch {
	case xfail && failure != nil:
		rr.Passed = true
	case xfail && failure == nil:
		rr.Failure = check.NewFailure([]string{"routine was expected to fail but passed"})
	case failure != nil:
		rr.Failure = failure
	default:
		rr.Passed = true
	}
	return rr, nil
}

func recordDuration(hist *hdrhistogram.Histogram, d time.Duration) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	if us > 60_000_000 {
		us = 60_000_000
	}
	_ = hist.RecordValue(us)
}
