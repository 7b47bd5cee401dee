// Package sim runs headless climber sessions driven by the autopilot.
// It is used for balance checks and for reproducing a seed without a terminal.
package sim

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/logging"
)

// Options configures a batch of headless runs.
type Options struct {
	Seed     int64 // Run i uses Seed+i
	Runs     int
	MaxTicks int   // A run still alive after this many ticks is quit
	TickMs   int64 // Fixed tick length
	Logger   *log.Logger
}

// DefaultOptions returns a single five-minute run at 60 ticks per second.
func DefaultOptions() Options {
	return Options{
		Seed:     1,
		Runs:     1,
		MaxTicks: 5 * 60 * 60,
		TickMs:   16,
	}
}

// Recorder receives every finished run.
type Recorder interface {
	Record(stats climber.RunStats) error
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(stats climber.RunStats) error

// Record calls f.
func (f RecorderFunc) Record(stats climber.RunStats) error { return f(stats) }

// Run plays opts.Runs sessions back to back and returns their stats.
// The recorder may be nil. Cancelling ctx stops between ticks.
func Run(ctx context.Context, cfg config.ClimberConfig, opts Options, rec Recorder) ([]climber.RunStats, error) {
	if opts.Runs <= 0 {
		return nil, fmt.Errorf("sim: runs must be positive, got %d", opts.Runs)
	}
	if opts.TickMs <= 0 {
		return nil, fmt.Errorf("sim: tick must be positive, got %d", opts.TickMs)
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	restart := false
	engine := climber.NewEngine(cfg, opts.Seed,
		climber.WithLogger(logger),
		climber.WithRestarter(climber.RestartFunc(func() { restart = true })),
	)
	clock := &core.ManualClock{}

	results := make([]climber.RunStats, 0, opts.Runs)
	for i := range opts.Runs {
		if i > 0 {
			engine.RestartWithSeed(opts.Seed + int64(i))
		}
		restart = false
		pilot := climber.NewAutopilot(cfg, opts.TickMs)

		for tick := 0; !restart; tick++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			if tick >= opts.MaxTicks && engine.State() == climber.StatePlaying {
				engine.Quit(clock.NowMs())
			}
			clock.Advance(opts.TickMs)
			now := clock.NowMs()
			engine.Tick(opts.TickMs, pilot.Poll(engine.Frame(), now), now)
		}

		stats := engine.Stats()
		logger.Info("run finished",
			"run", i+1,
			"seed", stats.Seed,
			"score", stats.Score,
			"level", stats.Level,
			"cause", stats.Cause,
		)
		results = append(results, stats)
		if rec != nil {
			if err := rec.Record(stats); err != nil {
				return results, fmt.Errorf("sim: record run %d: %w", i+1, err)
			}
		}
	}
	return results, nil
}

// Summary aggregates a batch of runs.
type Summary struct {
	Runs      int
	BestScore int
	MeanScore float64
	MaxLevel  int
	Causes    map[climber.Cause]int
}

// Summarize aggregates stats.
func Summarize(runs []climber.RunStats) Summary {
	s := Summary{Runs: len(runs), Causes: make(map[climber.Cause]int)}
	if len(runs) == 0 {
		return s
	}
	total := 0
	for _, r := range runs {
		total += r.Score
		s.BestScore = max(s.BestScore, r.Score)
		s.MaxLevel = max(s.MaxLevel, r.Level)
		s.Causes[r.Cause]++
	}
	s.MeanScore = float64(total) / float64(len(runs))
	return s
}
