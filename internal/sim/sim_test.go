package sim

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/games/climber"
)

func shortOptions() Options {
	opts := DefaultOptions()
	opts.Runs = 2
	opts.MaxTicks = 600
	return opts
}

func TestRunPlaysEverySeed(t *testing.T) {
	var recorded []climber.RunStats
	rec := RecorderFunc(func(s climber.RunStats) error {
		recorded = append(recorded, s)
		return nil
	})

	runs, err := Run(context.Background(), config.DefaultClimberConfig(), shortOptions(), rec)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, expected 2", len(runs))
	}
	for i, r := range runs {
		if r.Seed != int64(1+i) {
			t.Errorf("run %d seed = %d, expected %d", i, r.Seed, 1+i)
		}
		if r.Cause == climber.CauseNone {
			t.Errorf("run %d finished without a cause", i)
		}
		if r.Ticks == 0 || r.Ticks > 600 {
			t.Errorf("run %d ticks = %d", i, r.Ticks)
		}
	}
	if !reflect.DeepEqual(recorded, runs) {
		t.Error("recorder should see every run in order")
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := config.DefaultClimberConfig()
	a, err := Run(context.Background(), cfg, shortOptions(), nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	b, err := Run(context.Background(), cfg, shortOptions(), nil)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seeds produced different runs:\n%+v\n%+v", a, b)
	}
}

func TestRunStopsOnRecorderError(t *testing.T) {
	boom := errors.New("disk full")
	runs, err := Run(context.Background(), config.DefaultClimberConfig(), shortOptions(),
		RecorderFunc(func(climber.RunStats) error { return boom }))
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, expected the recorder error", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs, expected to stop after the first", len(runs))
	}
}

func TestRunHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Run(ctx, config.DefaultClimberConfig(), shortOptions(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, expected context.Canceled", err)
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Options)
	}{
		{"no runs", func(o *Options) { o.Runs = 0 }},
		{"no tick", func(o *Options) { o.TickMs = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := shortOptions()
			tt.edit(&opts)
			if _, err := Run(context.Background(), config.DefaultClimberConfig(), opts, nil); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]climber.RunStats{
		{Score: 4, Level: 0, Cause: climber.CauseFall},
		{Score: 10, Level: 1, Cause: climber.CauseDanger},
		{Score: 1, Level: 0, Cause: climber.CauseFall},
	})
	if s.Runs != 3 || s.BestScore != 10 || s.MaxLevel != 1 || s.MeanScore != 5 {
		t.Errorf("Summarize() = %+v", s)
	}
	if s.Causes[climber.CauseFall] != 2 || s.Causes[climber.CauseDanger] != 1 {
		t.Errorf("Causes = %v", s.Causes)
	}
	if empty := Summarize(nil); empty.Runs != 0 || empty.MeanScore != 0 {
		t.Errorf("Summarize(nil) = %+v", empty)
	}
}
