package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/games/climber"
	"github.com/vovakirdan/tui-climber/internal/sim"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var (
	flagSimRuns   int
	flagSimTicks  int
	flagSimRecord bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run headless autopilot sessions",
	Long: `Play sessions without a terminal using the built-in autopilot.

Run i uses seed+i, so a batch is fully reproducible. A run that is
still alive after --ticks ticks is ended as a quit.

Examples:
  climber sim
  climber sim --runs 50 --seed 100
  climber sim --difficulty hard --ticks 3600 --record`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of sessions to play")
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 5*60*60, "Tick limit per session")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save every run to the journal")
}

func runSim(_ *cobra.Command, _ []string) {
	game, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger("climber-sim", os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	opts := sim.DefaultOptions()
	opts.Runs = flagSimRuns
	opts.MaxTicks = flagSimTicks
	opts.Logger = logger
	if flagFPS > 0 {
		opts.TickMs = int64(1000 / flagFPS)
	}
	opts.Seed = flagSeed
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	var rec sim.Recorder
	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		rec = sim.RecorderFunc(func(s climber.RunStats) error {
			_, err := store.SaveRun(storage.Run{
				Seed:       s.Seed,
				Score:      s.Score,
				Level:      s.Level,
				Rows:       s.Rows,
				Cause:      s.Cause.String(),
				DurationMs: s.ElapsedMs,
				Source:     "sim",
			})
			return err
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runs, err := sim.Run(ctx, game, opts, rec)
	printSimRuns(runs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSimRuns(runs []climber.RunStats) {
	if len(runs) == 0 {
		return
	}

	fmt.Printf("  %-20s  %-6s  %-5s  %-5s  %-7s  %s\n", "Seed", "Score", "Level", "Rows", "Cause", "Time")
	fmt.Printf("  %-20s  %-6s  %-5s  %-5s  %-7s  %s\n", "----", "-----", "-----", "----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-20d  %-6d  %-5d  %-5d  %-7s  %.1fs\n",
			r.Seed, r.Score, r.Level, r.Rows, r.Cause, float64(r.ElapsedMs)/1000)
	}

	s := sim.Summarize(runs)
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Mean: %.1f  Max level: %d\n", s.Runs, s.BestScore, s.MeanScore, s.MaxLevel)

	causes := make([]climber.Cause, 0, len(s.Causes))
	for c := range s.Causes {
		causes = append(causes, c)
	}
	sort.Slice(causes, func(i, j int) bool { return causes[i] < causes[j] })
	for _, c := range causes {
		fmt.Printf("  %-7s %d\n", c, s.Causes[c])
	}
}
