package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var flagRunsLimit int

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse the run journal",
	Long: `Open an interactive browser over the recorded runs.

Subcommands print plain text instead.

Examples:
  climber runs
  climber runs list --limit 20
  climber runs show 12
  climber runs clear`,
	Args: cobra.NoArgs,
	Run:  runRunsBrowse,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the most recent runs",
	Args:  cobra.NoArgs,
	Run:   runRunsList,
}

var runsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one run",
	Args:  cobra.ExactArgs(1),
	Run:   runRunsShow,
}

var runsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every recorded run",
	Args:  cobra.NoArgs,
	Run:   runRunsClear,
}

func init() {
	runsListCmd.Flags().IntVar(&flagRunsLimit, "limit", 10, "Number of runs to print")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsShowCmd)
	runsCmd.AddCommand(runsClearCmd)
}

// openStore opens the journal or exits.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run journal: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runRunsBrowse(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunRuns(store, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
}

func runRunsList(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	runs, err := store.RecentRuns(flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'climber play' to record the first one!")
		return
	}

	fmt.Printf("  %-5s  %-6s  %-5s  %-7s  %-6s  %s\n", "ID", "Score", "Level", "Cause", "Source", "Date")
	fmt.Printf("  %-5s  %-6s  %-5s  %-7s  %-6s  %s\n", "--", "-----", "-----", "-----", "------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-6d  %-5d  %-7s  %-6s  %s\n",
			r.ID, r.Score, r.Level, r.Cause, r.Source, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if counts, err := store.CauseCounts(); err == nil {
		fmt.Println()
		fmt.Printf("Falls: %d  Danger: %d  Quits: %d\n", counts["fall"], counts["danger"], counts["quit"])
	}
}

func runRunsShow(_ *cobra.Command, args []string) {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid run id %q\n", args[0])
		os.Exit(1)
	}

	store := openStore()
	defer store.Close()

	r, err := store.RunByID(id)
	if errors.Is(err, storage.ErrRunNotFound) {
		fmt.Fprintf(os.Stderr, "No run with id %d\n", id)
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving run: %v\n", err)
		return
	}

	fmt.Printf("Run #%d\n\n", r.ID)
	fmt.Printf("  Seed:     %d\n", r.Seed)
	fmt.Printf("  Score:    %d\n", r.Score)
	fmt.Printf("  Level:    %d\n", r.Level)
	fmt.Printf("  Rows:     %d\n", r.Rows)
	fmt.Printf("  Cause:    %s\n", r.Cause)
	fmt.Printf("  Duration: %.1fs\n", float64(r.DurationMs)/1000)
	fmt.Printf("  Source:   %s\n", r.Source)
	fmt.Printf("  Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Println()
	fmt.Printf("Replay the layout with: climber play --seed %d\n", r.Seed)
}

func runRunsClear(_ *cobra.Command, _ []string) {
	store := openStore()
	defer store.Close()

	if err := store.ClearRuns(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return
	}
	fmt.Println("Run journal cleared.")
}
