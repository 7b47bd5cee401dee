package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-climber/internal/core"
	"github.com/vovakirdan/tui-climber/internal/platform/tui"
	"github.com/vovakirdan/tui-climber/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Climb in this terminal",
	Long: `Start an endless climb in the current terminal.

Controls:
  A/Left, D/Right   - Move
  Space/W/Up        - Jump (hold for height)
  P/Esc             - Pause
  R                 - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Start at level 0, progresses to max
  normal - Start at level 1, progresses to max
  hard   - Start at level 3, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  climber play
  climber play --difficulty hard
  climber play --seed 42
  climber play --config ./my-climber.toml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The alternate screen owns stdout, so logs only go to --log-file.
	logger, closer, err := newLogger("climber", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open run journal: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, cfg, tui.HostOptions{
		Store:  store,
		Logger: logger,
		Source: "play",
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
