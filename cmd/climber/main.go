// climber is an endless vertical platform climber for the terminal.
//
// Usage:
//
//	climber play             - Climb in this terminal
//	climber serve            - Start SSH server for remote play
//	climber sim              - Run headless autopilot sessions
//	climber runs             - Browse the run journal
//	climber config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Custom config file (YAML or TOML)
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible layouts
//	--db <path>           - Set journal path (default: ~/.climber/runs.db)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a rotating file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
	"github.com/vovakirdan/tui-climber/internal/logging"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climber",
	Short: "TUI Climber - jump your way up an endless tower",
	Long: `TUI Climber is an endless vertical platformer for the terminal.
Jump from row to row, avoid the red danger pads and do not fall behind.

Available commands:
  play     - Climb in this terminal
  serve    - Start SSH server for remote play
  sim      - Run headless autopilot sessions
  runs     - Browse the run journal
  config   - Print the effective configuration

Examples:
  climber play
  climber play --difficulty hard --seed 42
  climber serve --ssh :2222
  climber sim --runs 20 --record
  climber config --format toml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climber/runs.db", "Path to run journal database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Rotating log file (default: none for play, stderr otherwise)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(configCmd)
}

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.ClimberConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.ClimberConfig{}, err
	}
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.ClimberConfig{}, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// newLogger builds the command logger. Without --log-file it writes to
// fallback, which is nil for the full-screen terminal session.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer, error) {
	opts := logging.DefaultOptions()
	opts.Level = flagLogLevel
	opts.Prefix = prefix
	opts.File = flagLogFile
	opts.Output = fallback
	return logging.New(opts)
}
