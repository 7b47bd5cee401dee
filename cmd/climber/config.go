package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-climber/internal/config"
)

var flagConfigFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would run with, after the config
file search and the difficulty preset are applied. The output is a valid
config file and can be edited and passed back with --config.

Examples:
  climber config > ~/.climber/configs/climber.yaml
  climber config --difficulty hard --format toml > hard.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(_ *cobra.Command, _ []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out, err := config.Encode(cfg, config.Format(flagConfigFormat))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	//nolint:errcheck // Nothing to do if stdout is gone
	os.Stdout.Write(out)
}
