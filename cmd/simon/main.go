// simon is the Simon memory game for the terminal.
//
// Usage:
//
//	simon                - Play in the local terminal (same as "simon play")
//	simon play           - Play in the local terminal
//	simon serve          - Start SSH server for remote play
//	simon signals        - Show the configured pads, keys and tones
//
// Global flags:
//
//	--config <path>    - Custom config YAML (default search: ~/.simon/config.yaml, ./configs/simon.yaml)
//	--seed <value>     - Set RNG seed for a reproducible sequence
//	--mute             - Start with sound off
//	--log-file <path>  - Write logs to a file
//	--debug            - Log engine transitions
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagMute    bool
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simon",
	Short: "Simon - a memory sequence game for your terminal",
	Long: `Simon shows a growing sequence of colored pads. Repeat it by pressing
each pad's key or clicking it. One wrong press ends the game.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  signals  - Show the configured pads

Examples:
  simon
  simon play --seed 42
  simon serve --ssh :2222
  simon signals --config ./my-simon.yaml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with sound off")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(signalsCmd)
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newFileLogger returns a logger writing to --log-file, or one that
// discards everything. The terminal belongs to the game while it runs.
func newFileLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "simon",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	closeFn := func() {
		//nolint:errcheck // Best-effort close on exit
		f.Close()
	}
	return logger, closeFn, nil
}
