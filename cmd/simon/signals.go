package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-simon/internal/config"
)

var signalsCmd = &cobra.Command{
	Use:   "signals",
	Short: "Show the configured pads",
	Long:  `Shows every pad with its key bindings, color and tone, plus the control keys.`,
	Args:  cobra.NoArgs,
	Run:   runSignals,
}

func runSignals(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printSignals(cfg)
}

// printSignals writes the pad table and control keys to stdout.
func printSignals(cfg config.Config) {
	fmt.Println("Pads:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	maxKeysLen := 4 // "Keys" header
	for _, s := range cfg.Signals {
		maxNameLen = max(maxNameLen, len(s.Name))
		maxKeysLen = max(maxKeysLen, len(strings.Join(s.Keys, "/")))
	}

	// Print header
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxNameLen, "Name", maxKeysLen, "Keys", "Color", "Tone")
	fmt.Printf("  %-*s  %-*s  %-8s  %s\n", maxNameLen, "----", maxKeysLen, "----", "-----", "----")

	// Print pads
	for _, s := range cfg.Signals {
		fmt.Printf("  %-*s  %-*s  %-8s  %gHz\n", maxNameLen, s.Name, maxKeysLen, strings.Join(s.Keys, "/"), s.Color, s.Tone)
	}

	fmt.Println()
	fmt.Printf("  start: %s   mute: %s   help: %s   quit: %s\n",
		strings.Join(cfg.Keys.Start, "/"),
		strings.Join(cfg.Keys.Mute, "/"),
		strings.Join(cfg.Keys.Help, "/"),
		strings.Join(cfg.Keys.Quit, "/"),
	)
	fmt.Printf("  next round after %s, failure buzz at %gHz\n", cfg.Timing.AdvanceDelay, cfg.Audio.FailureTone)
	fmt.Println()
	fmt.Println("Run 'simon play' to play.")
}
