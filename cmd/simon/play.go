package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-simon/internal/audio"
	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/platform/tui"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls (defaults, see "simon signals"):
  S          - Start (and restart after game over)
  R/B/G/Y    - Press the red/blue/green/yellow pad (or 1-4)
  Mouse      - Click a pad
  M          - Toggle sound
  ?          - Toggle full help
  Q/Esc      - Quit

Examples:
  simon play
  simon play --seed 42
  simon play --mute
  simon play --config ./my-simon.yaml --log-file simon.log --debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newFileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	sound, closeSound := newSound(cfg, logger)

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Sound:  sound,
		Logger: logger,
	})

	// Close speaker before potential exit
	closeSound()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// newSound builds the speaker player. The game still works without sound,
// so any failure falls back to a silent player.
func newSound(cfg config.Config, logger *log.Logger) (simon.SoundPlayer, func()) {
	player, err := audio.NewPlayer(cfg.Audio, cfg.Tones(), logger)
	if err != nil {
		logger.Warn("cannot build voices, playing silently", "error", err)
		return audio.Silent{}, func() {}
	}
	if initErr := player.Init(); initErr != nil {
		logger.Warn("audio unavailable, playing silently", "error", initErr)
	}
	return player, player.Close
}
