// Package config provides YAML-based configuration loading and validation
// for the Simon board, its key bindings, timings and audio.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config contains the complete game configuration.
type Config struct {
	Signals []SignalConfig `yaml:"signals"`
	Keys    KeysConfig     `yaml:"keys"`
	Timing  TimingConfig   `yaml:"timing"`
	Audio   AudioConfig    `yaml:"audio"`
}

// SignalConfig describes one pad on the board.
type SignalConfig struct {
	Name  string   `yaml:"name"`  // Signal and cue name
	Keys  []string `yaml:"keys"`  // Key bindings that select this pad
	Color string   `yaml:"color"` // ANSI color name (see core.ParseColor)
	Tone  float64  `yaml:"tone"`  // Synthesized voice frequency in Hz
}

// KeysConfig defines the control key bindings.
type KeysConfig struct {
	Start []string `yaml:"start"`
	Quit  []string `yaml:"quit"`
	Mute  []string `yaml:"mute"`
	Help  []string `yaml:"help"`
}

// TimingConfig defines the engine delay and presenter animation lengths.
type TimingConfig struct {
	AdvanceDelay time.Duration `yaml:"advance_delay"` // Pause before the next round
	SignalFlash  time.Duration `yaml:"signal_flash"`  // Full fade out + fade in
	PressFlash   time.Duration `yaml:"press_flash"`
	FailureFlash time.Duration `yaml:"failure_flash"`
}

// AudioConfig defines the sound player parameters.
type AudioConfig struct {
	Enabled     bool          `yaml:"enabled"`
	Volume      float64       `yaml:"volume"`      // 0.0 = silent, 1.0 = full
	SampleRate  int           `yaml:"sample_rate"` // Speaker sample rate in Hz
	CueLength   time.Duration `yaml:"cue_length"`  // Length of synthesized cues
	FailureTone float64       `yaml:"failure_tone"`
	SoundsDir   string        `yaml:"sounds_dir"` // Optional <cue>.mp3 assets
}

// SignalNames returns the configured signals in board order.
func (c Config) SignalNames() []simon.Signal {
	out := make([]simon.Signal, len(c.Signals))
	for i, s := range c.Signals {
		out[i] = simon.Signal(s.Name)
	}
	return out
}

// Tones maps every cue to its synthesized frequency, the failure cue
// included.
func (c Config) Tones() map[simon.Cue]float64 {
	tones := make(map[simon.Cue]float64, len(c.Signals)+1)
	for _, s := range c.Signals {
		tones[simon.Signal(s.Name).Cue()] = s.Tone
	}
	tones[simon.CueFailure] = c.Audio.FailureTone
	return tones
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if len(c.Signals) < 2 {
		return fmt.Errorf("%w: need at least 2 signals, got %d", ErrInvalid, len(c.Signals))
	}

	control := make(map[string]string)
	for name, keys := range map[string][]string{
		"start": c.Keys.Start,
		"quit":  c.Keys.Quit,
		"mute":  c.Keys.Mute,
		"help":  c.Keys.Help,
	} {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s is empty", ErrInvalid, name)
		}
		for _, k := range keys {
			control[normalizeKey(k)] = name
		}
	}

	names := make(map[string]bool, len(c.Signals))
	bound := make(map[string]string)
	for i, s := range c.Signals {
		name := strings.TrimSpace(s.Name)
		switch {
		case name == "":
			return fmt.Errorf("%w: signals[%d] has no name", ErrInvalid, i)
		case simon.Cue(name) == simon.CueFailure:
			return fmt.Errorf("%w: signal name %q is reserved", ErrInvalid, name)
		case names[name]:
			return fmt.Errorf("%w: duplicate signal %q", ErrInvalid, name)
		}
		names[name] = true

		if _, ok := core.ParseColor(s.Color); !ok {
			return fmt.Errorf("%w: signal %q has unknown color %q", ErrInvalid, name, s.Color)
		}
		if s.Tone <= 0 {
			return fmt.Errorf("%w: signal %q needs a positive tone", ErrInvalid, name)
		}
		if nyquist := c.Audio.nyquist(); nyquist > 0 && s.Tone >= nyquist {
			return fmt.Errorf("%w: signal %q tone %g Hz must stay below %g Hz", ErrInvalid, name, s.Tone, nyquist)
		}
		if len(s.Keys) == 0 {
			return fmt.Errorf("%w: signal %q has no keys", ErrInvalid, name)
		}
		for _, k := range s.Keys {
			nk := normalizeKey(k)
			if owner, ok := control[nk]; ok {
				return fmt.Errorf("%w: key %q of signal %q is bound to %s", ErrInvalid, k, name, owner)
			}
			if owner, ok := bound[nk]; ok {
				return fmt.Errorf("%w: key %q is bound to both %q and %q", ErrInvalid, k, owner, name)
			}
			bound[nk] = name
		}
	}

	for field, d := range map[string]time.Duration{
		"advance_delay": c.Timing.AdvanceDelay,
		"signal_flash":  c.Timing.SignalFlash,
		"press_flash":   c.Timing.PressFlash,
		"failure_flash": c.Timing.FailureFlash,
		"cue_length":    c.Audio.CueLength,
	} {
		if d <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %s", ErrInvalid, field, d)
		}
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: audio.volume must be within [0, 1], got %g", ErrInvalid, c.Audio.Volume)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("%w: audio.sample_rate must be positive", ErrInvalid)
	}
	if c.Audio.FailureTone <= 0 {
		return fmt.Errorf("%w: audio.failure_tone must be positive", ErrInvalid)
	}
	if c.Audio.FailureTone >= c.Audio.nyquist() {
		return fmt.Errorf("%w: audio.failure_tone %g Hz must stay below %g Hz", ErrInvalid, c.Audio.FailureTone, c.Audio.nyquist())
	}
	return nil
}

// nyquist is the highest frequency the sample rate can carry.
func (a AudioConfig) nyquist() float64 {
	return float64(a.SampleRate) / 2
}

// normalizeKey folds single letters so "S" and "s" count as the same key.
func normalizeKey(k string) string {
	if len([]rune(k)) == 1 {
		return strings.ToLower(k)
	}
	return k
}
