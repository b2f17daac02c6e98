package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/simon.yaml
var defaultSimonYAML []byte

// Default returns the hardcoded default configuration. It matches the
// embedded defaults/simon.yaml.
func Default() Config {
	return Config{
		Signals: []SignalConfig{
			{Name: "red", Keys: []string{"r", "1"}, Color: "red", Tone: 310},
			{Name: "blue", Keys: []string{"b", "2"}, Color: "blue", Tone: 209},
			{Name: "green", Keys: []string{"g", "3"}, Color: "green", Tone: 415},
			{Name: "yellow", Keys: []string{"y", "4"}, Color: "yellow", Tone: 252},
		},
		Keys: KeysConfig{
			Start: []string{"s"},
			Quit:  []string{"q", "esc", "ctrl+c"},
			Mute:  []string{"m"},
			Help:  []string{"?"},
		},
		Timing: TimingConfig{
			AdvanceDelay: time.Second,
			SignalFlash:  200 * time.Millisecond,
			PressFlash:   150 * time.Millisecond,
			FailureFlash: 200 * time.Millisecond,
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.6,
			SampleRate:  44100,
			CueLength:   300 * time.Millisecond,
			FailureTone: 42,
		},
	}
}
