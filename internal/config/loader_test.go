package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "simon.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(defaultSimonYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
signals:
  - {name: left, keys: ["a"], color: cyan, tone: 330}
  - {name: right, keys: ["d"], color: magenta, tone: 440}
timing:
  advance_delay: 750ms
audio:
  enabled: false
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	want := []simon.Signal{"left", "right"}
	if !reflect.DeepEqual(cfg.SignalNames(), want) {
		t.Errorf("SignalNames() = %v, expected %v", cfg.SignalNames(), want)
	}
	if cfg.Timing.AdvanceDelay != 750*time.Millisecond {
		t.Errorf("AdvanceDelay = %v, expected 750ms", cfg.Timing.AdvanceDelay)
	}
	if cfg.Audio.Enabled {
		t.Error("audio should be disabled")
	}

	// Unset fields keep their defaults
	if cfg.Timing.PressFlash != 150*time.Millisecond {
		t.Errorf("PressFlash = %v, expected default 150ms", cfg.Timing.PressFlash)
	}
	if !reflect.DeepEqual(cfg.Keys, Default().Keys) {
		t.Errorf("Keys = %+v, expected defaults", cfg.Keys)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	if _, err := Load(writeConfig(t, "signals: [[[")); err == nil {
		t.Error("malformed YAML should fail")
	}

	_, err := Load(writeConfig(t, "signals:\n  - {name: solo, keys: [x], color: red, tone: 300}\n"))
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load(one signal) error = %v, expected ErrInvalid", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	local := "timing:\n  advance_delay: 3s\n"
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalPath, []byte(local), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.AdvanceDelay != 3*time.Second {
		t.Errorf("local config not used: AdvanceDelay = %v", cfg.Timing.AdvanceDelay)
	}

	// The user file takes precedence over the local one
	userDir := filepath.Join(home, ".simon")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	user := "timing:\n  advance_delay: 2s\n"
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte(user), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.AdvanceDelay != 2*time.Second {
		t.Errorf("user config not used: AdvanceDelay = %v", cfg.Timing.AdvanceDelay)
	}

	// A broken user file is skipped
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("audio:\n  volume: 7\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Timing.AdvanceDelay != 3*time.Second {
		t.Errorf("invalid user config should fall through to local, got %v", cfg.Timing.AdvanceDelay)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"too few signals", func(c *Config) { c.Signals = c.Signals[:1] }, "at least 2"},
		{"duplicate name", func(c *Config) { c.Signals[1].Name = "red" }, "duplicate signal"},
		{"reserved name", func(c *Config) { c.Signals[0].Name = "wrong" }, "reserved"},
		{"empty name", func(c *Config) { c.Signals[0].Name = " " }, "no name"},
		{"unknown color", func(c *Config) { c.Signals[0].Color = "mauve" }, "unknown color"},
		{"zero tone", func(c *Config) { c.Signals[0].Tone = 0 }, "positive tone"},
		{"tone above nyquist", func(c *Config) { c.Signals[0].Tone = 30000 }, "below 22050"},
		{"tone at nyquist", func(c *Config) { c.Signals[1].Tone = 22050 }, "below 22050"},
		{"no keys", func(c *Config) { c.Signals[0].Keys = nil }, "no keys"},
		{"key shared by signals", func(c *Config) { c.Signals[1].Keys = []string{"R"} }, "bound to both"},
		{"key collides with start", func(c *Config) { c.Signals[0].Keys = []string{"S"} }, "bound to start"},
		{"key collides with quit", func(c *Config) { c.Signals[0].Keys = []string{"esc"} }, "bound to quit"},
		{"empty control keys", func(c *Config) { c.Keys.Mute = nil }, "keys.mute"},
		{"zero advance delay", func(c *Config) { c.Timing.AdvanceDelay = 0 }, "advance_delay"},
		{"negative flash", func(c *Config) { c.Timing.PressFlash = -time.Millisecond }, "press_flash"},
		{"volume above one", func(c *Config) { c.Audio.Volume = 1.5 }, "audio.volume"},
		{"volume below zero", func(c *Config) { c.Audio.Volume = -0.1 }, "audio.volume"},
		{"zero sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "sample_rate"},
		{"zero failure tone", func(c *Config) { c.Audio.FailureTone = 0 }, "failure_tone"},
		{"failure tone above nyquist", func(c *Config) { c.Audio.FailureTone = 30000 }, "failure_tone"},
		{"tone above lowered sample rate", func(c *Config) { c.Audio.SampleRate = 800 }, "below 400"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			if !strings.Contains(err.Error(), tc.errMsg) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.errMsg)
			}
		})
	}
}

func TestTones(t *testing.T) {
	tones := Default().Tones()

	if tones[simon.Red.Cue()] != 310 {
		t.Errorf("red tone = %v, expected 310", tones[simon.Red.Cue()])
	}
	if tones[simon.CueFailure] != 42 {
		t.Errorf("failure tone = %v, expected 42", tones[simon.CueFailure])
	}
	if len(tones) != 5 {
		t.Errorf("len(Tones()) = %d, expected 5", len(tones))
	}
}
