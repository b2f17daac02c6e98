package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

func newTestPlayer(t *testing.T, cfg config.AudioConfig) *Player {
	t.Helper()
	p, err := NewPlayer(cfg, config.Default().Tones(), nil)
	if err != nil {
		t.Fatalf("NewPlayer() failed: %v", err)
	}
	return p
}

// TestPlayerGracefulDegradation verifies audio operations don't panic when not initialized
func TestPlayerGracefulDegradation(t *testing.T) {
	p := newTestPlayer(t, config.Default().Audio)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	p.Play(simon.Red.Cue())
	p.Play(simon.CueFailure)
	p.Play("unknown")
	p.ToggleMute()
	p.Close()

	if p.Initialized() {
		t.Error("player should not report initialized")
	}
}

// TestPlayerInitialization verifies the player can be initialized and closed
func TestPlayerInitialization(t *testing.T) {
	p := newTestPlayer(t, config.Default().Audio)

	// Speaker initialization may fail in CI/test environments without audio devices
	if err := p.Init(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Second initialization should be a no-op
	if err := p.Init(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	p.Play(simon.Blue.Cue())
	p.Close()

	if p.Initialized() {
		t.Error("Close() should reset initialized")
	}

	// Operations after close are silent
	p.Play(simon.Blue.Cue())
}

func TestPlayerVoices(t *testing.T) {
	cfg := config.Default().Audio
	p := newTestPlayer(t, cfg)

	want := beep.SampleRate(cfg.SampleRate).N(cfg.CueLength)
	for _, cue := range []simon.Cue{"red", "blue", "green", "yellow", simon.CueFailure} {
		if got := p.VoiceLength(cue); got != want {
			t.Errorf("VoiceLength(%q) = %d, expected %d", cue, got, want)
		}
	}

	if p.VoiceLength("unknown") != 0 {
		t.Error("unknown cue should have no voice")
	}
}

func TestPlayerMute(t *testing.T) {
	cfg := config.Default().Audio
	cfg.Enabled = false
	p := newTestPlayer(t, cfg)

	if !p.Muted() {
		t.Error("disabled audio should start muted")
	}
	if p.ToggleMute() {
		t.Error("ToggleMute() should unmute")
	}
	if !p.ToggleMute() || !p.Muted() {
		t.Error("second ToggleMute() should mute again")
	}
}

func TestPlayerRejectsBadTones(t *testing.T) {
	cfg := config.Default().Audio

	tests := []struct {
		name  string
		tones map[simon.Cue]float64
	}{
		{"tone above nyquist", map[simon.Cue]float64{"red": 30000}},
		{"buzz above nyquist", map[simon.Cue]float64{simon.CueFailure: 30000}},
		{"zero buzz", map[simon.Cue]float64{simon.CueFailure: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPlayer(cfg, tc.tones, nil); err == nil {
				t.Error("NewPlayer() should fail")
			}
		})
	}

	cfg.SampleRate = 0
	if _, err := NewPlayer(cfg, nil, nil); err == nil {
		t.Error("NewPlayer() with zero sample rate should fail")
	}
}

func TestPlayerBrokenAssetFallsBack(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "red.mp3"), []byte("not an mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default().Audio
	cfg.SoundsDir = dir
	p := newTestPlayer(t, cfg)

	want := beep.SampleRate(cfg.SampleRate).N(cfg.CueLength)
	if got := p.VoiceLength(simon.Red.Cue()); got != want {
		t.Errorf("broken asset should fall back to synthesis: length %d, expected %d", got, want)
	}
}

func TestSilent(t *testing.T) {
	var s simon.SoundPlayer = Silent{}
	s.Play(simon.CueFailure) // Should not panic
}

func TestLoadVoiceMissingFile(t *testing.T) {
	_, err := loadVoice(beep.SampleRate(44100), filepath.Join(t.TempDir(), "nope.mp3"))
	if err == nil {
		t.Error("loadVoice() of a missing file should fail")
	}
}

func TestSynthVoiceLength(t *testing.T) {
	sr := beep.SampleRate(22050)
	buf, err := synthVoice(sr, 440, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("synthVoice() failed: %v", err)
	}
	if buf.Len() != sr.N(50*time.Millisecond) {
		t.Errorf("Len() = %d, expected %d", buf.Len(), sr.N(50*time.Millisecond))
	}
}
