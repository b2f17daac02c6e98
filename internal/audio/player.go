// Package audio plays the game's cues through the system speaker.
//
// Every cue is rendered once into an in-memory buffer when the player is
// built. Playback then only adds a buffer streamer to a running mixer, so
// Play never blocks the caller on decoding or synthesis.
package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// speakerBuffer is the speaker's internal buffer length.
const speakerBuffer = 100 * time.Millisecond

// Player implements simon.SoundPlayer on top of beep.
// All methods are safe to call before Init and after Close; they do nothing.
type Player struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	volume      float64
	voices      map[simon.Cue]*beep.Buffer
	mixer       *beep.Mixer
	muted       bool
	initialized bool
	logger      *log.Logger
}

// NewPlayer renders a voice for every cue in tones. A <cue>.mp3 file in
// cfg.SoundsDir replaces the synthesized voice for that cue; the failure
// cue is a buzz, every other cue a sine tone.
func NewPlayer(cfg config.AudioConfig, tones map[simon.Cue]float64, logger *log.Logger) (*Player, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.SampleRate <= 0 {
		return nil, errors.New("audio: sample rate must be positive")
	}

	p := &Player{
		sr:     beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		voices: make(map[simon.Cue]*beep.Buffer, len(tones)),
		mixer:  &beep.Mixer{},
		muted:  !cfg.Enabled,
		logger: logger,
	}

	for cue, freq := range tones {
		voice, err := p.buildVoice(cfg, cue, freq)
		if err != nil {
			return nil, err
		}
		p.voices[cue] = voice
	}
	return p, nil
}

// buildVoice loads the cue's mp3 asset when one exists and falls back to
// synthesis otherwise.
func (p *Player) buildVoice(cfg config.AudioConfig, cue simon.Cue, freq float64) (*beep.Buffer, error) {
	if cfg.SoundsDir != "" {
		path := filepath.Join(cfg.SoundsDir, string(cue)+".mp3")
		if _, err := os.Stat(path); err == nil {
			voice, err := loadVoice(p.sr, path)
			if err == nil {
				p.logger.Debug("loaded voice", "cue", cue, "path", path)
				return voice, nil
			}
			p.logger.Warn("falling back to synthesized voice", "cue", cue, "err", err)
		}
	}

	if cue == simon.CueFailure {
		return buzzVoice(p.sr, freq, cfg.CueLength)
	}
	return synthVoice(p.sr, freq, cfg.CueLength)
}

// Init opens the speaker and starts the mixer. Calling Init twice is a
// no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(p.sr, p.sr.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	p.initialized = false
}

// Play starts the voice for cue. Unknown cues, a muted player and an
// unopened speaker are all silent.
func (p *Player) Play(cue simon.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}

	voice, ok := p.voices[cue]
	if !ok {
		p.logger.Debug("no voice for cue", "cue", cue)
		return
	}

	streamer := newVolume(voice.Streamer(0, voice.Len()), p.volume)
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new one.
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether playback is disabled.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Initialized reports whether the speaker is open.
func (p *Player) Initialized() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// VoiceLength returns the voice length for cue in samples, or 0 when the
// cue has no voice.
func (p *Player) VoiceLength(cue simon.Cue) int {
	voice, ok := p.voices[cue]
	if !ok {
		return 0
	}
	return voice.Len()
}

// Silent is a SoundPlayer that plays nothing. SSH sessions use it, since a
// speaker on the server host is no use to a remote player.
type Silent struct{}

// Play does nothing.
func (Silent) Play(simon.Cue) {}

var (
	_ simon.SoundPlayer = (*Player)(nil)
	_ simon.SoundPlayer = Silent{}
)
