package audio

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
)

const (
	fadeLength       = 5 * time.Millisecond
	resampleQuality  = 4
	sineAmplitude    = 0.5
	bufferNumChannel = 2
	bufferPrecision  = 2
)

// bufferFormat returns the in-memory format all voices are stored in.
func bufferFormat(sr beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: sr, NumChannels: bufferNumChannel, Precision: bufferPrecision}
}

// synthVoice renders a sine tone of the given length into a buffer.
func synthVoice(sr beep.SampleRate, freq float64, length time.Duration) (*beep.Buffer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot synthesize %gHz tone: %w", freq, err)
	}
	return render(sr, newVolume(sine, sineAmplitude), length), nil
}

// buzzVoice renders the harmonic failure buzz into a buffer.
func buzzVoice(sr beep.SampleRate, freq float64, length time.Duration) (*beep.Buffer, error) {
	if freq <= 0 || freq >= float64(sr)/2 {
		return nil, fmt.Errorf("audio: buzz frequency %gHz out of range for %d Hz sample rate", freq, sr)
	}
	return render(sr, NewBuzzGenerator(sr, freq), length), nil
}

// render takes length worth of samples from s, fades both ends and buffers
// the result.
func render(sr beep.SampleRate, s beep.Streamer, length time.Duration) *beep.Buffer {
	buf := beep.NewBuffer(bufferFormat(sr))
	buf.Append(newFade(beep.Take(sr.N(length), s), sr.N(length), sr.N(fadeLength)))
	return buf
}

// loadVoice decodes an mp3 file and resamples it to the speaker rate.
func loadVoice(sr beep.SampleRate, path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: cannot open %s: %w", path, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: cannot decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(bufferFormat(sr))
	if format.SampleRate == sr {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sr, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: cannot read %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// newVolume wraps s with a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume becomes silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// fade ramps the first and last samples of a stream of known length to
// avoid clicks.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
	ramp     int
}

func newFade(s beep.Streamer, total, ramp int) beep.Streamer {
	if ramp*2 > total {
		ramp = total / 2
	}
	return &fade{streamer: s, total: total, ramp: ramp}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.ramp > 0 {
			if f.position < f.ramp {
				vol = float64(f.position) / float64(f.ramp)
			}
			if remaining := f.total - f.position; remaining < f.ramp {
				vol = math.Max(float64(remaining)/float64(f.ramp), 0)
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Fundamental plus odd-ish harmonics for a harsh buzz
		sample := 0.0
		sample += 0.5 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.25 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*3*t)
		sample += 0.1 * math.Sin(2*math.Pi*g.freq*5*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
