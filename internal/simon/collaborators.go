package simon

import "time"

// Presenter renders the game. All methods are fire-and-forget and must not
// block; any animation is the presenter's own business.
type Presenter interface {
	// SetLabel replaces the level/title text.
	SetLabel(text string)

	// FlashSignal briefly pulses the pad for s (sequence playback).
	FlashSignal(s Signal)

	// FlashPress briefly highlights the pad for s (player acknowledgment).
	FlashPress(s Signal)

	// FlashFailure pulses the whole surface. The presenter reverts it on
	// its own after a short delay.
	FlashFailure()
}

// SoundPlayer plays a short audio cue. Playback errors are not reported.
type SoundPlayer interface {
	Play(cue Cue)
}

// Scheduler runs fn once after delay has elapsed. Implementations must run
// fn on the same serialized event queue that delivers input, so callbacks
// never overlap with other handlers. Scheduled callbacks are never
// cancelled.
type Scheduler interface {
	After(delay time.Duration, fn func())
}

// Source picks signals. *math/rand.Rand satisfies it.
type Source interface {
	// Intn returns a uniformly distributed number in [0, n).
	Intn(n int) int
}
