package simon

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultAdvanceDelay is the pause between a completed round and the next
// signal being shown.
const DefaultAdvanceDelay = time.Second

// DefaultStartKey is the key named in the start and game-over labels.
const DefaultStartKey = "s"

// Sentinel errors returned by New.
var (
	ErrTooFewSignals   = errors.New("simon: at least two signals are required")
	ErrDuplicateSignal = errors.New("simon: duplicate signal")
	ErrReservedSignal  = errors.New("simon: signal name is reserved")
)

// Config contains the engine's construction parameters.
// Zero values are replaced with defaults.
type Config struct {
	Signals      []Signal      // Selectable signals (N >= 2)
	AdvanceDelay time.Duration // Delay before the next round starts
	StartKey     string        // Key shown in labels, e.g. "s"
	Rand         Source        // Random source; time-seeded if nil
	Logger       *log.Logger   // Debug logger; discarded if nil
}

// Engine is the Simon state machine. It is not safe for concurrent use:
// callers must serialize every call, including scheduled callbacks.
type Engine struct {
	signals      []Signal
	advanceDelay time.Duration
	startKey     string
	rng          Source
	logger       *log.Logger

	presenter Presenter
	sound     SoundPlayer
	scheduler Scheduler

	sequence       []Signal
	input          []Signal
	level          int
	best           int
	status         Status
	advancePending bool
}

// New creates an engine wired to its collaborators and shows the start label.
func New(cfg Config, presenter Presenter, sound SoundPlayer, scheduler Scheduler) (*Engine, error) {
	signals := cfg.Signals
	if len(signals) == 0 {
		signals = DefaultSignals()
	}
	if err := validateSignals(signals); err != nil {
		return nil, err
	}

	if cfg.AdvanceDelay <= 0 {
		cfg.AdvanceDelay = DefaultAdvanceDelay
	}
	if cfg.StartKey == "" {
		cfg.StartKey = DefaultStartKey
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	e := &Engine{
		signals:      append([]Signal(nil), signals...),
		advanceDelay: cfg.AdvanceDelay,
		startKey:     cfg.StartKey,
		rng:          cfg.Rand,
		logger:       cfg.Logger,
		presenter:    presenter,
		sound:        sound,
		scheduler:    scheduler,
		status:       StatusNotStarted,
	}

	e.presenter.SetLabel(StartLabel(e.startKey))
	return e, nil
}

// validateSignals checks the signal set for size, duplicates and the
// reserved failure cue name.
func validateSignals(signals []Signal) error {
	if len(signals) < 2 {
		return ErrTooFewSignals
	}

	seen := make(map[Signal]bool, len(signals))
	for _, s := range signals {
		if s.Cue() == CueFailure {
			return fmt.Errorf("%w: %q", ErrReservedSignal, s)
		}
		if seen[s] {
			return fmt.Errorf("%w: %q", ErrDuplicateSignal, s)
		}
		seen[s] = true
	}
	return nil
}

// StartLabel is shown before the first game.
func StartLabel(startKey string) string {
	return fmt.Sprintf("Press %s to Start", strings.ToUpper(startKey))
}

// LevelLabel is shown while a game is running.
func LevelLabel(level int) string {
	return fmt.Sprintf("Level %d", level)
}

// GameOverLabel is shown after a mismatch.
func GameOverLabel(startKey string) string {
	return fmt.Sprintf("Game Over! Press %s to start again", strings.ToUpper(startKey))
}

// StartOrAdvance handles the start input. It begins a new game when none is
// running and does nothing otherwise.
func (e *Engine) StartOrAdvance() {
	if e.status != StatusNotStarted {
		return
	}

	e.status = StatusInProgress
	e.presenter.SetLabel(LevelLabel(e.level))
	e.logger.Debug("game started")
	e.AdvanceSequence()
}

// AdvanceSequence starts the next round: it clears the player's input,
// bumps the level and appends one random signal to the sequence.
func (e *Engine) AdvanceSequence() {
	e.advancePending = false
	e.input = e.input[:0]

	e.level++
	if e.level > e.best {
		e.best = e.level
	}
	e.presenter.SetLabel(LevelLabel(e.level))

	next := e.signals[e.rng.Intn(len(e.signals))]
	e.sequence = append(e.sequence, next)

	e.presenter.FlashSignal(next)
	e.sound.Play(next.Cue())

	e.logger.Debug("round advanced", "level", e.level, "signal", next)
}

// SubmitInput records one player selection and checks it against the
// sequence. Only the newest position is compared; earlier positions were
// checked by earlier calls.
//
// Press feedback always plays. The selection itself is ignored while no game
// is running or while the next round is already scheduled, so the input
// never outgrows the sequence.
func (e *Engine) SubmitInput(s Signal) Outcome {
	if e.status != StatusInProgress || e.advancePending {
		e.pressFeedback(s)
		e.logger.Debug("input ignored", "signal", s, "status", e.status, "advancing", e.advancePending)
		return OutcomeIgnored
	}

	e.input = append(e.input, s)
	e.pressFeedback(s)

	idx := len(e.input) - 1
	if e.input[idx] != e.sequence[idx] {
		e.logger.Debug("input mismatch", "index", idx, "want", e.sequence[idx], "got", s)
		e.Fail()
		return OutcomeMismatch
	}

	if len(e.input) < len(e.sequence) {
		return OutcomeMatched
	}

	e.advancePending = true
	e.scheduler.After(e.advanceDelay, e.AdvanceSequence)
	e.logger.Debug("round complete", "level", e.level)
	return OutcomeRoundComplete
}

// pressFeedback plays the sound and highlight for a selection.
func (e *Engine) pressFeedback(s Signal) {
	e.sound.Play(s.Cue())
	e.presenter.FlashPress(s)
}

// Fail ends the current game and returns the engine to the not-started
// state.
//
// A scheduled advance is not cancelled. SubmitInput never fails while
// AdvancePending is true; direct callers must check it first, or the pending
// AdvanceSequence still fires and opens a round on the idle engine.
func (e *Engine) Fail() {
	e.presenter.FlashFailure()
	e.sound.Play(CueFailure)

	e.logger.Debug("game over", "level", e.level, "best", e.best)

	e.sequence = nil
	e.level = 0
	e.status = StatusNotStarted
	e.presenter.SetLabel(GameOverLabel(e.startKey))
}

// Level returns the current round counter (0 before the first round).
func (e *Engine) Level() int {
	return e.level
}

// Best returns the highest level reached since the engine was created.
func (e *Engine) Best() int {
	return e.best
}

// Status returns whether a game is running.
func (e *Engine) Status() Status {
	return e.status
}

// AdvancePending returns true while a completed round waits for the next one.
func (e *Engine) AdvancePending() bool {
	return e.advancePending
}

// Signals returns a copy of the selectable signals in board order.
func (e *Engine) Signals() []Signal {
	return append([]Signal(nil), e.signals...)
}

// Sequence returns a copy of the current sequence.
func (e *Engine) Sequence() []Signal {
	return append([]Signal(nil), e.sequence...)
}

// Input returns a copy of the player's input for the current round.
func (e *Engine) Input() []Signal {
	return append([]Signal(nil), e.input...)
}
