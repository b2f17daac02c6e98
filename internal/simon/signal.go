// Package simon implements the Simon memory game engine.
//
// The engine owns the sequence, the player's input for the current round,
// the level counter and the started/not-started status. Everything the
// player sees or hears goes through collaborators the engine calls but does
// not implement (Presenter, SoundPlayer), and every delay goes through a
// Scheduler. The engine contains no Bubble Tea or audio code, which keeps
// it pure and testable.
package simon

// Signal identifies one of the selectable pads (a "color").
type Signal string

// Default signal set, matching the classic four-pad board.
const (
	Red    Signal = "red"
	Blue   Signal = "blue"
	Green  Signal = "green"
	Yellow Signal = "yellow"
)

// DefaultSignals returns the four classic signals in board order.
func DefaultSignals() []Signal {
	return []Signal{Red, Blue, Green, Yellow}
}

// String returns the signal name.
func (s Signal) String() string {
	return string(s)
}

// Cue returns the audio cue played for this signal.
func (s Signal) Cue() Cue {
	return Cue(s)
}

// Cue names an audio clip. Every signal has its own cue; CueFailure is
// reserved for a mismatch.
type Cue string

// CueFailure is played when the player gets the sequence wrong.
const CueFailure Cue = "wrong"

// Status tracks whether the start input is currently accepted.
type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusNotStarted:
		return "NotStarted"
	case StatusInProgress:
		return "InProgress"
	default:
		return "Unknown"
	}
}

// Outcome reports what SubmitInput did with a selection.
type Outcome int

const (
	// OutcomeIgnored means the selection was not recorded: no round is
	// running, or the next round is already scheduled.
	OutcomeIgnored Outcome = iota
	// OutcomeMatched means the selection was correct and more are expected.
	OutcomeMatched
	// OutcomeRoundComplete means the whole sequence was reproduced and the
	// next round has been scheduled.
	OutcomeRoundComplete
	// OutcomeMismatch means the selection was wrong and the game was reset.
	OutcomeMismatch
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "Ignored"
	case OutcomeMatched:
		return "Matched"
	case OutcomeRoundComplete:
		return "RoundComplete"
	case OutcomeMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}
