package simon

// StateType names the engine's position in the round lifecycle.
type StateType string

const (
	StateIdle          StateType = "idle"
	StateAwaitingInput StateType = "awaiting_input"
	StateAdvancing     StateType = "advancing"
)

// Snapshot captures the complete engine state for tests and debugging.
type Snapshot struct {
	Level    int
	Best     int
	Status   Status
	Sequence []Signal
	Input    []Signal
	State    StateType
}

// Snapshot returns a copy of the current engine state.
func (e *Engine) Snapshot() Snapshot {
	state := StateAwaitingInput
	switch {
	case e.status == StatusNotStarted:
		state = StateIdle
	case e.advancePending:
		state = StateAdvancing
	}

	return Snapshot{
		Level:    e.level,
		Best:     e.best,
		Status:   e.status,
		Sequence: e.Sequence(),
		Input:    e.Input(),
		State:    state,
	}
}
