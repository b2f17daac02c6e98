package core

// Action represents a semantic input, abstracted from physical key presses
// and mouse clicks. This allows the game to work with intents rather than
// raw input.
type Action int

const (
	ActionNone   Action = iota
	ActionStart         // S (either case) - start a game
	ActionSelect        // Pad key or click - choose a signal
	ActionMute          // M - toggle sound
	ActionHelp          // ? - toggle full help
	ActionQuit          // Q, Esc, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionSelect:
		return "Select"
	case ActionMute:
		return "Mute"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Input is one decoded input event. Pad is the board index of the selected
// signal and is only meaningful for ActionSelect.
type Input struct {
	Action Action
	Pad    int
}

// NoInput is returned for keys and clicks that map to nothing.
var NoInput = Input{Action: ActionNone, Pad: -1}

// SelectPad builds a selection input for the pad at the given index.
func SelectPad(pad int) Input {
	return Input{Action: ActionSelect, Pad: pad}
}
