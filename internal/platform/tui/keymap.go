package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
)

// KeyMap defines the key bindings for the board, built from configuration.
// It also feeds the help bar.
type KeyMap struct {
	Start key.Binding
	Mute  key.Binding
	Help  key.Binding
	Quit  key.Binding
	Pads  []key.Binding // One per signal, in board order
}

// NewKeyMap builds bindings from the configured keys.
// Single letters match in either case.
func NewKeyMap(cfg config.Config) KeyMap {
	km := KeyMap{
		Start: binding(cfg.Keys.Start, "start"),
		Mute:  binding(cfg.Keys.Mute, "mute"),
		Help:  binding(cfg.Keys.Help, "help"),
		Quit:  binding(cfg.Keys.Quit, "quit"),
		Pads:  make([]key.Binding, len(cfg.Signals)),
	}
	for i, s := range cfg.Signals {
		km.Pads[i] = binding(s.Keys, s.Name)
	}
	return km
}

// binding creates a key.Binding whose help shows the configured keys.
func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(foldCase(keys)...),
		key.WithHelp(strings.Join(keys, "/"), desc),
	)
}

// foldCase adds the other case of every single-letter key.
func foldCase(keys []string) []string {
	out := make([]string, 0, len(keys)*2)
	seen := make(map[string]bool, len(keys)*2)
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, k := range keys {
		add(k)
		if utf8.RuneCountInString(k) == 1 {
			add(strings.ToLower(k))
			add(strings.ToUpper(k))
		}
	}
	return out
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Mute, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Pads,
		{k.Start, k.Mute, k.Help, k.Quit},
	}
}

// MapKey translates a key message to a board input.
// Quit is checked first so it always wins.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Input {
	switch {
	case key.Matches(msg, k.Quit):
		return core.Input{Action: core.ActionQuit, Pad: -1}
	case key.Matches(msg, k.Start):
		return core.Input{Action: core.ActionStart, Pad: -1}
	case key.Matches(msg, k.Mute):
		return core.Input{Action: core.ActionMute, Pad: -1}
	case key.Matches(msg, k.Help):
		return core.Input{Action: core.ActionHelp, Pad: -1}
	}

	for i, b := range k.Pads {
		if key.Matches(msg, b) {
			return core.SelectPad(i)
		}
	}
	return core.NoInput
}
