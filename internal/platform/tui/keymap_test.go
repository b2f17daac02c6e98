package tui

import (
	"slices"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

func TestKeyMapMapKey(t *testing.T) {
	km := NewKeyMap(config.Default())

	tests := []struct {
		key    string
		expect core.Input
	}{
		{"s", core.Input{Action: core.ActionStart, Pad: -1}},
		{"S", core.Input{Action: core.ActionStart, Pad: -1}},
		{"q", core.Input{Action: core.ActionQuit, Pad: -1}},
		{"esc", core.Input{Action: core.ActionQuit, Pad: -1}},
		{"ctrl+c", core.Input{Action: core.ActionQuit, Pad: -1}},
		{"m", core.Input{Action: core.ActionMute, Pad: -1}},
		{"?", core.Input{Action: core.ActionHelp, Pad: -1}},
		{"r", core.SelectPad(0)},
		{"R", core.SelectPad(0)},
		{"2", core.SelectPad(1)},
		{"g", core.SelectPad(2)},
		{"y", core.SelectPad(3)},
		{"x", core.NoInput},
		{"5", core.NoInput},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			got := km.MapKey(keyPress(tc.key))
			if got != tc.expect {
				t.Errorf("MapKey(%q) = %+v, expected %+v", tc.key, got, tc.expect)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := NewKeyMap(config.Default())

	if len(km.ShortHelp()) != 4 {
		t.Errorf("ShortHelp() has %d bindings, expected 4", len(km.ShortHelp()))
	}

	full := km.FullHelp()
	if len(full) != 2 || len(full[0]) != 4 {
		t.Fatalf("FullHelp() shape = %d groups", len(full))
	}
	if h := full[0][0].Help(); h.Key != "r/1" || h.Desc != "red" {
		t.Errorf("red help = %+v", h)
	}
}

func TestFoldCase(t *testing.T) {
	got := foldCase([]string{"s", "Q", "esc", "?"})
	want := []string{"s", "S", "Q", "q", "esc", "?"}
	if !slices.Equal(got, want) {
		t.Errorf("foldCase() = %v, expected %v", got, want)
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColor(0, 0, "Level 1", core.ColorBrightWhite)
	s.DrawTextColor(8, 0, "ok", core.ColorGreen)
	s.DrawText(0, 1, "plain")

	out := RenderScreen(s)
	if strings.Count(out, "\n") != 1 {
		t.Errorf("RenderScreen() should have one newline, got %q", out)
	}
	for _, want := range []string{"Level 1", "ok", "plain"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen() missing %q: %q", want, out)
		}
	}

	if RenderScreen(core.NewScreen(0, 0)) != "" {
		t.Error("empty screen should render empty")
	}
}

func TestSchedulerFlush(t *testing.T) {
	s := NewScheduler()
	if s.Flush() != nil {
		t.Error("empty Flush() should be nil")
	}

	ran := 0
	s.After(time.Millisecond, func() { ran++ })
	s.After(time.Millisecond, func() { ran++ })
	if s.Pending() != 2 {
		t.Fatalf("Pending() = %d, expected 2", s.Pending())
	}

	cmd := s.Flush()
	if cmd == nil || s.Pending() != 0 {
		t.Fatal("Flush() should drain the queue")
	}

	// Run the batch and every tick in it
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		t.Fatalf("Flush() of two tasks = %T, expected tea.BatchMsg", msg)
	}
	for _, c := range batch {
		task, ok := c().(TaskMsg)
		if !ok {
			t.Fatal("tick should deliver a TaskMsg")
		}
		task.Run()
	}
	if ran != 2 {
		t.Errorf("ran = %d, expected 2", ran)
	}

	var empty TaskMsg
	empty.Run() // Should not panic
}

var _ simon.Scheduler = (*Scheduler)(nil)
