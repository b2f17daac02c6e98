// Package tui provides the Bubble Tea integration for the Simon board.
// It handles the terminal UI loop, input mapping, and the presenter that
// animates the pads.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TaskMsg carries a deferred callback back into the event loop.
type TaskMsg struct {
	fn func()
}

// tickFunc matches tea.Tick.
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// Scheduler implements simon.Scheduler on top of Bubble Tea.
//
// After queues a tea.Tick command; the Model collects queued commands with
// Flush at the end of every Update. When the tick fires, its TaskMsg is
// delivered through Update like any key press, so callbacks are serialized
// with input.
type Scheduler struct {
	pending []tea.Cmd
	tick    tickFunc
}

// NewScheduler creates a scheduler backed by tea.Tick.
func NewScheduler() *Scheduler {
	return &Scheduler{tick: tea.Tick}
}

// After schedules fn to run once delay has elapsed.
func (s *Scheduler) After(delay time.Duration, fn func()) {
	s.pending = append(s.pending, s.tick(delay, func(time.Time) tea.Msg {
		return TaskMsg{fn: fn}
	}))
}

// Flush returns every queued command as one batch, or nil.
func (s *Scheduler) Flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Pending returns how many commands are waiting to be flushed.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Run executes the callback.
func (t TaskMsg) Run() {
	if t.fn != nil {
		t.fn()
	}
}
