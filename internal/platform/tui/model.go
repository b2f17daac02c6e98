package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/audio"
	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// Muter is implemented by sound players that can be silenced at runtime.
type Muter interface {
	ToggleMute() bool
	Muted() bool
}

// Options configure a Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Sound   simon.SoundPlayer // nil plays nothing
	Logger  *log.Logger       // nil discards
}

// Model is the Bubble Tea model for one Simon session. It owns the engine
// and routes keys, clicks and scheduled tasks to it.
type Model struct {
	engine   *simon.Engine
	board    *Board
	sched    *Scheduler
	sound    simon.SoundPlayer
	signals  []simon.Signal
	keys     KeyMap
	help     help.Model
	screen   *core.Screen
	config   core.RuntimeConfig
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model and its engine. The engine shows the start label
// right away.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Silent{}
	}

	sched := NewScheduler()
	board := NewBoard(opts.Config, sched)

	startKey := simon.DefaultStartKey
	if len(opts.Config.Keys.Start) > 0 {
		startKey = opts.Config.Keys.Start[0]
	}

	engine, err := simon.New(simon.Config{
		Signals:      opts.Config.SignalNames(),
		AdvanceDelay: opts.Config.Timing.AdvanceDelay,
		StartKey:     startKey,
		Rand:         rand.New(rand.NewSource(cfg.Seed)),
		Logger:       logger,
	}, board, sound, sched)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot create engine: %w", err)
	}

	m := Model{
		engine:  engine,
		board:   board,
		sched:   sched,
		sound:   sound,
		signals: engine.Signals(),
		keys:    NewKeyMap(opts.Config),
		help:    help.New(),
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		logger:  logger,
	}
	m.resize(cfg.ScreenW, cfg.ScreenH)
	return m, nil
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("Simon")
}

// Update handles messages and updates the model state. Every command the
// engine or board scheduled during the message is returned as one batch.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case TaskMsg:
		msg.Run()
	}

	return m, m.sched.Flush()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.MapKey(msg)

	switch in.Action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionStart:
		m.engine.StartOrAdvance()
	case core.ActionSelect:
		m.submit(in.Pad)
	case core.ActionMute:
		if muter, ok := m.sound.(Muter); ok {
			muted := muter.ToggleMute()
			m.logger.Debug("mute toggled", "muted", muted)
		}
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.config.ScreenW, m.config.ScreenH)
	}

	return m, m.sched.Flush()
}

// handleMouse selects the pad under a left-button press.
func (m Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if i, ok := m.board.PadAt(msg.X, msg.Y); ok {
		m.submit(i)
	}
}

// submit passes the signal of pad i to the engine.
func (m Model) submit(i int) {
	if i < 0 || i >= len(m.signals) {
		return
	}
	outcome := m.engine.SubmitInput(m.signals[i])
	m.logger.Debug("input", "signal", m.signals[i], "outcome", outcome)
}

// resize lays the board out above the help bar.
func (m *Model) resize(width, height int) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	boardH := max(height-m.helpHeight(), 0)
	m.screen.Resize(width, boardH)
	m.board.Layout(width, boardH)
}

// helpHeight returns the rows taken by the help bar.
func (m Model) helpHeight() int {
	if m.help.ShowAll {
		return max(len(m.keys.Pads), len(m.keys.ShortHelp()))
	}
	return 1
}

// muted reports the sound player's mute state, if it has one.
func (m Model) muted() bool {
	if muter, ok := m.sound.(Muter); ok {
		return muter.Muted()
	}
	return false
}

// View renders the board and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.board.Render(m.screen, HUD{Best: m.engine.Best(), Muted: m.muted()})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Engine returns the session's engine.
func (m Model) Engine() *simon.Engine {
	return m.engine
}

// Board returns the session's presenter.
func (m Model) Board() *Board {
	return m.board
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for a local session.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Pads are clickable
	)

	_, err = p.Run()
	return err
}
