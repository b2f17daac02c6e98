package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// Board layout constants
const (
	MinWidth  = 24 // Below this the board is replaced by a warning
	MinHeight = 12
	hudHeight = 2 // Label row plus a spacer
	padGap    = 1
	maxCols   = 4
)

// padState is the visual state of one pad.
type padState int

const (
	padIdle    padState = iota
	padDim              // First half of a signal flash
	padLit              // Second half of a signal flash
	padPressed          // Player acknowledgment
)

// pad is one selectable area on the board.
type pad struct {
	signal simon.Signal
	color  core.Color
	key    string
	rect   core.Rect
	state  padState
	gen    int // Bumped on every flash; stale reverts compare against it
}

// Board implements simon.Presenter. It keeps the label and per-pad flash
// state and draws everything into a core.Screen.
//
// Flashes end through scheduled tasks. Each task captures the generation it
// was scheduled for and does nothing if a newer flash has started since.
type Board struct {
	pads    []*pad
	index   map[simon.Signal]int
	label   string
	failing bool
	failGen int
	timing  config.TimingConfig
	sched   simon.Scheduler
	width   int
	height  int
}

// NewBoard creates a board for the configured signals. Flash reverts are
// scheduled on sched.
func NewBoard(cfg config.Config, sched simon.Scheduler) *Board {
	b := &Board{
		pads:   make([]*pad, len(cfg.Signals)),
		index:  make(map[simon.Signal]int, len(cfg.Signals)),
		timing: cfg.Timing,
		sched:  sched,
	}
	for i, s := range cfg.Signals {
		color, _ := core.ParseColor(s.Color)
		key := ""
		if len(s.Keys) > 0 {
			key = s.Keys[0]
		}
		b.pads[i] = &pad{signal: simon.Signal(s.Name), color: color, key: key}
		b.index[simon.Signal(s.Name)] = i
	}
	return b
}

// SetLabel replaces the HUD label.
func (b *Board) SetLabel(text string) {
	b.label = text
}

// FlashSignal fades the pad out and back in over the signal flash time.
func (b *Board) FlashSignal(s simon.Signal) {
	p := b.pad(s)
	if p == nil {
		return
	}

	p.gen++
	gen := p.gen
	p.state = padDim

	half := b.timing.SignalFlash / 2
	b.sched.After(half, func() {
		if p.gen == gen {
			p.state = padLit
		}
	})
	b.revertAfter(p, gen, b.timing.SignalFlash)
}

// FlashPress highlights the pad for the press flash time.
func (b *Board) FlashPress(s simon.Signal) {
	p := b.pad(s)
	if p == nil {
		return
	}

	p.gen++
	p.state = padPressed
	b.revertAfter(p, p.gen, b.timing.PressFlash)
}

// FlashFailure turns the whole surface red for the failure flash time.
func (b *Board) FlashFailure() {
	b.failGen++
	gen := b.failGen
	b.failing = true

	b.sched.After(b.timing.FailureFlash, func() {
		if b.failGen == gen {
			b.failing = false
		}
	})
}

// revertAfter returns p to idle after d unless a newer flash took over.
func (b *Board) revertAfter(p *pad, gen int, d time.Duration) {
	b.sched.After(d, func() {
		if p.gen == gen {
			p.state = padIdle
		}
	})
}

func (b *Board) pad(s simon.Signal) *pad {
	i, ok := b.index[s]
	if !ok {
		return nil
	}
	return b.pads[i]
}

// Label returns the current HUD label.
func (b *Board) Label() string {
	return b.label
}

// Failing reports whether the failure flash is showing.
func (b *Board) Failing() bool {
	return b.failing
}

// Layout positions the pads for a surface of the given size.
// Four pads form a 2x2 grid; other counts fill rows of up to four.
func (b *Board) Layout(width, height int) {
	b.width, b.height = width, height

	n := len(b.pads)
	if n == 0 {
		return
	}

	cols := min(n, maxCols)
	if n == 4 {
		cols = 2
	}
	rows := (n + cols - 1) / cols

	area := core.NewRect(1, hudHeight, width-2, height-hudHeight)
	padW := (area.W - (cols-1)*padGap) / cols
	padH := (area.H - (rows-1)*padGap) / rows

	for i, p := range b.pads {
		col, row := i%cols, i/cols
		p.rect = core.NewRect(
			area.X+col*(padW+padGap),
			area.Y+row*(padH+padGap),
			max(padW, 0),
			max(padH, 0),
		)
	}
}

// TooSmall reports whether the surface is below the minimum board size.
func (b *Board) TooSmall() bool {
	return b.width < MinWidth || b.height < MinHeight
}

// PadAt returns the index of the pad covering (x, y).
func (b *Board) PadAt(x, y int) (int, bool) {
	if b.TooSmall() {
		return 0, false
	}
	for i, p := range b.pads {
		if p.rect.Contains(x, y) {
			return i, true
		}
	}
	return 0, false
}

// PadRect returns the screen area of the pad at index i.
func (b *Board) PadRect(i int) core.Rect {
	if i < 0 || i >= len(b.pads) {
		return core.Rect{}
	}
	return b.pads[i].rect
}

// HUD holds the status values drawn beside the label.
type HUD struct {
	Best  int
	Muted bool
}

// Render draws the board into dst.
func (b *Board) Render(dst *core.Screen, hud HUD) {
	dst.Clear()

	if b.TooSmall() {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		return
	}

	dst.DrawTextColor(1, 0, b.label, core.ColorBrightWhite)

	status := fmt.Sprintf("Best: %d", hud.Best)
	if hud.Muted {
		status = "[muted] " + status
	}
	dst.DrawTextColor(core.Clamp(b.width-1-len(status), 0, b.width), 0, status, core.ColorGray)

	for _, p := range b.pads {
		b.renderPad(dst, p)
	}

	if b.failing {
		dst.Tint(core.ColorRed)
	}
}

// renderPad draws one pad according to its flash state.
func (b *Board) renderPad(dst *core.Screen, p *pad) {
	if p.rect.Empty() {
		return
	}

	color, fill := p.color, '▒'
	switch p.state {
	case padDim:
		color, fill = core.ColorGray, '░'
	case padLit, padPressed:
		color, fill = p.color.Bright(), '█'
	}

	dst.DrawBox(p.rect, color)
	dst.FillRect(p.rect.Inset(1), fill, color)

	if p.key != "" {
		cx, cy := p.rect.Center()
		label := " " + p.key + " "
		dst.DrawTextColor(cx-len(label)/2, cy, label, color)
	}
}

var _ simon.Presenter = (*Board)(nil)
