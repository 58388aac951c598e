package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xcbolt/snackbar/internal/snackbar"
)

// =============================================================================
// Bar Host - snackbar.ViewHost driven by the Bubble Tea event loop
// =============================================================================

const (
	// barRows is the rendered height of the bar in terminal rows.
	barRows = 3

	frameInterval = 16 * time.Millisecond
)

// hostTimerMsg fires a callback registered with AfterFunc.
type hostTimerMsg struct{ id uint64 }

// hostFrameMsg advances the running animation.
type hostFrameMsg struct {
	id uint64
	at time.Time
}

type barAnimation struct {
	id    uint64
	from  float64
	to    float64
	start time.Time
	d     time.Duration
	ease  snackbar.Easing
	done  func()
}

// teaHost keeps the bar's view state and turns timers and animation frames
// into tea.Tick commands. Everything runs inside Update, so no locking.
type teaHost struct {
	now    func() time.Time
	nextID uint64

	timers  map[uint64]func()
	anim    *barAnimation
	pending []tea.Cmd

	visible     bool
	enabled     bool
	highlight   bool
	translation float64
	text        string
	background  snackbar.Color
}

func newTeaHost() *teaHost {
	return &teaHost{
		now:    time.Now,
		timers: make(map[uint64]func()),
	}
}

type teaTimer struct {
	host *teaHost
	id   uint64
}

// Stop reports whether the timer was still pending.
func (t *teaTimer) Stop() bool {
	if _, ok := t.host.timers[t.id]; !ok {
		return false
	}
	delete(t.host.timers, t.id)
	return true
}

func (h *teaHost) Height() float64                { return barRows }
func (h *teaHost) SetVisible(v bool)              { h.visible = v }
func (h *teaHost) SetEnabled(v bool)              { h.enabled = v }
func (h *teaHost) SetTextHighlight(v bool)        { h.highlight = v }
func (h *teaHost) SetText(s string)               { h.text = s }
func (h *teaHost) SetBackground(c snackbar.Color) { h.background = c }

// SetTranslationY jumps without animating and drops any running animation.
// Its queued frames become stale.
func (h *teaHost) SetTranslationY(y float64) {
	h.anim = nil
	h.translation = y
}

// AnimateTranslationY replaces any running animation. The replaced
// animation's done callback never runs.
func (h *teaHost) AnimateTranslationY(to float64, d time.Duration, ease snackbar.Easing, done func()) {
	if ease == nil {
		ease = snackbar.Linear
	}
	h.nextID++
	h.anim = &barAnimation{
		id:    h.nextID,
		from:  h.translation,
		to:    to,
		start: h.now(),
		d:     d,
		ease:  ease,
		done:  done,
	}
	h.queueFrame(h.anim)
}

func (h *teaHost) AfterFunc(d time.Duration, fn func()) snackbar.Timer {
	h.nextID++
	id := h.nextID
	h.timers[id] = fn
	h.pending = append(h.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return hostTimerMsg{id: id}
	}))
	return &teaTimer{host: h, id: id}
}

// Animating reports whether a translation animation is in flight.
func (h *teaHost) Animating() bool { return h.anim != nil }

// Handle consumes host messages. It reports whether msg belonged to the
// host; stale timers and frames are swallowed.
func (h *teaHost) Handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case hostTimerMsg:
		fn, ok := h.timers[msg.id]
		if !ok {
			return true
		}
		delete(h.timers, msg.id)
		fn()
		return true

	case hostFrameMsg:
		if h.anim == nil || h.anim.id != msg.id {
			return true
		}
		h.step(msg.at)
		return true
	}
	return false
}

// Cmd drains the commands queued since the last call.
func (h *teaHost) Cmd() tea.Cmd {
	if len(h.pending) == 0 {
		return nil
	}
	cmds := h.pending
	h.pending = nil
	return tea.Batch(cmds...)
}

func (h *teaHost) step(at time.Time) {
	a := h.anim
	p := 1.0
	if a.d > 0 {
		p = float64(at.Sub(a.start)) / float64(a.d)
	}
	if p < 1 {
		if p < 0 {
			p = 0
		}
		h.translation = a.from + (a.to-a.from)*a.ease(p)
		h.queueFrame(a)
		return
	}
	h.translation = a.to
	h.anim = nil
	if a.done != nil {
		a.done()
	}
}

func (h *teaHost) queueFrame(a *barAnimation) {
	id := a.id
	h.pending = append(h.pending, tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return hostFrameMsg{id: id, at: t}
	}))
}
