// Package snackbar implements a transient notification bar that slides in
// from the bottom of its host, optionally hides itself after a delay, and can
// carry a click action. The bar owns only its show/hide state machine and
// auto-hide timer; drawing, timers and animation frames are provided by a
// ViewHost.
package snackbar

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration is returned when a bar is configured in a way it
// cannot support.
var ErrInvalidConfiguration = errors.New("snackbar: invalid configuration")

// State is the bar's position in its show/hide cycle.
type State int

const (
	Hidden State = iota
	Appearing
	Visible
	Disappearing
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Appearing:
		return "appearing"
	case Visible:
		return "visible"
	case Disappearing:
		return "disappearing"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Shown reports whether the state counts as visible for re-entrancy checks.
// Appearing counts as visible and Disappearing as hidden.
func (s State) Shown() bool { return s == Appearing || s == Visible }

// Orientation is the axis the bar lays out along.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("orientation(%d)", int(o))
	}
}

// ParseOrientation maps a config value to an Orientation. An empty value is
// vertical.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "", "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	default:
		return 0, fmt.Errorf("%w: unknown orientation %q", ErrInvalidConfiguration, s)
	}
}

// ClickHandler runs when the bar's text is activated.
type ClickHandler func(b *Bar)

// Option configures a Bar in New.
type Option func(*Bar) error

// WithOrientation sets the layout orientation. Only Vertical is supported.
func WithOrientation(o Orientation) Option {
	return func(b *Bar) error { return b.SetOrientation(o) }
}

// WithObserver registers fn to be called after every state change.
func WithObserver(fn func(from, to State)) Option {
	return func(b *Bar) error {
		b.observe = fn
		return nil
	}
}

// Bar is the notification bar state machine. It is not safe for concurrent
// use; drive it from the host's event loop.
type Bar struct {
	host        ViewHost
	orientation Orientation

	state   State
	enabled bool

	autoHide        Timer
	dismissDuration time.Duration
	dismissEasing   Easing
	onClick         ClickHandler

	// gen increments on every visual transition; animation completions
	// from an older generation are ignored.
	gen uint64

	observe func(from, to State)
}

// New creates a hidden bar driving host.
func New(host ViewHost, opts ...Option) (*Bar, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: nil view host", ErrInvalidConfiguration)
	}
	b := &Bar{
		host:          host,
		orientation:   Vertical,
		dismissEasing: Accelerate,
	}
	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}
	host.SetVisible(false)
	host.SetEnabled(false)
	return b, nil
}

// SetOrientation rejects anything but Vertical.
func (b *Bar) SetOrientation(o Orientation) error {
	if o != Vertical {
		return fmt.Errorf("%w: bar supports only vertical orientation, got %s", ErrInvalidConfiguration, o)
	}
	b.orientation = o
	return nil
}

// State returns the current state.
func (b *Bar) State() State { return b.state }

// Orientation returns the layout orientation.
func (b *Bar) Orientation() Orientation { return b.orientation }

// Enabled reports whether the bar accepts clicks.
func (b *Bar) Enabled() bool { return b.enabled }

// DismissDuration is the slide-out duration the next animated hide uses.
func (b *Bar) DismissDuration() time.Duration { return b.dismissDuration }

// AutoHidePending reports whether an auto-hide timer is outstanding.
func (b *Bar) AutoHidePending() bool { return b.autoHide != nil }

// ShowMessage starts building a request for msg with every default applied.
func (b *Bar) ShowMessage(msg string) Builder {
	return Builder{bar: b, req: NewRequest(msg)}
}

// Compose starts a Builder from an existing request, e.g. one built from
// configuration defaults.
func (b *Bar) Compose(req ShowRequest) Builder {
	return Builder{bar: b, req: req}
}

// Show applies req. A pending auto-hide is always cancelled first. If the
// bar is already shown the appearance is skipped, but auto-hide is still
// rescheduled from now.
func (b *Bar) Show(req ShowRequest) {
	b.cancelAutoHide()
	b.present(req)

	b.dismissDuration = req.EffectiveDismissDuration()
	b.dismissEasing = req.dismissEasing()

	if !b.state.Shown() {
		if req.Animate {
			b.appear(req.AnimationDuration, req.appearEasing())
		} else {
			b.gen++
			b.host.SetTranslationY(0)
			b.host.SetVisible(true)
			b.setEnabled(true)
			b.setState(Visible)
		}
	}

	b.scheduleAutoHide(req.AutoHideDelay)
}

// HideAnimated hides with the last configured dismiss duration.
func (b *Bar) HideAnimated() { b.Hide(true) }

// HideAfter stores d as the dismiss duration and hides with animation.
func (b *Bar) HideAfter(d time.Duration) {
	b.dismissDuration = d
	b.Hide(true)
}

// Hide cancels any pending auto-hide and, unless the bar is already hidden
// or disappearing, hides it.
func (b *Bar) Hide(animate bool) {
	b.cancelAutoHide()
	if !b.state.Shown() {
		return
	}
	if animate {
		b.disappear()
		return
	}
	b.gen++
	b.setEnabled(false)
	b.host.SetVisible(false)
	b.host.SetTranslationY(b.host.Height())
	b.setState(Hidden)
}

// Click dispatches a text activation to the click handler. It reports whether
// a handler ran.
func (b *Bar) Click() bool {
	if b.onClick == nil || !b.enabled || !b.state.Shown() {
		return false
	}
	b.onClick(b)
	return true
}

func (b *Bar) present(req ShowRequest) {
	b.onClick = nil
	b.host.SetText(req.Message)
	b.host.SetTextHighlight(false)
	b.host.SetBackground(req.Background)
	if req.OnClick != nil {
		b.onClick = req.OnClick
		b.host.SetTextHighlight(true)
	}
}

func (b *Bar) appear(d time.Duration, ease Easing) {
	b.gen++
	gen := b.gen

	b.host.SetVisible(true)
	b.host.SetTranslationY(b.host.Height())
	b.setState(Appearing)
	b.host.AnimateTranslationY(0, d, ease, func() {
		if gen != b.gen {
			return
		}
		b.setEnabled(true)
		b.setState(Visible)
	})
}

func (b *Bar) disappear() {
	b.gen++
	gen := b.gen

	b.setEnabled(false)
	b.setState(Disappearing)
	b.host.AnimateTranslationY(b.host.Height(), b.dismissDuration, b.dismissEasing, func() {
		if gen != b.gen {
			return
		}
		b.host.SetVisible(false)
		b.setState(Hidden)
	})
}

func (b *Bar) scheduleAutoHide(delay time.Duration) {
	if delay <= 0 {
		return
	}
	var t Timer
	t = b.host.AfterFunc(delay, func() {
		if b.autoHide != t {
			return
		}
		b.autoHide = nil
		b.Hide(true)
	})
	b.autoHide = t
}

func (b *Bar) cancelAutoHide() {
	if b.autoHide == nil {
		return
	}
	b.autoHide.Stop()
	b.autoHide = nil
}

func (b *Bar) setEnabled(on bool) {
	b.enabled = on
	b.host.SetEnabled(on)
}

func (b *Bar) setState(s State) {
	if s == b.state {
		return
	}
	from := b.state
	b.state = s
	if b.observe != nil {
		b.observe(from, s)
	}
}
