package snackbar

import "time"

// Timer is a cancellable handle to a callback scheduled on the host's event
// loop. Implementations must be comparable (pointer types).
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// ViewHost is the capability set a Bar drives. All methods are called from
// the host's single event loop, and every callback the host runs (timers,
// animation completions) must run on that same loop.
type ViewHost interface {
	// Height is the distance, in host units, that moves the bar fully
	// off-screen below its resting position.
	Height() float64

	SetVisible(visible bool)
	SetEnabled(enabled bool)
	// SetTranslationY jumps to y. It supersedes any translation animation
	// in flight, whose done callback is dropped.
	SetTranslationY(y float64)

	// AnimateTranslationY moves the bar from its current translation to
	// `to` over d. Starting a new translation animation supersedes the one
	// in flight; the superseded animation's done callback is dropped.
	AnimateTranslationY(to float64, d time.Duration, ease Easing, done func())

	SetText(text string)
	SetBackground(c Color)
	// SetTextHighlight toggles the pressed/focus background on the text,
	// shown only while a click handler is attached.
	SetTextHighlight(on bool)

	AfterFunc(d time.Duration, fn func()) Timer
}
