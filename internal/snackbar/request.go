package snackbar

import "time"

const (
	DefaultAnimationDuration = 500 * time.Millisecond
	DefaultAutoHideDelay     = 5000 * time.Millisecond

	// dismissSpeedup derives the dismiss duration from the appearance
	// duration when none is given.
	dismissSpeedup = 3
)

// ShowRequest is the complete configuration of one Show call. Build it with
// NewRequest or Bar.ShowMessage; a zero ShowRequest has a transparent
// background and no animation time.
type ShowRequest struct {
	Message    string
	Background Color
	OnClick    ClickHandler

	AnimationDuration time.Duration
	// AutoHideDelay <= 0 disables auto-hide.
	AutoHideDelay time.Duration
	// DismissDuration <= 0 means AnimationDuration/3.
	DismissDuration time.Duration

	Animate bool

	// nil selects Decelerate / Accelerate.
	Easing        Easing
	DismissEasing Easing
}

// NewRequest returns a request carrying every default.
func NewRequest(message string) ShowRequest {
	return ShowRequest{
		Message:           message,
		Background:        DefaultBackground,
		AnimationDuration: DefaultAnimationDuration,
		AutoHideDelay:     DefaultAutoHideDelay,
		Animate:           true,
	}
}

// EffectiveDismissDuration resolves the dismiss duration the bar will store
// when this request is shown. The derived value uses integer division on
// whole milliseconds, so 500ms yields 166ms.
func (r ShowRequest) EffectiveDismissDuration() time.Duration {
	if r.DismissDuration > 0 {
		return r.DismissDuration
	}
	return time.Duration(r.AnimationDuration.Milliseconds()/dismissSpeedup) * time.Millisecond
}

func (r ShowRequest) appearEasing() Easing {
	if r.Easing != nil {
		return r.Easing
	}
	return Decelerate
}

func (r ShowRequest) dismissEasing() Easing {
	if r.DismissEasing != nil {
		return r.DismissEasing
	}
	return Accelerate
}

// Builder assembles a ShowRequest for a specific bar. Every method returns a
// modified copy, so a partially built Builder can be reused as a template.
type Builder struct {
	bar *Bar
	req ShowRequest
}

func (b Builder) WithBackgroundColor(c Color) Builder {
	b.req.Background = c
	return b
}

// WithBackgroundAlpha uses the RGB channels of base with the given alpha.
func (b Builder) WithBackgroundAlpha(base Color, alpha int) Builder {
	b.req.Background = WithAlpha(base, alpha)
	return b
}

func (b Builder) WithTextClickListener(fn ClickHandler) Builder {
	b.req.OnClick = fn
	return b
}

func (b Builder) WithAnimationDuration(d time.Duration) Builder {
	b.req.AnimationDuration = d
	return b
}

func (b Builder) WithAutoHideDelay(d time.Duration) Builder {
	b.req.AutoHideDelay = d
	return b
}

func (b Builder) WithDismissAnimationDuration(d time.Duration) Builder {
	b.req.DismissDuration = d
	return b
}

// WithEasing overrides the appearance and dismissal curves. nil keeps the
// default for that direction.
func (b Builder) WithEasing(appear, dismiss Easing) Builder {
	b.req.Easing = appear
	b.req.DismissEasing = dismiss
	return b
}

// Request returns the request as built so far, with Animate left at its
// default.
func (b Builder) Request() ShowRequest { return b.req }

// Animating shows the request with the slide-in animation.
func (b Builder) Animating() {
	b.req.Animate = true
	b.bar.Show(b.req)
}

// WithoutAnimating shows the request in place.
func (b Builder) WithoutAnimating() {
	b.req.Animate = false
	b.bar.Show(b.req)
}
